package app

import (
	"strings"

	"gitlab-api/internal/apperr"
	"gitlab-api/internal/request"

	"github.com/spf13/cobra"
)

const rootLong = `gitlab-api calls read-only GitLab REST API endpoints and prints the JSON response.

Credentials are read from the environment first and then from an env file,
key by key in this order:
  server: gitlab_server, GITLAB_SERVER
  token:  access_token, ACCESS_TOKEN, GITLAB_TOKEN

Exit codes: 0 success, 1 HTTP/network/execution error, 2 argument or configuration error.`

func (a *AppRunner) newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "gitlab-api",
		Short:         "Query GitLab merge requests, repository files, and pipeline jobs",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.envFile, "env-file", ".env", "Path to the env file with gitlab_server and access_token ($VAR and %VAR% are expanded)")
	pf.StringVar(&opts.configFile, "config", "", "Optional YAML settings file (logging, http)")
	pf.StringVar(&opts.logLevel, "loglevel", "warn", "Logging level (none, error, warn, info, debug)")

	root.AddCommand(
		a.newFileCommand(opts),
		a.newMergeRequestCommand(opts, "mr", "Get merge request details", func(project, iid string) request.Command {
			return request.MergeRequest{Project: project, IID: iid}
		}),
		a.newMergeRequestCommand(opts, "changes", "Get merge request changes (diffs)", func(project, iid string) request.Command {
			return request.MergeRequestChanges{Project: project, IID: iid}
		}),
		a.newMergeRequestCommand(opts, "notes", "List merge request notes", func(project, iid string) request.Command {
			return request.MergeRequestNotes{Project: project, IID: iid}
		}),
		a.newPipelineJobsCommand(opts),
		a.newCallCommand(opts),
	)
	return root
}

func (a *AppRunner) newFileCommand(opts *globalOptions) *cobra.Command {
	var project, filePath, ref string
	c := &cobra.Command{
		Use:     "file",
		Short:   "Get repository file metadata and content",
		Example: "  gitlab-api file --project group/project --file-path src/main.go --ref main",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.execute(c.Context(), c, opts, request.File{Project: project, FilePath: filePath, Ref: ref})
		},
	}
	c.Flags().StringVar(&project, "project", "", "Project ID or path (for a path use group/project)")
	c.Flags().StringVar(&filePath, "file-path", "", "Repository file path")
	c.Flags().StringVar(&ref, "ref", "", "Git ref (branch, tag, or commit)")
	return c
}

func (a *AppRunner) newMergeRequestCommand(opts *globalOptions, use, short string, build func(project, iid string) request.Command) *cobra.Command {
	var project, iid string
	c := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: "  gitlab-api " + use + " --project group/project --iid 42",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.execute(c.Context(), c, opts, build(project, iid))
		},
	}
	c.Flags().StringVar(&project, "project", "", "Project ID or path (for a path use group/project)")
	c.Flags().StringVar(&iid, "iid", "", "Merge request IID")
	return c
}

func (a *AppRunner) newPipelineJobsCommand(opts *globalOptions) *cobra.Command {
	var project, pipelineID string
	var scopes []string
	c := &cobra.Command{
		Use:     "pipeline-jobs",
		Short:   "List the jobs of a pipeline",
		Example: "  gitlab-api pipeline-jobs --project 42 --pipeline-id 7 --scope failed --scope canceled",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			statuses, err := request.ParseJobStatuses(scopes)
			if err != nil {
				a.dispatched = true
				return err
			}
			return a.execute(c.Context(), c, opts, request.PipelineJobs{Project: project, PipelineID: pipelineID, Scopes: statuses})
		},
	}
	c.Flags().StringVar(&project, "project", "", "Project ID or path (for a path use group/project)")
	c.Flags().StringVar(&pipelineID, "pipeline-id", "", "Pipeline ID")
	c.Flags().StringArrayVar(&scopes, "scope", nil, "Filter by job status; repeat to pass several ("+joinStatuses()+")")
	return c
}

func (a *AppRunner) newCallCommand(opts *globalOptions) *cobra.Command {
	var project, iid, filePath, ref string
	verbs := request.DispatchNames()
	c := &cobra.Command{
		Use:       "call {" + strings.Join(verbs, "|") + "}",
		Short:     "Call an endpoint selected by name",
		Example:   "  gitlab-api call notes --project group/project --iid 42\n  gitlab-api call file --project 42 --file-path README.md",
		ValidArgs: verbs,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return apperr.Configf("call expects exactly one command (%s), got %d", strings.Join(verbs, "|"), len(args))
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			cmd, err := request.FromDispatch(args[0], project, iid, filePath, ref)
			if err != nil {
				a.dispatched = true
				return err
			}
			return a.execute(c.Context(), c, opts, cmd)
		},
	}
	c.Flags().StringVar(&project, "project", "", "Project ID or path (for a path use group/project)")
	c.Flags().StringVar(&iid, "iid", "", "Merge request IID (required for mr, changes, notes)")
	c.Flags().StringVar(&filePath, "file-path", "", "Repository file path (required for file)")
	c.Flags().StringVar(&ref, "ref", "main", "Ref for the repository file endpoint")
	return c
}

func joinStatuses() string {
	statuses := request.JobStatuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
