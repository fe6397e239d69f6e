// Package request turns a typed GitLab API command into an encoded request
// path relative to the server's base URL.
package request

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"gitlab-api/internal/apperr"
)

const apiPrefix = "/api/v4/projects/"

// Command is one of the supported read-only API calls. The set is closed:
// only the types in this package implement it.
type Command interface {
	// Name is the CLI verb for the command.
	Name() string
	isCommand()
}

// File fetches repository file metadata and content at a ref.
type File struct {
	Project  string
	FilePath string
	Ref      string
}

// MergeRequest fetches merge request details.
type MergeRequest struct {
	Project string
	IID     string
}

// MergeRequestChanges fetches a merge request with its diffs.
type MergeRequestChanges struct {
	Project string
	IID     string
}

// MergeRequestNotes lists the comments on a merge request.
type MergeRequestNotes struct {
	Project string
	IID     string
}

// PipelineJobs lists the jobs of a pipeline, optionally filtered by status.
type PipelineJobs struct {
	Project    string
	PipelineID string
	Scopes     []JobStatus
}

func (File) Name() string                { return "file" }
func (MergeRequest) Name() string        { return "mr" }
func (MergeRequestChanges) Name() string { return "changes" }
func (MergeRequestNotes) Name() string   { return "notes" }
func (PipelineJobs) Name() string        { return "pipeline-jobs" }

func (File) isCommand()                {}
func (MergeRequest) isCommand()        {}
func (MergeRequestChanges) isCommand() {}
func (MergeRequestNotes) isCommand()   {}
func (PipelineJobs) isCommand()        {}

// Build returns the API path, including any query string, for cmd.
// cmd is expected to have passed Validate.
func Build(cmd Command) string {
	switch c := cmd.(type) {
	case File:
		return apiPrefix + Encode(c.Project) + "/repository/files/" + Encode(c.FilePath) + "?ref=" + Encode(c.Ref)
	case MergeRequest:
		return apiPrefix + Encode(c.Project) + "/merge_requests/" + c.IID
	case MergeRequestChanges:
		return apiPrefix + Encode(c.Project) + "/merge_requests/" + c.IID + "/changes"
	case MergeRequestNotes:
		return apiPrefix + Encode(c.Project) + "/merge_requests/" + c.IID + "/notes"
	case PipelineJobs:
		path := apiPrefix + Encode(c.Project) + "/pipelines/" + c.PipelineID + "/jobs"
		if len(c.Scopes) == 0 {
			return path
		}
		scopes := make([]string, len(c.Scopes))
		for i, s := range c.Scopes {
			scopes[i] = string(s)
		}
		return path + "?" + url.Values{"scope[]": scopes}.Encode()
	default:
		panic(fmt.Sprintf("request: unhandled command type %T", cmd))
	}
}

// Validate checks that every parameter cmd needs is present and well formed.
// Failures are configuration errors naming the offending flag.
func Validate(cmd Command) error {
	switch c := cmd.(type) {
	case File:
		return firstError(
			required("--project", c.Project),
			requiredFor("--file-path", c.FilePath, c.Name()),
			required("--ref", c.Ref),
		)
	case MergeRequest:
		return validateMergeRequest(c.Name(), c.Project, c.IID)
	case MergeRequestChanges:
		return validateMergeRequest(c.Name(), c.Project, c.IID)
	case MergeRequestNotes:
		return validateMergeRequest(c.Name(), c.Project, c.IID)
	case PipelineJobs:
		if err := firstError(
			required("--project", c.Project),
			required("--pipeline-id", c.PipelineID),
			numeric("--pipeline-id", c.PipelineID),
		); err != nil {
			return err
		}
		for _, s := range c.Scopes {
			if !s.Valid() {
				return apperr.Configf("invalid --scope '%s', must be one of %v", s, jobStatuses)
			}
		}
		return nil
	case nil:
		return apperr.Configf("no command given")
	default:
		return apperr.Configf("unsupported command type %T", cmd)
	}
}

func validateMergeRequest(name, project, iid string) error {
	if err := required("--project", project); err != nil {
		return err
	}
	if strings.TrimSpace(iid) == "" {
		return apperr.Configf("--iid is required for %s", name)
	}
	return numeric("--iid", iid)
}

func required(flag, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.Configf("%s is required", flag)
	}
	return nil
}

func requiredFor(flag, value, command string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.Configf("%s is required for %s", flag, command)
	}
	return nil
}

func numeric(flag, value string) error {
	if value == "" {
		return nil
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return apperr.Configf("%s must be a number, got '%s'", flag, value)
		}
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// dispatchable maps dispatcher verbs to command constructors.
var dispatchable = map[string]func(project, iid, filePath, ref string) Command{
	"mr": func(project, iid, _, _ string) Command {
		return MergeRequest{Project: project, IID: iid}
	},
	"changes": func(project, iid, _, _ string) Command {
		return MergeRequestChanges{Project: project, IID: iid}
	},
	"notes": func(project, iid, _, _ string) Command {
		return MergeRequestNotes{Project: project, IID: iid}
	},
	"file": func(project, _, filePath, ref string) Command {
		return File{Project: project, FilePath: filePath, Ref: ref}
	},
}

// DispatchNames lists the verbs accepted by FromDispatch, sorted.
func DispatchNames() []string {
	names := make([]string, 0, len(dispatchable))
	for name := range dispatchable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromDispatch builds a command from a dispatcher verb and its flag values.
func FromDispatch(name, project, iid, filePath, ref string) (Command, error) {
	build, ok := dispatchable[name]
	if !ok {
		return nil, apperr.Configf("unsupported command '%s', must be one of %v", name, DispatchNames())
	}
	return build(project, iid, filePath, ref), nil
}
