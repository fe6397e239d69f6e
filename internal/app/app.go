package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"gitlab-api/internal/apperr"
	"gitlab-api/internal/auth"
	"gitlab-api/internal/config"
	"gitlab-api/internal/credentials"
	"gitlab-api/internal/executor"
	"gitlab-api/internal/httpclient"
	"gitlab-api/internal/logging"
	"gitlab-api/internal/request"
	"gitlab-api/internal/util"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// --- Interfaces for Testability ---

// credentialResolver resolves the server URL and token for a run.
type credentialResolver interface {
	Resolve(envFile string) (credentials.Credentials, error)
}

// getter performs the API call.
type getter interface {
	Get(ctx context.Context, path string) ([]byte, error)
}

// invokerFactory creates a getter bound to resolved credentials.
type invokerFactory interface {
	New(creds credentials.Credentials, settings *config.Settings) getter
}

// --- Default Implementations ---

type defaultInvokerFactory struct{}

func (f *defaultInvokerFactory) New(creds credentials.Credentials, settings *config.Settings) getter {
	client := httpclient.NewClient(settings.HTTP)
	return executor.NewInvoker(client, creds, executor.WithUserAgent(settings.HTTP.UserAgent))
}

// --- AppRunner ---

// AppRunner encapsulates the application's execution logic and dependencies.
type AppRunner struct {
	resolver credentialResolver
	invokers invokerFactory
	environ  map[string]string
	stdout   io.Writer
	stderr   io.Writer

	// dispatched is set once a subcommand's RunE starts. Errors returned
	// before that come from cobra's own argument and flag handling.
	dispatched bool
}

// AppRunnerOpts allows configuring the AppRunner's dependencies.
// Zero values select the real implementations.
type AppRunnerOpts struct {
	Resolver       credentialResolver
	InvokerFactory invokerFactory
	Environ        map[string]string
	Stdout         io.Writer
	Stderr         io.Writer
}

// NewAppRunner creates a new instance of the application runner with default dependencies.
func NewAppRunner() *AppRunner {
	return NewAppRunnerWithOpts(AppRunnerOpts{})
}

// NewAppRunnerWithOpts creates a new AppRunner allowing dependency injection.
func NewAppRunnerWithOpts(opts AppRunnerOpts) *AppRunner {
	environ := opts.Environ
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = credentials.NewResolver(credentials.MapLookup(environ))
	}
	invokers := opts.InvokerFactory
	if invokers == nil {
		invokers = &defaultInvokerFactory{}
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	return &AppRunner{
		resolver: resolver,
		invokers: invokers,
		environ:  environ,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// Main runs the CLI, reports any failure on stderr, and returns the exit code.
func (a *AppRunner) Main(ctx context.Context, args []string) int {
	err := a.Run(ctx, args)
	if err != nil {
		apperr.Report(a.stderr, err)
	}
	return apperr.ExitCode(err)
}

// Run parses args and executes the selected command.
func (a *AppRunner) Run(ctx context.Context, args []string) error {
	a.dispatched = false
	logging.SetOutput(a.stderr)

	root := a.newRootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil && !a.dispatched && !apperr.IsConfig(err) {
		return apperr.Config(err)
	}
	return err
}

// globalOptions holds the flags shared by every command.
type globalOptions struct {
	envFile    string
	configFile string
	logLevel   string
}

// execute runs the validate, resolve, build, and fetch pipeline for cmd.
func (a *AppRunner) execute(ctx context.Context, c *cobra.Command, opts *globalOptions, cmd request.Command) error {
	a.dispatched = true

	settings, err := a.loadSettings(c, opts)
	if err != nil {
		return err
	}

	if err := request.Validate(cmd); err != nil {
		return err
	}

	envFile := a.expand(opts.envFile)
	logging.Logf(logging.Debug, "Resolving credentials (env file '%s')", envFile)
	creds, err := a.resolver.Resolve(envFile)
	if err != nil {
		return err
	}
	logging.Logf(logging.Debug, "Using server %s with token %s", creds.BaseURL, auth.MaskToken(creds.Token))

	path := request.Build(cmd)
	logging.Logf(logging.Info, "%s: GET %s", cmd.Name(), path)

	body, err := a.invokers.New(creds, settings).Get(ctx, path)
	if err != nil {
		return err
	}

	pretty, err := util.PrettyJSON(body)
	if err != nil {
		return apperr.Unexpected(err)
	}
	if _, err := a.stdout.Write(pretty); err != nil {
		return apperr.Unexpected(fmt.Errorf("failed to write output: %w", err))
	}
	return nil
}

// loadSettings reads the optional settings file and applies the log level,
// letting an explicit --loglevel flag win over file and environment.
func (a *AppRunner) loadSettings(c *cobra.Command, opts *globalOptions) (*config.Settings, error) {
	settings, err := config.LoadConfig(a.expand(opts.configFile), a.environ)
	if err != nil {
		return nil, err
	}
	if c.Flags().Changed("loglevel") {
		settings.Logging.Level = opts.logLevel
	}
	logging.SetupLogging(settings.Logging.Level)
	return settings, nil
}

func (a *AppRunner) expand(path string) string {
	return util.ExpandEnvUniversal(path, func(key string) (string, bool) {
		v, ok := a.environ[key]
		return v, ok
	})
}
