package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/news-radar/internal/adapter"
	"github.com/MKhiriev/news-radar/internal/config"
	"github.com/MKhiriev/news-radar/internal/logger"
	"github.com/MKhiriev/news-radar/internal/report"
	"github.com/MKhiriev/news-radar/internal/service"
	"github.com/MKhiriev/news-radar/internal/store"
	"github.com/MKhiriev/news-radar/internal/validators"
	"github.com/MKhiriev/news-radar/models"
)

// SyncToolFactory builds the sync tool client from the resolved settings.
type SyncToolFactory func(cfg config.SyncSettings, log *logger.Logger) (adapter.SyncTool, error)

// App is one invocation of the pull-remote-news command.
type App struct {
	args      []string
	stdout    io.Writer
	stderr    io.Writer
	environ   map[string]string
	buildInfo models.AppBuildInfo
	newTool   SyncToolFactory
}

// Option configures an [App].
type Option func(*App)

// WithOutput redirects the report (stdout) and the diagnostic log (stderr).
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithEnviron replaces the process environment, both for the runtime options
// and for the environment configuration tier.
func WithEnviron(environ map[string]string) Option {
	return func(a *App) {
		a.environ = environ
	}
}

// WithBuildInfo sets the build metadata shown in the usage text.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(a *App) {
		a.buildInfo = info
	}
}

// WithSyncToolFactory replaces the HTTP sync tool client.
func WithSyncToolFactory(f SyncToolFactory) Option {
	return func(a *App) {
		a.newTool = f
	}
}

// NewApp creates an App for args (without the program name).
func NewApp(args []string, opts ...Option) *App {
	a := &App{
		args:      args,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		buildInfo: models.NewAppBuildInfo("", "", ""),
		newTool:   adapter.NewHTTPSyncTool,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes the selected mode and returns the process exit code.
func (a *App) Run(ctx context.Context) int {
	out := report.NewPrinter(a.stdout)

	opts, err := config.GetOptions(a.args, a.stderr, a.environ)
	if err != nil {
		out.Error(MsgInvalidOptions, err)
		return ExitFailure
	}
	if opts.Help {
		printUsage(a.stdout)
		_, _ = fmt.Fprintln(a.stdout)
		out.BuildInfo(a.buildInfo)
		return ExitOK
	}

	log := logger.New(a.stderr, config.CommandName, opts.LogLevel)
	ctx = log.WithContext(ctx)
	log.Debug().
		Str("version", a.buildInfo.BuildVersion()).
		Str("commit", a.buildInfo.BuildCommit()).
		Str("mode", opts.Mode().String()).
		Msg("starting")

	loaderOpts := make([]config.LoaderOption, 0, 1)
	if a.environ != nil {
		loaderOpts = append(loaderOpts, config.WithEnviron(a.environ))
	}
	loader := config.NewTieredLoader(opts.Root, log, loaderOpts...)

	if _, err = os.Stat(loader.MainConfigPath()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			out.Error(MsgConfigNotFound, loader.MainConfigPath())
			out.Warn(MsgRunFromRoot)
		} else {
			out.Error(MsgLoadConfig, err)
		}
		return ExitFailure
	}

	settings, err := a.loadSettings(loader, opts)
	if err != nil {
		log.Error().Err(err).Msg("error loading configuration")
		out.Error(MsgLoadConfig, err)
		return ExitFailure
	}

	tool, err := a.newTool(settings.Sync, log)
	if err != nil {
		out.Error(MsgSyncToolSetup, err)
		return ExitFailure
	}
	archive := store.NewLocalArchive(settings.Storage.Local.DataDir, log)
	services := service.NewServices(tool, archive, *settings, log)

	switch opts.Mode() {
	case config.ModeStatus:
		return a.status(ctx, out, services.PullService)
	case config.ModeListDates:
		return a.listDates(ctx, out, services.PullService)
	default:
		return a.pull(ctx, out, services.PullService, opts)
	}
}

// loadSettings resolves the configuration tree and applies the option
// overrides. A relative data directory is resolved against the project root.
func (a *App) loadSettings(loader config.Loader, opts *config.Options) (*config.Settings, error) {
	tree, err := loader.Load()
	if err != nil {
		return nil, err
	}

	settings, err := config.SettingsFromTree(tree)
	if err != nil {
		return nil, err
	}

	if opts.SyncURL != "" {
		settings.Sync.Endpoint = opts.SyncURL
	}
	if opts.Timeout > 0 {
		settings.Sync.Timeout = opts.Timeout
	}
	if dir := settings.Storage.Local.DataDir; !filepath.IsAbs(dir) {
		settings.Storage.Local.DataDir = filepath.Join(opts.Root, dir)
	}

	return settings, nil
}

func (a *App) status(ctx context.Context, out *report.Printer, svc service.PullService) int {
	out.Header(HeaderStatus)

	status, err := svc.Status(ctx)
	if err != nil {
		out.Error(MsgStatusFailed, err)
		return ExitFailure
	}

	out.Status(status)
	return ExitOK
}

// listDates never fails the process: errors are reported only.
func (a *App) listDates(ctx context.Context, out *report.Printer, svc service.PullService) int {
	out.Header(HeaderAvailableDates)

	dates, err := svc.ListDates(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("listing available dates failed")
		out.Error(MsgListDatesFailed, err)
		return ExitOK
	}

	out.AvailableDates(dates)
	return ExitOK
}

func (a *App) pull(ctx context.Context, out *report.Printer, svc service.PullService, opts *config.Options) int {
	out.Header(HeaderPull)

	days := opts.Days
	dateRange, err := opts.DateRange()
	if err != nil {
		out.Error(MsgInvalidOptions, err)
		return ExitFailure
	}
	if dateRange != nil {
		days = dateRange.Days()
	}

	out.PullPlan(days, opts.Start, opts.End, opts.Force)

	result, err := svc.Pull(ctx, days)

	var missing *validators.MissingFieldsError
	switch {
	case err == nil:
		out.SyncResult(result)
		return ExitOK
	case errors.As(err, &missing):
		out.MissingRemoteFields(missing.Missing)
	case errors.Is(err, service.ErrSyncFailed):
		out.SyncFailure(result.Error)
	default:
		out.Error(MsgPullFailed, err)
	}

	return ExitFailure
}
