package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"task-entry/internal/aggregator"
	"task-entry/internal/config"
	"task-entry/internal/domain"
	"task-entry/internal/draftstore"
	"task-entry/internal/editor"
	"task-entry/internal/form"
	"task-entry/internal/logging"
	"task-entry/internal/notify"
	"task-entry/internal/refdata"
	"task-entry/internal/restapi"
	"task-entry/internal/session"
)

// App wires the task entry components together for the CLI
type App struct {
	config     *config.Config
	logger     *zap.Logger
	session    session.Store
	drafts     draftstore.Repository
	backend    restapi.Backend
	notifier   notify.Notifier
	form       *form.Manager
	aggregator *aggregator.Aggregator
	editor     *editor.Controller
	refdata    *refdata.Loader
	registry   *CommandRegistry

	// explicitID is the value of the --employee-id flag, if given
	explicitID string

	out io.Writer
	in  io.Reader
}

// NewApp creates a fully wired application from the given configuration.
// An explicit employee id (from the --employee-id flag) takes precedence
// over the stored session value and replaces it.
func NewApp(cfg *config.Config, explicitID string) (*App, error) {
	logger := logging.New(cfg.Application.Verbose)

	if err := os.MkdirAll(cfg.Drafts.Dir, os.FileMode(cfg.Drafts.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create drafts directory: %w", err)
	}

	repo, err := draftstore.New(cfg.GetDraftsPath(), cfg.GetQueryTimeout(), cfg.GetWriteTimeout())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize draft database: %w", err)
	}

	store := session.NewStore(cfg)
	client := restapi.NewClient(cfg, logger)
	surface := notify.NewSurface(os.Stdout, os.Stdin)

	return newApp(cfg, logger, store, repo, client, surface, explicitID, os.Stdout, os.Stdin), nil
}

// newApp builds the component graph. Tests call it directly with mocks.
func newApp(cfg *config.Config, logger *zap.Logger, store session.Store, repo draftstore.Repository,
	backend restapi.Backend, notifier notify.Notifier, explicitID string, out io.Writer, in io.Reader) *App {
	agg := aggregator.New(backend, logger)
	app := &App{
		config:     cfg,
		logger:     logger,
		session:    store,
		drafts:     repo,
		backend:    backend,
		notifier:   notifier,
		form:       form.NewManager(repo, backend, agg, notifier, logger),
		aggregator: agg,
		editor:     editor.NewController(agg, backend, notifier, logger),
		refdata:    refdata.NewLoader(backend, logger),
		explicitID: explicitID,
		out:        out,
		in:         in,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Close releases the application's resources
func (a *App) Close() error {
	return a.drafts.Close()
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	commandName := args[0]
	commandArgs := args[1:]

	return a.registry.Execute(ctx, commandName, commandArgs)
}

// Identity resolves the active employee, preferring the --employee-id
// flag over the stored session, and fills in the employee name from the
// backend when it is reachable.
func (a *App) Identity(ctx context.Context) (domain.EmployeeIdentity, error) {
	identity, err := session.ResolveIdentity(a.session, a.explicitID)
	if err != nil {
		return identity, err
	}
	return a.refdata.LoadIdentity(ctx, a.session, identity), nil
}
