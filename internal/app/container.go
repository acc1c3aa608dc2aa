// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"slices"

	"github.com/bstc-oman/dispatch/internal/board"
	"github.com/bstc-oman/dispatch/internal/domain"
	"github.com/bstc-oman/dispatch/internal/infra/clock"
	"github.com/bstc-oman/dispatch/internal/infra/config"
	"github.com/bstc-oman/dispatch/internal/infra/idgen"
	"github.com/bstc-oman/dispatch/internal/infra/logging"
	"github.com/bstc-oman/dispatch/internal/usecase"
)

// Config holds the application paths and command-line overrides.
type Config struct {
	WorkDir      string // Working directory
	WorkspaceDir string // Path to the .dispatch directory (config, logs)
	LogLevel     string // Overrides [log] level when set
}

// NewConfig returns the default Config for a working directory.
func NewConfig(workDir string) Config {
	return Config{
		WorkDir:      workDir,
		WorkspaceDir: domain.WorkspaceDir(workDir),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations, the board state machine and factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Clock         domain.Clock
	IDs           domain.IDGenerator
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	TimeSource    domain.TimeSource

	// Board state machine
	Board *usecase.JobBoard
	Drag  *board.Coordinator[domain.Stage]
	Edit  *board.EditSession[domain.Stage]

	// Configuration
	AppConfig *domain.Config
	closer    func() error
	Config    Config
}

// New creates a new Container from the configuration files found for cfg.
func New(cfg Config) (*Container, error) {
	if cfg.WorkspaceDir == "" {
		cfg.WorkspaceDir = domain.WorkspaceDir(cfg.WorkDir)
	}

	configLoader := config.NewLoader(cfg.WorkspaceDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := appConfig.Log.Level
	if cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	fileLogger := logging.New(cfg.WorkspaceDir, logging.ParseLevel(level))

	c, err := NewWithDeps(cfg, appConfig, domain.RealClock{}, idgen.New(), fileLogger)
	if err != nil {
		_ = fileLogger.Close()
		return nil, err
	}
	c.ConfigLoader = configLoader
	c.ConfigManager = config.NewManager(cfg.WorkspaceDir)
	c.TimeSource = clock.New(appConfig.Clock.URL, appConfig.Clock.Timeout, clock.WithLogger(fileLogger))
	c.closer = fileLogger.Close
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// The board is built from appConfig but left empty.
func NewWithDeps(cfg Config, appConfig *domain.Config, clk domain.Clock, ids domain.IDGenerator, logger domain.Logger) (*Container, error) {
	if logger == nil {
		logger = domain.NopLogger{}
	}

	b, err := newBoard(appConfig, clk, ids)
	if err != nil {
		return nil, err
	}
	b.Subscribe(logEvents(logger))

	edit := board.NewEditSession(b)
	return &Container{
		Clock:      clk,
		IDs:        ids,
		Logger:     logger,
		TimeSource: clock.New("", 0, clock.WithLocalClock(clk)),
		Board:      b,
		Drag:       board.NewCoordinator(b, edit),
		Edit:       edit,
		AppConfig:  appConfig,
		Config:     cfg,
	}, nil
}

// newBoard builds the job board from the configured columns and fields.
// An unknown default column falls back to the first column with a config warning.
func newBoard(appConfig *domain.Config, clk domain.Clock, ids domain.IDGenerator) (*usecase.JobBoard, error) {
	cols := appConfig.Columns()
	opts := []board.Option[domain.Stage]{
		board.WithClock[domain.Stage](clk),
		board.WithIDGenerator[domain.Stage](ids),
	}

	if dc := appConfig.Board.DefaultColumn; dc != "" {
		if slices.ContainsFunc(cols, func(c domain.Column[domain.Stage]) bool { return string(c.ID) == dc }) {
			opts = append(opts, board.WithActiveColumn(domain.Stage(dc)))
		} else {
			appConfig.Warnings = append(appConfig.Warnings,
				fmt.Sprintf("[board] default_column %q is not a column; using %q", dc, cols[0].ID))
		}
	}

	b, err := board.NewStore(cols, appConfig.Schema(), opts...)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}
	return b, nil
}

// logEvents returns a store listener that writes every board mutation to the log.
func logEvents(l domain.Logger) func(board.Event[domain.Stage]) {
	return func(ev board.Event[domain.Stage]) {
		category := ev.Kind.String()
		switch {
		case ev.Err != nil:
			l.Warn(ev.ItemID, category, "rejected: "+ev.Err.Error())
		case ev.Noop:
			l.Debug(ev.ItemID, category, "no change")
		case ev.Kind == board.EventAdded:
			l.Info(ev.ItemID, category, fmt.Sprintf("added to %s", ev.To))
		case ev.Kind == board.EventMoved:
			l.Info(ev.ItemID, category, fmt.Sprintf("%s -> %s", ev.From, ev.To))
		case ev.Kind == board.EventEdited:
			l.Info(ev.ItemID, category, "updated "+ev.Field)
		case ev.Kind == board.EventRemoved:
			l.Info(ev.ItemID, category, fmt.Sprintf("removed from %s", ev.To))
		default:
			l.Debug(ev.ItemID, category, "ok")
		}
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// UseCase factory methods

// LoadBoardUseCase returns a new LoadBoard use case.
func (c *Container) LoadBoardUseCase() *usecase.LoadBoard {
	return usecase.NewLoadBoard(c.Board, c.Logger)
}

// AddJobUseCase returns a new AddJob use case.
func (c *Container) AddJobUseCase() *usecase.AddJob {
	return usecase.NewAddJob(c.Board, c.Clock)
}

// EditJobUseCase returns a new EditJob use case.
func (c *Container) EditJobUseCase() *usecase.EditJob {
	return usecase.NewEditJob(c.Board)
}

// MoveJobUseCase returns a new MoveJob use case.
func (c *Container) MoveJobUseCase() *usecase.MoveJob {
	return usecase.NewMoveJob(c.Board)
}

// RemoveJobUseCase returns a new RemoveJob use case.
func (c *Container) RemoveJobUseCase() *usecase.RemoveJob {
	return usecase.NewRemoveJob(c.Board)
}

// ShowBoardUseCase returns a new ShowBoard use case.
func (c *Container) ShowBoardUseCase() *usecase.ShowBoard {
	return usecase.NewShowBoard(c.Board)
}

// ReplayUseCase returns a new Replay use case.
func (c *Container) ReplayUseCase() *usecase.Replay {
	return usecase.NewReplay(c.Board, c.Drag, c.Edit, c.AddJobUseCase(), c.EditJobUseCase(), c.MoveJobUseCase(), c.Logger)
}

// LoginUseCase returns a new Login use case.
func (c *Container) LoginUseCase() *usecase.Login {
	return usecase.NewLogin(c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
