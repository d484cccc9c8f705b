// Package cli wires configuration, logging and theming for the CLI commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/domain/build"
	"github.com/bnema/splitter/internal/infrastructure/config"
	"github.com/bnema/splitter/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	fileLog    bool
	logCleanup func()
}

// NewApp loads the configuration and sets up logging.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	return newApp(mgr, mgr.Get())
}

// NewAppWithConfig builds an App around an already loaded config without a
// manager, so hot reload is unavailable.
func NewAppWithConfig(cfg *config.Config) (*App, error) {
	return newApp(nil, cfg)
}

func newApp(mgr *config.Manager, cfg *config.Config) (*App, error) {
	logger, fileLog, cleanup, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	ctx := logging.WithContext(context.Background(), logger)
	if mgr != nil {
		mgr.SetLogger(logger)
	}
	logger.Debug().
		Str("config_file", configFileUsed(mgr)).
		Bool("file_log", fileLog).
		Msg("cli initialized")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		ctx:        ctx,
		fileLog:    fileLog,
		logCleanup: cleanup,
	}, nil
}

// newLogger writes to a rotated file when file logging is enabled and to
// stderr otherwise.
func newLogger(cfg config.LoggingConfig) (zerolog.Logger, bool, func(), error) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Level),
		Format:     cfg.Format,
		TimeFormat: "15:04:05",
	}
	if !cfg.EnableFileLog || logCfg.Level == zerolog.Disabled {
		return logging.New(logCfg), false, func() {}, nil
	}

	rotator, err := logging.NewLogRotator(logging.RotatorConfig{
		Dir:        cfg.LogDir,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAge,
		Compress:   cfg.Compress,
	})
	if err != nil {
		return zerolog.Logger{}, false, nil, fmt.Errorf("open log file: %w", err)
	}
	logCfg.Output = rotator
	cleanup := func() {
		if closeErr := rotator.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "close log file: %v\n", closeErr)
		}
	}
	return logging.New(logCfg), true, cleanup, nil
}

func configFileUsed(mgr *config.Manager) string {
	if mgr == nil {
		return ""
	}
	return mgr.GetConfigFile()
}

// WatchConfig reloads the config file on change and passes every valid
// version to onChange. Reload problems are logged through ctx's logger.
func (a *App) WatchConfig(ctx context.Context, onChange func(*config.Config)) error {
	if a.Manager == nil {
		return fmt.Errorf("config hot reload needs a config manager")
	}
	a.Manager.SetLogger(*logging.FromContext(ctx))
	a.Manager.OnConfigChange(onChange)
	return a.Manager.Watch()
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// TUICtx returns a context whose logger never writes to the terminal, for
// programs that take over the screen.
func (a *App) TUICtx() context.Context {
	if a.fileLog {
		return a.ctx
	}
	return logging.WithContext(a.ctx, zerolog.New(io.Discard))
}
