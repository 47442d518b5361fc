package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/xvierd/neck-cli/internal/adapters/audio"
	"github.com/xvierd/neck-cli/internal/adapters/notification"
	"github.com/xvierd/neck-cli/internal/adapters/storage"
	"github.com/xvierd/neck-cli/internal/catalog"
	"github.com/xvierd/neck-cli/internal/config"
	"github.com/xvierd/neck-cli/internal/domain"
	"github.com/xvierd/neck-cli/internal/ports"
	"github.com/xvierd/neck-cli/internal/sched"
	"github.com/xvierd/neck-cli/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	log      *slog.Logger
	logFile  io.Closer
	storage  ports.Storage
	routine  *domain.Routine
	loop     *sched.Loop
	stopLoop context.CancelFunc
	loopDone chan struct{}
	cues     *audio.Beeper
	notifier *notification.Notifier
	routines *services.RoutineService
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
		home, _ := os.UserHomeDir()
		app.config.Storage.DataDir = filepath.Join(home, ".neck")
	}

	app.log, app.logFile = newLogger(app.config)
	if err != nil {
		app.log.Warn("using default config", "error", err)
	}

	// Determine database path
	path := dbPath
	if path == "" {
		path = config.GetDBPath(app.config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	app.storage, err = storage.New(path)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Routine: --routine flag > config > built-in
	routinePath := routineFile
	if routinePath == "" {
		routinePath = app.config.Routine.File
	}
	app.routine, err = catalog.Load(routinePath)
	if err != nil {
		return fmt.Errorf("failed to load routine: %w", err)
	}

	// --mute must not leak into a config the config command saves.
	sound := app.config.Sound
	app.cues = audio.New(&sound, app.log)
	if muteFlag {
		app.cues.SetEnabled(false)
	}
	app.notifier = notification.New(&app.config.Notifications)

	app.loop = sched.NewLoop()
	app.routines = services.NewRoutineService(app.routine, app.storage, app.loop, app.cues, app.notifier)
	app.routines.SetLogger(app.log)
	app.routines.SetTickInterval(app.config.TickInterval())
	startLoop()

	return withService(context.Background(), func(svc *services.RoutineService) error {
		svc.Hydrate(context.Background())
		return nil
	})
}

// startLoop starts the goroutine all routine state lives on.
func startLoop() {
	ctx, cancel := context.WithCancel(context.Background())
	app.stopLoop = cancel
	app.loopDone = make(chan struct{})

	go func() {
		defer close(app.loopDone)
		_ = app.loop.Run(ctx)
	}()
}

// withService runs fn on the routine loop and waits for it.
func withService(ctx context.Context, fn func(*services.RoutineService) error) error {
	return app.loop.Call(ctx, func() error { return fn(app.routines) })
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.stopLoop != nil {
		app.stopLoop()
		<-app.loopDone
		app.stopLoop = nil
	}
	if app.cues != nil {
		app.cues.Wait()
	}
	var err error
	if app.storage != nil {
		err = app.storage.Close()
		app.storage = nil
	}
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
	return err
}

// newLogger opens the log file in the data directory. The TUI owns the
// terminal, so nothing is logged to stderr. On failure logs are discarded.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer) {
	level := slog.LevelInfo
	if verbose || strings.EqualFold(cfg.Log.Level, "debug") {
		level = slog.LevelDebug
	} else if strings.EqualFold(cfg.Log.Level, "warn") {
		level = slog.LevelWarn
	}

	if err := os.MkdirAll(cfg.Storage.DataDir, 0750); err != nil {
		return slog.New(slog.DiscardHandler), nil
	}
	f, err := os.OpenFile(config.GetLogPath(cfg), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return slog.New(slog.DiscardHandler), nil
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
