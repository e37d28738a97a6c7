package app

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"floatingclock/internal/assets"
	"floatingclock/internal/config"
	"floatingclock/internal/logger"
	"floatingclock/internal/platform"
	"floatingclock/internal/ui"
)

const appID = "com.floatingclock.app"

// Options configures Run
type Options struct {
	ConfigPath string
	LogDir     string
	Verbose    bool
}

// App is the main application
type App struct {
	fyneApp fyne.App
	config  *config.Config
	log     logger.LoggerInterface

	// UI components
	tray    *ui.TrayManager
	overlay *ui.OverlayWindow

	// State
	mu      sync.Mutex
	running bool
}

// Run starts the application and blocks until the overlay is closed.
// It returns the error that closed the overlay, if any.
func Run(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogDir != "" {
		cfg.LogDir = opts.LogDir
	}
	if opts.Verbose {
		cfg.Verbose = true
	}

	log, err := logger.NewLogger(logger.LoggerOptions{
		Verbose:  cfg.Verbose,
		LogDir:   cfg.LogDir,
		Compress: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Close()

	log.Debug("Starting FloatingClock",
		"opacity", cfg.Opacity,
		"alwaysOnTop", cfg.AlwaysOnTop,
		"logPath", log.GetLogPath(),
	)

	a := &App{
		config: cfg,
		log:    log,
	}

	// Initialize Fyne app
	a.fyneApp = app.NewWithID(appID)
	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.fyneApp.SetIcon(assets.AppIcon())

	a.initUI()

	a.fyneApp.Lifecycle().SetOnStarted(a.overlay.Ready)
	a.fyneApp.Lifecycle().SetOnStopped(a.shutdown)

	a.running = true
	a.overlay.Show()

	// Run the app (blocking)
	a.fyneApp.Run()

	// Cleanup
	a.shutdown()

	if err := a.overlay.Err(); err != nil {
		log.Error("Overlay closed with error", "error", err)
		return err
	}
	return nil
}

// initUI initializes all UI components
func (a *App) initUI() {
	a.overlay = ui.NewOverlayWindow(a.fyneApp, ui.OverlayOptions{
		Config:   a.config,
		Platform: platform.Features,
		Logger:   a.log,
	})

	a.tray = ui.NewTrayManager(a.fyneApp, a.log)
	a.tray.SetOnQuit(a.overlay.Close)
	if err := a.tray.Setup(); err != nil {
		a.log.Warn("System tray setup failed", "error", err)
	}
}

// shutdown stops the clock. Safe to call more than once.
func (a *App) shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return
	}
	a.running = false

	a.log.Debug("Shutting down...")
	a.overlay.Shutdown()
	a.log.Debug("Shutdown complete")
}
