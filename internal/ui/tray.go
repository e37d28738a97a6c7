package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"floatingclock/internal/assets"
	"floatingclock/internal/logger"
)

// TrayManager handles the system tray icon and menu
type TrayManager struct {
	app    fyne.App
	log    logger.LoggerInterface
	menu   *fyne.Menu
	onQuit func()
}

// NewTrayManager creates a new tray manager
func NewTrayManager(app fyne.App, log logger.LoggerInterface) *TrayManager {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &TrayManager{app: app, log: log}
}

// SetOnQuit sets the callback for the Quit item
func (t *TrayManager) SetOnQuit(onQuit func()) {
	t.onQuit = onQuit
}

// Setup initializes the system tray
func (t *TrayManager) Setup() error {
	desk, ok := t.app.(desktop.App)
	if !ok {
		return fmt.Errorf("system tray not supported on this platform")
	}

	title := fyne.NewMenuItem(OverlayTitle, nil)
	title.Disabled = true

	t.menu = fyne.NewMenu(OverlayTitle,
		title,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", t.quit),
	)

	desk.SetSystemTrayMenu(t.menu)
	desk.SetSystemTrayIcon(assets.TrayIcon())
	t.log.Debug("System tray initialized")
	return nil
}

func (t *TrayManager) quit() {
	if t.onQuit != nil {
		t.onQuit()
	}
}

// Menu returns the tray menu, nil before Setup
func (t *TrayManager) Menu() *fyne.Menu {
	return t.menu
}
