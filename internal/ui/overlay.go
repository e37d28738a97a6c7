package ui

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"fyne.io/fyne/v2/driver/desktop"

	"floatingclock/internal/clock"
	"floatingclock/internal/config"
	"floatingclock/internal/drag"
	"floatingclock/internal/logger"
	"floatingclock/internal/overlay"
	"floatingclock/internal/platform"
)

const (
	// OverlayTitle is the native window title, used to look the window up
	// when the driver does not expose its handle
	OverlayTitle = "FloatingClock"

	handleRetries    = 10
	handleRetryDelay = 100 * time.Millisecond
)

// OverlayOptions configures an OverlayWindow
type OverlayOptions struct {
	Config   *config.Config
	Platform platform.PlatformFeatures
	Logger   logger.LoggerInterface
	Clock    clock.Clock

	// Dispatch runs tick callbacks on the UI thread. Defaults to fyne.Do.
	Dispatch func(func())

	// FindHandle looks a window up by title. Defaults to platform.FindWindowHandle.
	FindHandle func(title string) (platform.WindowHandle, error)
}

// OverlayWindow is the borderless clock window
type OverlayWindow struct {
	window   fyne.Window
	face     *ClockFace
	config   *config.Config
	platform platform.PlatformFeatures
	log      logger.LoggerInterface
	ctrl     *overlay.Controller

	findHandle func(title string) (platform.WindowHandle, error)

	mu     sync.Mutex
	err    error
	closed bool
}

// NewOverlayWindow creates the window, its controller and the running clock.
// The window is not shown.
func NewOverlayWindow(app fyne.App, opts OverlayOptions) *OverlayWindow {
	o := &OverlayWindow{
		config:     opts.Config,
		platform:   opts.Platform,
		log:        opts.Logger,
		findHandle: opts.FindHandle,
	}
	if o.config == nil {
		o.config = config.Default()
	}
	if o.platform == nil {
		o.platform = platform.Features
	}
	if o.log == nil {
		o.log = logger.NewNoOpLogger()
	}
	if o.findHandle == nil {
		o.findHandle = platform.FindWindowHandle
	}

	dispatch := opts.Dispatch
	if dispatch == nil {
		dispatch = fyne.Do
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}

	o.window = newBorderlessWindow(app)
	o.window.SetTitle(OverlayTitle)
	o.window.SetPadded(false)
	o.window.SetFixedSize(true)
	o.window.SetMaster()

	o.face = NewClockFace()
	o.window.SetContent(o.face)
	o.window.Resize(o.face.MinSize())

	o.ctrl = overlay.New(overlay.Options{
		Platform: o.platform,
		Renderer: o.face,
		Closer:   o,
		Ticker:   clock.NewTicker(clk, dispatch),
		Logger:   o.log,
	})

	o.face.OnPressed = o.onPressed
	o.face.OnMoved = o.ctrl.OnMouseMove
	o.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		o.ctrl.OnKeyDown(string(ev.Name))
	})

	return o
}

// newBorderlessWindow uses a splash window where the driver offers one,
// it has no title bar or border
func newBorderlessWindow(app fyne.App) fyne.Window {
	if drv, ok := app.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	return app.NewWindow(OverlayTitle)
}

// Show displays the window
func (o *OverlayWindow) Show() {
	o.window.Show()
}

// Ready resolves the native handle of the shown window and hands it to the
// controller. Must be called on the UI thread once the app has started.
// Fyne only creates the native window on Show, so the tool window style lands
// just after the window first becomes visible.
func (o *OverlayWindow) Ready() {
	if handle := o.nativeHandle(); handle != 0 {
		o.attach(handle)
		return
	}

	// The driver creates the native window lazily; poll until it exists
	go func() {
		handle, err := o.waitForHandle()
		if err != nil {
			o.log.Error("Failed to get window handle", "error", err)
			fyne.Do(func() { o.fail(err) })
			return
		}
		fyne.Do(func() { o.attach(handle) })
	}()
}

func (o *OverlayWindow) waitForHandle() (platform.WindowHandle, error) {
	var lastErr error
	for i := 0; i < handleRetries; i++ {
		time.Sleep(handleRetryDelay)

		var handle platform.WindowHandle
		fyne.DoAndWait(func() { handle = o.nativeHandle() })
		if handle != 0 {
			return handle, nil
		}

		handle, err := o.findHandle(OverlayTitle)
		if err == nil && handle != 0 {
			return handle, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = platform.ErrNoWindowHandle
	}
	return 0, fmt.Errorf("resolve overlay window: %w", lastErr)
}

// nativeHandle asks the driver for the OS window handle, zero if unavailable
func (o *OverlayWindow) nativeHandle() platform.WindowHandle {
	nw, ok := o.window.(driver.NativeWindow)
	if !ok {
		return 0
	}

	var handle platform.WindowHandle
	nw.RunNative(func(ctx any) {
		switch c := ctx.(type) {
		case driver.WindowsWindowContext:
			handle = platform.WindowHandle(c.HWND)
		case driver.X11WindowContext:
			handle = platform.WindowHandle(c.WindowHandle)
		case driver.MacWindowContext:
			handle = platform.WindowHandle(c.NSWindow)
		}
	})
	return handle
}

// attach applies the tool window style, then the optional window features.
// A style failure closes the overlay.
func (o *OverlayWindow) attach(handle platform.WindowHandle) {
	if err := o.ctrl.OnReady(handle); err != nil {
		o.log.Error("Failed to prepare overlay window", "error", err)
		o.fail(err)
		return
	}
	o.applyWindowFeatures(handle)
}

func (o *OverlayWindow) applyWindowFeatures(handle platform.WindowHandle) {
	if o.config.AlwaysOnTop {
		if err := o.platform.SetAlwaysOnTop(handle, true); err != nil {
			o.log.Warn("Failed to set always on top", "error", err)
		}
	}

	if err := o.platform.SetTransparency(handle, o.config.Opacity); err != nil {
		o.log.Warn("Failed to set transparency", "error", err)
	}

	if o.config.HasStartPosition() {
		if err := o.platform.MoveWindowTo(handle, o.config.StartX, o.config.StartY); err != nil {
			o.log.Warn("Failed to move window to start position", "error", err)
		}
	}

	o.log.Debug("Window features applied",
		"opacity", o.config.Opacity,
		"alwaysOnTop", o.config.AlwaysOnTop,
	)
}

// onPressed converts the canvas position to a window-relative pixel anchor
func (o *OverlayWindow) onPressed(pos fyne.Position) {
	scale := o.window.Canvas().Scale()
	o.ctrl.OnLeftButtonDown(drag.Anchor{
		X: int(pos.X * scale),
		Y: int(pos.Y * scale),
	})
}

func (o *OverlayWindow) fail(err error) {
	o.mu.Lock()
	if o.err == nil {
		o.err = err
	}
	o.mu.Unlock()
	o.Close()
}

// Err returns the error that closed the overlay, if any
func (o *OverlayWindow) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

// Close closes the window. Repeated calls do nothing.
func (o *OverlayWindow) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.mu.Unlock()

	o.window.Close()
}

// Closed reports whether Close has been called
func (o *OverlayWindow) Closed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

// Shutdown stops the clock
func (o *OverlayWindow) Shutdown() {
	o.ctrl.Shutdown()
}

// Face returns the clock widget
func (o *OverlayWindow) Face() *ClockFace {
	return o.face
}

// Window returns the underlying Fyne window
func (o *OverlayWindow) Window() fyne.Window {
	return o.window
}
