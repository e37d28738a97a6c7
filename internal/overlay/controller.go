// Package overlay wires window events to the clock, drag and style logic of
// the floating clock. It owns the native window handle and the tick timer and
// knows nothing about how the window is drawn.
//
// Every handler must run on the UI thread; the controller holds no locks.
package overlay

import (
	"fmt"

	"floatingclock/internal/clock"
	"floatingclock/internal/drag"
	"floatingclock/internal/logger"
	"floatingclock/internal/platform"
)

// KeyEscape is the key name that closes the overlay
const KeyEscape = "Escape"

// Renderer displays the clock text
type Renderer interface {
	ShowSample(sample clock.Sample)
}

// Closer initiates closing of the window
type Closer interface {
	Close()
}

// Mover applies a new top-left position to a native window
type Mover interface {
	MoveWindowTo(handle platform.WindowHandle, x, y int) error
}

// Options configures a Controller
type Options struct {
	Platform platform.PlatformFeatures
	Renderer Renderer
	Closer   Closer
	Ticker   *clock.Ticker
	Logger   logger.LoggerInterface
}

// Controller is the event-driven core of the overlay window
type Controller struct {
	log      logger.LoggerInterface
	mover    Mover
	style    *platform.StyleController
	drag     *drag.Controller
	ticker   *clock.Ticker
	renderer Renderer
	closer   Closer

	handle  platform.WindowHandle
	ready   bool
	closing bool
}

// New creates the controller, renders the first sample and starts the ticker
func New(opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	ticker := opts.Ticker
	if ticker == nil {
		ticker = clock.NewTicker(clock.RealClock{}, nil)
	}

	c := &Controller{
		log:      log,
		mover:    opts.Platform,
		style:    platform.NewStyleController(opts.Platform),
		drag:     drag.NewController(opts.Platform),
		ticker:   ticker,
		renderer: opts.Renderer,
		closer:   opts.Closer,
	}

	c.OnTick(ticker.Sample())
	ticker.Start(c.OnTick)
	return c
}

// Handle returns the native handle, zero until OnReady succeeds
func (c *Controller) Handle() platform.WindowHandle {
	return c.handle
}

// OnReady takes ownership of the native handle and hides the window from the
// task switcher. Only the first call has any effect.
func (c *Controller) OnReady(handle platform.WindowHandle) error {
	if c.ready {
		return nil
	}

	style, err := c.style.ApplyToolWindowStyle(handle)
	if err != nil {
		return fmt.Errorf("hide overlay from task switcher: %w", err)
	}

	c.handle = handle
	c.ready = true
	c.log.Debug("Tool window style applied", "handle", fmt.Sprintf("0x%x", uintptr(handle)), "exstyle", fmt.Sprintf("0x%08x", uint32(style)))
	return nil
}

// OnLeftButtonDown records the window-relative press point
func (c *Controller) OnLeftButtonDown(anchor drag.Anchor) {
	c.drag.OnPressed(anchor)
	c.log.Trace("Drag anchor", "x", anchor.X, "y", anchor.Y)
}

// OnMouseMove moves the window while the left button is held.
// A failed cursor query skips this frame only.
func (c *Controller) OnMouseMove(leftHeld bool) {
	pos, ok, err := c.drag.OnMoved(leftHeld)
	if err != nil {
		c.log.Warn("Skipping drag frame", "error", err)
		return
	}
	if !ok || c.handle == 0 {
		return
	}

	if err := c.mover.MoveWindowTo(c.handle, pos.X, pos.Y); err != nil {
		c.log.Warn("Failed to move window", "error", err)
		return
	}
	c.log.Trace("Window moved", "x", pos.X, "y", pos.Y)
}

// OnKeyDown closes the window on Escape and reports whether the key was handled
func (c *Controller) OnKeyDown(key string) bool {
	if key != KeyEscape {
		return false
	}
	if c.closing {
		return true
	}

	c.closing = true
	c.log.Info("Escape pressed, closing overlay")
	if c.closer != nil {
		c.closer.Close()
	}
	return true
}

// OnTick hands a sample to the renderer
func (c *Controller) OnTick(sample clock.Sample) {
	if c.renderer != nil {
		c.renderer.ShowSample(sample)
	}
}

// Shutdown stops the ticker. The drag anchor is kept: a move arriving after
// close but before a new press would still use it.
func (c *Controller) Shutdown() {
	c.ticker.Stop()
}
