// Package drag turns press/move events into new top-left positions for a
// frameless window.
package drag

import (
	"floatingclock/internal/platform"
)

// Anchor is a point relative to the window's top-left corner at press time.
// It is never an absolute screen coordinate.
type Anchor struct {
	X int
	Y int
}

// Controller keeps the anchor captured at the last press. There is no release
// state: the anchor is overwritten by the next press and never cleared.
type Controller struct {
	probe     platform.CursorProbe
	anchor    Anchor
	hasAnchor bool
}

// NewController creates a drag controller reading the cursor from probe
func NewController(probe platform.CursorProbe) *Controller {
	return &Controller{probe: probe}
}

// OnPressed records the window-relative point of a left-button press.
// Any value is accepted, including negative coordinates.
func (c *Controller) OnPressed(anchor Anchor) {
	c.anchor = anchor
	c.hasAnchor = true
}

// Anchor returns the current anchor and whether a press was ever seen
func (c *Controller) Anchor() (Anchor, bool) {
	return c.anchor, c.hasAnchor
}

// OnMoved returns the new window top-left for a move event. It reports false
// when the left button is not held, when no press was ever recorded, or when
// the cursor could not be read; the probe error is returned for logging only
// and the caller should skip this frame.
func (c *Controller) OnMoved(leftHeld bool) (platform.ScreenPoint, bool, error) {
	if !leftHeld || !c.hasAnchor {
		return platform.ScreenPoint{}, false, nil
	}

	cursor, err := c.probe.CursorPosition()
	if err != nil {
		return platform.ScreenPoint{}, false, err
	}

	return cursor.Sub(c.anchor.X, c.anchor.Y), true, nil
}
