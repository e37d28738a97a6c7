//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
	"sync"
)

// DarwinFeatures implements PlatformFeatures for macOS.
// Without CGO there is no NSWindow access, so style bits are only tracked
// (macOS has no alt-tab entry per window anyway) and the cursor query is
// unsupported.
type DarwinFeatures struct {
	mu     sync.Mutex
	styles map[WindowHandle]ExtendedStyle
}

// NewDarwinFeatures creates a new macOS platform features instance
func NewDarwinFeatures() *DarwinFeatures {
	return &DarwinFeatures{
		styles: make(map[WindowHandle]ExtendedStyle),
	}
}

// GetExtendedStyle returns the bits last written for the window
func (d *DarwinFeatures) GetExtendedStyle(handle WindowHandle) (ExtendedStyle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.styles[handle], nil
}

// SetExtendedStyle records the bits for the window
func (d *DarwinFeatures) SetExtendedStyle(handle WindowHandle, style ExtendedStyle) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.styles[handle] = style
	return nil
}

// CursorPosition needs CGEventGetLocation, which requires CGO
func (d *DarwinFeatures) CursorPosition() (ScreenPoint, error) {
	return ScreenPoint{}, &CursorQueryError{Err: ErrUnsupported}
}

// SetAlwaysOnTop needs the NSWindow level, which requires CGO
func (d *DarwinFeatures) SetAlwaysOnTop(handle WindowHandle, onTop bool) error {
	return ErrUnsupported
}

// SetTransparency needs NSWindow alphaValue, which requires CGO
func (d *DarwinFeatures) SetTransparency(handle WindowHandle, opacity float64) error {
	return ErrUnsupported
}

// MoveWindowTo moves the frontmost window using AppleScript
func (d *DarwinFeatures) MoveWindowTo(handle WindowHandle, x, y int) error {
	script := fmt.Sprintf(`
		tell application "System Events"
			tell (first process whose frontmost is true)
				set position of window 1 to {%d, %d}
			end tell
		end tell`, x, y)
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return fmt.Errorf("AppleScript move failed: %w", err)
	}
	return nil
}

// FindWindowHandle would need CGWindowListCopyWindowInfo via CGO
func FindWindowHandle(title string) (WindowHandle, error) {
	return 0, fmt.Errorf("find window %q: %w", title, ErrUnsupported)
}

// Features is the process-wide platform implementation
var Features PlatformFeatures = NewDarwinFeatures()
