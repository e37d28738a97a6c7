//go:build linux

package platform

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// runFunc executes an external command and returns its stdout
type runFunc func(name string, args ...string) ([]byte, error)

func execRun(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// LinuxFeatures implements PlatformFeatures for Linux using xdotool/wmctrl.
// X11 has no extended style word, so the bits are tracked per window and
// WS_EX_TOOLWINDOW is translated into the skip_taskbar/skip_pager EWMH states.
type LinuxFeatures struct {
	mu     sync.Mutex
	styles map[WindowHandle]ExtendedStyle
	run    runFunc
}

// NewLinuxFeatures creates a new Linux platform features instance
func NewLinuxFeatures() *LinuxFeatures {
	return newLinuxFeatures(execRun)
}

func newLinuxFeatures(run runFunc) *LinuxFeatures {
	return &LinuxFeatures{
		styles: make(map[WindowHandle]ExtendedStyle),
		run:    run,
	}
}

// GetExtendedStyle returns the bits last written for the window
func (l *LinuxFeatures) GetExtendedStyle(handle WindowHandle) (ExtendedStyle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.styles[handle], nil
}

// SetExtendedStyle applies the EWMH equivalent of newly set bits
func (l *LinuxFeatures) SetExtendedStyle(handle WindowHandle, style ExtendedStyle) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.styles[handle]
	if style.Has(WS_EX_TOOLWINDOW) && !prev.Has(WS_EX_TOOLWINDOW) {
		if _, err := l.run("wmctrl", "-i", "-r", windowID(handle), "-b", "add,skip_taskbar,skip_pager"); err != nil {
			return &PlatformStyleError{Op: "wmctrl", Code: commandErrorCode(err)}
		}
	}
	l.styles[handle] = style
	return nil
}

// CursorPosition queries the pointer location through xdotool
func (l *LinuxFeatures) CursorPosition() (ScreenPoint, error) {
	out, err := l.run("xdotool", "getmouselocation", "--shell")
	if err != nil {
		return ScreenPoint{}, &CursorQueryError{Err: err}
	}
	pt, err := parseMouseLocation(string(out))
	if err != nil {
		return ScreenPoint{}, &CursorQueryError{Err: err}
	}
	return pt, nil
}

// SetAlwaysOnTop toggles the EWMH "above" state using wmctrl
func (l *LinuxFeatures) SetAlwaysOnTop(handle WindowHandle, onTop bool) error {
	action := "add"
	if !onTop {
		action = "remove"
	}
	if _, err := l.run("wmctrl", "-i", "-r", windowID(handle), "-b", action+",above"); err != nil {
		return fmt.Errorf("always-on-top not available (install wmctrl): %w", err)
	}
	return nil
}

// SetTransparency sets window transparency using xprop
func (l *LinuxFeatures) SetTransparency(handle WindowHandle, opacity float64) error {
	alpha := uint32(opacity * 0xFFFFFFFF)
	_, err := l.run("xprop", "-id", windowID(handle),
		"-f", "_NET_WM_WINDOW_OPACITY", "32c",
		"-set", "_NET_WM_WINDOW_OPACITY", strconv.FormatUint(uint64(alpha), 10))
	if err != nil {
		return fmt.Errorf("transparency not available (install xprop/x11-utils): %w", err)
	}
	return nil
}

// MoveWindowTo moves a window to a position
func (l *LinuxFeatures) MoveWindowTo(handle WindowHandle, x, y int) error {
	_, err := l.run("xdotool", "windowmove",
		strconv.FormatUint(uint64(handle), 10), strconv.Itoa(x), strconv.Itoa(y))
	if err != nil {
		return fmt.Errorf("xdotool windowmove failed: %w", err)
	}
	return nil
}

// FindWindowHandle finds a window by title using xdotool
func FindWindowHandle(title string) (WindowHandle, error) {
	out, err := execRun("xdotool", "search", "--name", title)
	if err != nil {
		return 0, fmt.Errorf("xdotool search failed: %w", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return 0, fmt.Errorf("window not found: %s", title)
	}
	id, err := strconv.ParseUint(lines[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window id: %s", lines[0])
	}
	return WindowHandle(id), nil
}

// Features is the process-wide platform implementation
var Features PlatformFeatures = NewLinuxFeatures()
