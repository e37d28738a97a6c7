package platform

// WindowHandle represents a platform-specific window handle
type WindowHandle uintptr

// ExtendedStyle is the extended window style bitset of a native window
type ExtendedStyle uint32

// Extended style bits
const (
	WS_EX_TOPMOST     ExtendedStyle = 0x00000008
	WS_EX_TRANSPARENT ExtendedStyle = 0x00000020
	WS_EX_TOOLWINDOW  ExtendedStyle = 0x00000080
	WS_EX_LAYERED     ExtendedStyle = 0x00080000
)

// Has reports whether all bits of flag are set
func (s ExtendedStyle) Has(flag ExtendedStyle) bool {
	return s&flag == flag
}

// ScreenPoint is an absolute screen coordinate (origin = top-left of the screen)
type ScreenPoint struct {
	X int
	Y int
}

// Sub returns p - q
func (p ScreenPoint) Sub(x, y int) ScreenPoint {
	return ScreenPoint{X: p.X - x, Y: p.Y - y}
}

// StyleAccessor reads and writes the extended style of a window.
// All pointer-width and last-error handling stays behind this interface.
type StyleAccessor interface {
	GetExtendedStyle(handle WindowHandle) (ExtendedStyle, error)
	SetExtendedStyle(handle WindowHandle, style ExtendedStyle) error
}

// CursorProbe returns the current absolute cursor position
type CursorProbe interface {
	CursorPosition() (ScreenPoint, error)
}

// PlatformFeatures defines the interface for platform-specific features.
// Each platform (Windows, Linux, macOS) must implement this interface.
type PlatformFeatures interface {
	StyleAccessor
	CursorProbe

	// Window management
	SetAlwaysOnTop(handle WindowHandle, onTop bool) error
	SetTransparency(handle WindowHandle, opacity float64) error
	MoveWindowTo(handle WindowHandle, x, y int) error
}
