//go:build windows

package platform

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procGetWindowLong        = user32.NewProc("GetWindowLongW")
	procSetWindowLong        = user32.NewProc("SetWindowLongW")
	procSetWindowLongPtr     = user32.NewProc("SetWindowLongPtrW")
	procSetWindowPos         = user32.NewProc("SetWindowPos")
	procSetLayeredWindowAttr = user32.NewProc("SetLayeredWindowAttributes")
	procGetCursorPos         = user32.NewProc("GetCursorPos")
	procFindWindow           = user32.NewProc("FindWindowW")
	procSetLastError         = kernel32.NewProc("SetLastError")
)

// Windows constants
const (
	HWND_TOPMOST   = ^uintptr(0) // -1
	HWND_NOTOPMOST = ^uintptr(1) // -2
	SWP_NOSIZE     = 0x0001
	SWP_NOMOVE     = 0x0002
	SWP_NOZORDER   = 0x0004
	SWP_NOACTIVATE = 0x0010

	LWA_ALPHA = 0x00000002
)

// gwlExStyle is GWL_EXSTYLE (-20) sign-extended to pointer width
var gwlExStyle = int32ToUintptr(-20)

func int32ToUintptr(v int32) uintptr {
	return uintptr(v)
}

// is32Bit selects SetWindowLongW over SetWindowLongPtrW, which user32 only
// exports on 64-bit builds.
var is32Bit = unsafe.Sizeof(uintptr(0)) == 4

// WindowsFeatures implements PlatformFeatures for Windows
type WindowsFeatures struct{}

// NewWindowsFeatures creates a new Windows platform features instance
func NewWindowsFeatures() *WindowsFeatures {
	return &WindowsFeatures{}
}

// GetExtendedStyle reads GWL_EXSTYLE of the window
func (w *WindowsFeatures) GetExtendedStyle(handle WindowHandle) (ExtendedStyle, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ret, err := lastErrorCall("GetWindowLongW", clearLastError, func() (uintptr, uint32) {
		r, _, callErr := procGetWindowLong.Call(uintptr(handle), gwlExStyle)
		return r, errnoCode(callErr)
	})
	if err != nil {
		return 0, err
	}
	return ExtendedStyle(uint32(ret)), nil
}

// SetExtendedStyle writes GWL_EXSTYLE of the window.
// A zero previous value is only a failure when the last error is non-zero,
// so the last error is cleared right before the write.
func (w *WindowsFeatures) SetExtendedStyle(handle WindowHandle, style ExtendedStyle) error {
	// SetLastError and the write must hit the same OS thread
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	proc, op := procSetWindowLongPtr, "SetWindowLongPtrW"
	if is32Bit {
		proc, op = procSetWindowLong, "SetWindowLongW"
	}

	_, err := lastErrorCall(op, clearLastError, func() (uintptr, uint32) {
		prev, _, callErr := proc.Call(uintptr(handle), gwlExStyle, uintptr(style))
		return prev, errnoCode(callErr)
	})
	return err
}

// CursorPosition returns the absolute cursor position via GetCursorPos
func (w *WindowsFeatures) CursorPosition() (ScreenPoint, error) {
	var pt POINT
	ret, _, callErr := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return ScreenPoint{}, &CursorQueryError{Err: callErr}
	}
	return ScreenPointFromPOINT(pt), nil
}

// SetAlwaysOnTop sets the window to always be on top
func (w *WindowsFeatures) SetAlwaysOnTop(handle WindowHandle, onTop bool) error {
	insertAfter := HWND_NOTOPMOST
	if onTop {
		insertAfter = HWND_TOPMOST
	}

	ret, _, err := procSetWindowPos.Call(
		uintptr(handle),
		insertAfter,
		0, 0, 0, 0,
		SWP_NOMOVE|SWP_NOSIZE|SWP_NOACTIVATE,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed: %w", err)
	}
	return nil
}

// SetTransparency makes the window layered and applies a uniform alpha
func (w *WindowsFeatures) SetTransparency(handle WindowHandle, opacity float64) error {
	style, err := w.GetExtendedStyle(handle)
	if err != nil {
		return err
	}
	if !style.Has(WS_EX_LAYERED) {
		if err := w.SetExtendedStyle(handle, style|WS_EX_LAYERED); err != nil {
			return err
		}
	}

	alpha := byte(opacity * 255)
	ret, _, callErr := procSetLayeredWindowAttr.Call(
		uintptr(handle),
		0,
		uintptr(alpha),
		LWA_ALPHA,
	)
	if ret == 0 {
		return fmt.Errorf("SetLayeredWindowAttributes failed: %w", callErr)
	}
	return nil
}

// MoveWindowTo moves the window's top-left corner, keeping size and z-order
func (w *WindowsFeatures) MoveWindowTo(handle WindowHandle, x, y int) error {
	ret, _, err := procSetWindowPos.Call(
		uintptr(handle),
		0,
		uintptr(x),
		uintptr(y),
		0, 0,
		SWP_NOSIZE|SWP_NOZORDER|SWP_NOACTIVATE,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed: %w", err)
	}
	return nil
}

// FindWindowHandle looks up a top-level window by its title
func FindWindowHandle(title string) (WindowHandle, error) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}

	hwnd, _, callErr := procFindWindow.Call(0, uintptr(unsafe.Pointer(titlePtr)))
	if hwnd == 0 {
		return 0, fmt.Errorf("FindWindow failed: %w", callErr)
	}
	return WindowHandle(hwnd), nil
}

func clearLastError() {
	procSetLastError.Call(0)
}

func errnoCode(err error) uint32 {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}

// Features is the process-wide platform implementation
var Features PlatformFeatures = NewWindowsFeatures()
