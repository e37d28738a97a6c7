package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrNoWindowHandle means the native handle is not available yet (or any more)
	ErrNoWindowHandle = errors.New("native window handle not available")

	// ErrUnsupported means the operation has no implementation on this platform
	ErrUnsupported = errors.New("operation not supported on this platform")
)

// PlatformStyleError is returned when the OS rejects an extended style write.
// Code is the platform error code reported for the failed call.
type PlatformStyleError struct {
	Op   string
	Code uint32
}

func (e *PlatformStyleError) Error() string {
	return fmt.Sprintf("%s failed with platform error %d (0x%x)", e.Op, e.Code, e.Code)
}

// CursorQueryError is returned when the OS cursor position query fails
type CursorQueryError struct {
	Err error
}

func (e *CursorQueryError) Error() string {
	if e.Err == nil {
		return "cursor position query failed"
	}
	return fmt.Sprintf("cursor position query failed: %v", e.Err)
}

func (e *CursorQueryError) Unwrap() error {
	return e.Err
}

// IsStyleError reports whether err carries a *PlatformStyleError
func IsStyleError(err error) bool {
	var styleErr *PlatformStyleError
	return errors.As(err, &styleErr)
}

// IsCursorError reports whether err carries a *CursorQueryError
func IsCursorError(err error) bool {
	var cursorErr *CursorQueryError
	return errors.As(err, &cursorErr)
}
