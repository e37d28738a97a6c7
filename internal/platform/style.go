package platform

import (
	"fmt"
)

// StyleController hides a window from the task switcher by setting WS_EX_TOOLWINDOW
type StyleController struct {
	accessor StyleAccessor
}

// NewStyleController creates a style controller on top of the given accessor
func NewStyleController(accessor StyleAccessor) *StyleController {
	return &StyleController{accessor: accessor}
}

// ApplyToolWindowStyle ORs WS_EX_TOOLWINDOW into the window's extended style
// and returns the style that was written. Other bits are left untouched.
func (c *StyleController) ApplyToolWindowStyle(handle WindowHandle) (ExtendedStyle, error) {
	if handle == 0 {
		return 0, ErrNoWindowHandle
	}

	current, err := c.accessor.GetExtendedStyle(handle)
	if err != nil {
		return 0, fmt.Errorf("read extended style: %w", err)
	}

	updated := current | WS_EX_TOOLWINDOW
	if err := c.accessor.SetExtendedStyle(handle, updated); err != nil {
		return 0, fmt.Errorf("write extended style: %w", err)
	}

	return updated, nil
}

// lastErrorCall clears the thread's last error, performs call and reports a
// zero result together with a non-zero last error as a PlatformStyleError.
// Both functions must run on the same locked OS thread.
func lastErrorCall(op string, clearLastError func(), call func() (uintptr, uint32)) (uintptr, error) {
	clearLastError()
	ret, code := call()
	return ret, styleCallError(op, ret, code)
}

// styleCallError treats a zero result as success unless the last error is set:
// zero is also a legitimate previous style value.
func styleCallError(op string, ret uintptr, code uint32) error {
	if ret == 0 && code != 0 {
		return &PlatformStyleError{Op: op, Code: code}
	}
	return nil
}
