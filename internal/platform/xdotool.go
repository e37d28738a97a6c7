package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// exitCodeNotFound mirrors the shell's status for a missing command
const exitCodeNotFound = 127

// parseShellVars parses KEY=VALUE lines as printed by `xdotool ... --shell`
func parseShellVars(out string) map[string]int {
	vals := make(map[string]int)
	for _, line := range strings.Split(out, "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), "=", 2)
		if len(parts) != 2 {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			continue
		}
		vals[parts[0]] = v
	}
	return vals
}

// parseMouseLocation extracts the cursor position from `xdotool getmouselocation --shell`
func parseMouseLocation(out string) (ScreenPoint, error) {
	vals := parseShellVars(out)
	x, okX := vals["X"]
	y, okY := vals["Y"]
	if !okX || !okY {
		return ScreenPoint{}, fmt.Errorf("unexpected xdotool output %q", strings.TrimSpace(out))
	}
	return ScreenPoint{X: x, Y: y}, nil
}

// commandErrorCode maps a command failure to a numeric platform code
func commandErrorCode(err error) uint32 {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return uint32(code)
		}
	}
	return exitCodeNotFound
}

// windowID formats an X11 window id the way wmctrl -i expects it
func windowID(handle WindowHandle) string {
	return fmt.Sprintf("0x%x", uintptr(handle))
}
