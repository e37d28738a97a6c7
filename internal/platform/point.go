package platform

// POINT mirrors the Win32 POINT structure returned by GetCursorPos
type POINT struct {
	X int32
	Y int32
}

// ScreenPointFromPOINT converts a raw OS point into a ScreenPoint
func ScreenPointFromPOINT(pt POINT) ScreenPoint {
	return ScreenPoint{X: int(pt.X), Y: int(pt.Y)}
}
