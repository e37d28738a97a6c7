package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"floatingclock/internal/clock"
)

var (
	colorBg    = color.RGBA{32, 33, 35, 240}    // Dark background
	colorWhite = color.RGBA{237, 237, 237, 255} // Time text
	colorGray  = color.RGBA{156, 163, 175, 255} // Date text
)

const (
	timeTextSize = 36
	dateTextSize = 14
)

var (
	_ desktop.Mouseable = (*ClockFace)(nil)
	_ desktop.Hoverable = (*ClockFace)(nil)
)

// ClockFace shows the time above the date and reports raw mouse input.
// Positions passed to OnPressed are canvas-relative, in pixels.
type ClockFace struct {
	widget.BaseWidget

	timeText *canvas.Text
	dateText *canvas.Text

	// OnPressed is called on a primary-button press
	OnPressed func(pos fyne.Position)

	// OnMoved is called for every pointer move with the primary button state
	OnMoved func(leftHeld bool)
}

// NewClockFace creates an empty clock face
func NewClockFace() *ClockFace {
	f := &ClockFace{}

	f.timeText = canvas.NewText("", colorWhite)
	f.timeText.TextSize = timeTextSize
	f.timeText.TextStyle = fyne.TextStyle{Monospace: true}
	f.timeText.Alignment = fyne.TextAlignCenter

	f.dateText = canvas.NewText("", colorGray)
	f.dateText.TextSize = dateTextSize
	f.dateText.TextStyle = fyne.TextStyle{Monospace: true}
	f.dateText.Alignment = fyne.TextAlignCenter

	f.ExtendBaseWidget(f)
	return f
}

// ShowSample displays a clock sample
func (f *ClockFace) ShowSample(sample clock.Sample) {
	f.timeText.Text = sample.Time
	f.dateText.Text = sample.Date
	f.timeText.Refresh()
	f.dateText.Refresh()
}

// Time returns the displayed time text
func (f *ClockFace) Time() string {
	return f.timeText.Text
}

// Date returns the displayed date text
func (f *ClockFace) Date() string {
	return f.dateText.Text
}

func (f *ClockFace) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(colorBg)
	bg.CornerRadius = 6

	content := container.NewStack(
		bg,
		container.NewPadded(container.NewVBox(f.timeText, f.dateText)),
	)
	return widget.NewSimpleRenderer(content)
}

// MouseDown reports the press; only the primary button starts a drag
func (f *ClockFace) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	if f.OnPressed != nil {
		f.OnPressed(ev.AbsolutePosition)
	}
}

func (f *ClockFace) MouseUp(*desktop.MouseEvent) {}

func (f *ClockFace) MouseIn(*desktop.MouseEvent) {}

// MouseMoved forwards the move together with the primary button state.
// The driver fills Button from the buttons held during the move, so a
// release outside the window is never missed.
func (f *ClockFace) MouseMoved(ev *desktop.MouseEvent) {
	if f.OnMoved == nil {
		return
	}
	f.OnMoved(ev.Button&desktop.MouseButtonPrimary != 0)
}

func (f *ClockFace) MouseOut() {}
