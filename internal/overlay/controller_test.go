package overlay

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floatingclock/internal/clock"
	"floatingclock/internal/drag"
	"floatingclock/internal/platform"
)

type move struct {
	handle platform.WindowHandle
	x, y   int
}

type fakePlatform struct {
	styles    map[platform.WindowHandle]platform.ExtendedStyle
	setCalls  int
	setErr    error
	cursor    platform.ScreenPoint
	cursorErr error
	moves     []move
	moveErr   error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{styles: make(map[platform.WindowHandle]platform.ExtendedStyle)}
}

func (f *fakePlatform) GetExtendedStyle(h platform.WindowHandle) (platform.ExtendedStyle, error) {
	return f.styles[h], nil
}

func (f *fakePlatform) SetExtendedStyle(h platform.WindowHandle, s platform.ExtendedStyle) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.styles[h] = s
	return nil
}

func (f *fakePlatform) CursorPosition() (platform.ScreenPoint, error) {
	return f.cursor, f.cursorErr
}

func (f *fakePlatform) SetAlwaysOnTop(platform.WindowHandle, bool) error     { return nil }
func (f *fakePlatform) SetTransparency(platform.WindowHandle, float64) error { return nil }

func (f *fakePlatform) MoveWindowTo(h platform.WindowHandle, x, y int) error {
	if f.moveErr != nil {
		return f.moveErr
	}
	f.moves = append(f.moves, move{h, x, y})
	return nil
}

type fakeRenderer struct {
	samples []clock.Sample
}

func (r *fakeRenderer) ShowSample(s clock.Sample) { r.samples = append(r.samples, s) }

type fakeCloser struct {
	closes int
}

func (c *fakeCloser) Close() { c.closes++ }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

type fixture struct {
	platform *fakePlatform
	renderer *fakeRenderer
	closer   *fakeCloser
	ctrl     *Controller
}

func newFixture(t *testing.T, at time.Time) *fixture {
	t.Helper()
	f := &fixture{
		platform: newFakePlatform(),
		renderer: &fakeRenderer{},
		closer:   &fakeCloser{},
	}
	// background ticks are dropped; tests drive OnTick directly
	f.ctrl = New(Options{
		Platform: f.platform,
		Renderer: f.renderer,
		Closer:   f.closer,
		Ticker:   clock.NewTicker(fixedClock{t: at}, func(func()) {}),
	})
	t.Cleanup(f.ctrl.Shutdown)
	return f
}

func defaultTime() time.Time {
	return time.Date(2024, time.March, 5, 9, 7, 0, 0, time.Local)
}

func TestNew_RendersImmediatelyAndStartsTicker(t *testing.T) {
	f := newFixture(t, defaultTime())

	require.NotEmpty(t, f.renderer.samples)
	assert.Equal(t, clock.Sample{Time: " 9:07", Date: " 3/05/2024"}, f.renderer.samples[0])
	assert.True(t, f.ctrl.ticker.Running())

	f.ctrl.Shutdown()
	assert.False(t, f.ctrl.ticker.Running())
}

func TestOnTick_ForwardsSample(t *testing.T) {
	f := newFixture(t, defaultTime())
	sample := clock.SampleAt(time.Date(2024, time.November, 21, 23, 45, 0, 0, time.Local))

	f.ctrl.OnTick(sample)

	last := f.renderer.samples[len(f.renderer.samples)-1]
	assert.Equal(t, "11/21/2024", last.Date)
	assert.Equal(t, "11:45", last.Time)
}

func TestOnReady_AppliesStyleExactlyOnce(t *testing.T) {
	f := newFixture(t, defaultTime())
	f.platform.styles[0x100] = platform.WS_EX_LAYERED

	require.NoError(t, f.ctrl.OnReady(0x100))
	require.NoError(t, f.ctrl.OnReady(0x100))

	assert.Equal(t, 1, f.platform.setCalls)
	assert.Equal(t, platform.WS_EX_LAYERED|platform.WS_EX_TOOLWINDOW, f.platform.styles[0x100])
	assert.Equal(t, platform.WindowHandle(0x100), f.ctrl.Handle())
}

func TestOnReady_StyleFailureIsReported(t *testing.T) {
	f := newFixture(t, defaultTime())
	f.platform.setErr = &platform.PlatformStyleError{Op: "SetWindowLongPtrW", Code: 1400}

	err := f.ctrl.OnReady(0x100)
	require.Error(t, err)
	assert.True(t, platform.IsStyleError(err))
	assert.Zero(t, f.ctrl.Handle())
}

func TestDrag_MovesWindow(t *testing.T) {
	f := newFixture(t, defaultTime())
	require.NoError(t, f.ctrl.OnReady(0x100))

	f.ctrl.OnLeftButtonDown(drag.Anchor{X: 10, Y: 5})
	f.platform.cursor = platform.ScreenPoint{X: 110, Y: 105}
	f.ctrl.OnMouseMove(true)

	assert.Equal(t, []move{{0x100, 100, 100}}, f.platform.moves)
}

func TestDrag_PlainMoveDoesNothing(t *testing.T) {
	f := newFixture(t, defaultTime())
	require.NoError(t, f.ctrl.OnReady(0x100))

	f.ctrl.OnLeftButtonDown(drag.Anchor{X: 10, Y: 5})
	f.ctrl.OnMouseMove(false)

	assert.Empty(t, f.platform.moves)
}

func TestDrag_BeforeReadyDoesNothing(t *testing.T) {
	f := newFixture(t, defaultTime())

	f.ctrl.OnLeftButtonDown(drag.Anchor{X: 10, Y: 5})
	f.ctrl.OnMouseMove(true)

	assert.Empty(t, f.platform.moves)
}

func TestDrag_CursorFailureSkipsFrame(t *testing.T) {
	f := newFixture(t, defaultTime())
	require.NoError(t, f.ctrl.OnReady(0x100))
	f.ctrl.OnLeftButtonDown(drag.Anchor{X: 0, Y: 0})

	f.platform.cursorErr = &platform.CursorQueryError{Err: errors.New("no display")}
	f.ctrl.OnMouseMove(true)
	assert.Empty(t, f.platform.moves)

	f.platform.cursorErr = nil
	f.platform.cursor = platform.ScreenPoint{X: 3, Y: 4}
	f.ctrl.OnMouseMove(true)
	assert.Equal(t, []move{{0x100, 3, 4}}, f.platform.moves)
}

func TestDrag_MoveFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, defaultTime())
	require.NoError(t, f.ctrl.OnReady(0x100))
	f.ctrl.OnLeftButtonDown(drag.Anchor{X: 0, Y: 0})
	f.platform.moveErr = errors.New("SetWindowPos failed")

	assert.NotPanics(t, func() { f.ctrl.OnMouseMove(true) })
}

func TestOnKeyDown(t *testing.T) {
	f := newFixture(t, defaultTime())

	assert.False(t, f.ctrl.OnKeyDown("A"))
	assert.False(t, f.ctrl.OnKeyDown("Return"))
	assert.Zero(t, f.closer.closes)

	assert.True(t, f.ctrl.OnKeyDown(KeyEscape))
	assert.True(t, f.ctrl.OnKeyDown(KeyEscape))
	assert.Equal(t, 1, f.closer.closes, "close must be initiated exactly once")
}

func TestStaleAnchorAfterClose(t *testing.T) {
	f := newFixture(t, defaultTime())
	require.NoError(t, f.ctrl.OnReady(0x100))
	f.ctrl.OnLeftButtonDown(drag.Anchor{X: 1, Y: 1})

	f.ctrl.OnKeyDown(KeyEscape)
	f.ctrl.Shutdown()

	f.platform.cursor = platform.ScreenPoint{X: 11, Y: 11}
	f.ctrl.OnMouseMove(true)
	assert.Equal(t, []move{{0x100, 10, 10}}, f.platform.moves)
}
