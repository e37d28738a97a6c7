package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floatingclock/internal/platform"
)

type fakeProbe struct {
	pos   platform.ScreenPoint
	err   error
	calls int
}

func (f *fakeProbe) CursorPosition() (platform.ScreenPoint, error) {
	f.calls++
	return f.pos, f.err
}

func TestOnMoved_NotHeldIsNoop(t *testing.T) {
	probe := &fakeProbe{pos: platform.ScreenPoint{X: 500, Y: 500}}
	c := NewController(probe)

	_, ok, err := c.OnMoved(false)
	assert.False(t, ok)
	assert.NoError(t, err)

	c.OnPressed(Anchor{X: 10, Y: 5})
	_, ok, err = c.OnMoved(false)
	assert.False(t, ok)
	assert.NoError(t, err)

	assert.Zero(t, probe.calls, "cursor must not be queried without the button held")
}

func TestOnMoved_FollowsCursorMinusAnchor(t *testing.T) {
	probe := &fakeProbe{pos: platform.ScreenPoint{X: 110, Y: 105}}
	c := NewController(probe)
	c.OnPressed(Anchor{X: 10, Y: 5})

	pos, ok, err := c.OnMoved(true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, platform.ScreenPoint{X: 100, Y: 100}, pos)

	probe.pos = platform.ScreenPoint{X: 20, Y: 0}
	pos, ok, err = c.OnMoved(true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, platform.ScreenPoint{X: 10, Y: -5}, pos)
}

func TestOnMoved_WithoutPressIsNoop(t *testing.T) {
	probe := &fakeProbe{pos: platform.ScreenPoint{X: 1, Y: 1}}
	c := NewController(probe)

	_, ok, err := c.OnMoved(true)
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.Zero(t, probe.calls)
}

func TestOnPressed_OverwritesAnchor(t *testing.T) {
	probe := &fakeProbe{pos: platform.ScreenPoint{X: 200, Y: 200}}
	c := NewController(probe)

	c.OnPressed(Anchor{X: 10, Y: 10})
	c.OnPressed(Anchor{X: -3, Y: 40})

	anchor, ok := c.Anchor()
	require.True(t, ok)
	assert.Equal(t, Anchor{X: -3, Y: 40}, anchor)

	pos, ok, err := c.OnMoved(true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, platform.ScreenPoint{X: 203, Y: 160}, pos)
}

func TestOnMoved_ProbeFailureSkipsFrame(t *testing.T) {
	probe := &fakeProbe{err: &platform.CursorQueryError{}}
	c := NewController(probe)
	c.OnPressed(Anchor{X: 1, Y: 2})

	_, ok, err := c.OnMoved(true)
	assert.False(t, ok)
	assert.True(t, platform.IsCursorError(err))

	// the next frame works normally once the probe recovers
	probe.err = nil
	probe.pos = platform.ScreenPoint{X: 11, Y: 12}
	pos, ok, err := c.OnMoved(true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, platform.ScreenPoint{X: 10, Y: 10}, pos)
}

func TestAnchorPersistsAcrossMoves(t *testing.T) {
	// no release state: the anchor stays valid until the next press
	probe := &fakeProbe{pos: platform.ScreenPoint{X: 50, Y: 50}}
	c := NewController(probe)
	c.OnPressed(Anchor{X: 5, Y: 5})

	_, _, _ = c.OnMoved(true)
	_, _, _ = c.OnMoved(false)
	pos, ok, err := c.OnMoved(true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, platform.ScreenPoint{X: 45, Y: 45}, pos)
}
