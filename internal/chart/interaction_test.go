package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitTest_RoundTrip(t *testing.T) {
	// Projecting index i to x then hit-testing exactly x must return i
	c := DefaultCanvas()
	proj := Project(makeWindow(10, 12, 9, 14, 11, 13, 8), c)

	for i, pt := range proj.Points {
		got := HitTest(proj, pt.X, c.Width)
		if got != i {
			t.Errorf("Round trip for index %d returned %d (x=%f)", i, got, pt.X)
		}
	}
}

func TestHitTest_ScaledSurface(t *testing.T) {
	// Surface rendered at half the logical width: pointer offsets are
	// halved, hit-testing rescales them back
	c := DefaultCanvas()
	proj := Project(makeWindow(10, 12, 9, 14, 11), c)
	renderedWidth := c.Width / 2

	for i, pt := range proj.Points {
		got := HitTest(proj, pt.X/2, renderedWidth)
		if got != i {
			t.Errorf("Scaled round trip for index %d returned %d", i, got)
		}
	}
}

func TestHitTest_ClampsOutOfBounds(t *testing.T) {
	c := DefaultCanvas()
	proj := Project(makeWindow(10, 12, 9), c)

	if got := HitTest(proj, -50, c.Width); got != 0 {
		t.Errorf("Expected index 0 left of the plot, got %d", got)
	}
	if got := HitTest(proj, c.Width+50, c.Width); got != 2 {
		t.Errorf("Expected last index right of the plot, got %d", got)
	}
}

func TestHitTest_Empty(t *testing.T) {
	proj := Project(nil, DefaultCanvas())
	if got := HitTest(proj, 100, DefaultWidth); got != -1 {
		t.Errorf("Expected -1 for empty projection, got %d", got)
	}
}

func TestInteraction_StateMachine(t *testing.T) {
	c := DefaultCanvas()
	proj := Project(makeWindow(10, 12, 9, 14, 11), c)
	in := NewInteraction()

	// Initial state is idle
	require.False(t, in.Hovering())
	assert.Equal(t, -1, in.Index())

	// Move enters hovering
	in.PointerMove(proj, proj.Points[2].X, c.Width)
	require.True(t, in.Hovering())
	assert.Equal(t, 2, in.Index())

	// Another move re-targets; last event wins
	in.PointerMove(proj, proj.Points[4].X, c.Width)
	assert.Equal(t, 4, in.Index())

	// Leave returns to idle from any state
	in.PointerLeave()
	assert.False(t, in.Hovering())
	assert.Equal(t, -1, in.Index())

	// Leave while idle stays idle
	in.PointerLeave()
	assert.False(t, in.Hovering())
}

func TestInteraction_ResetClearsHover(t *testing.T) {
	c := DefaultCanvas()
	proj := Project(makeWindow(10, 12, 9), c)
	in := NewInteraction()

	in.PointerMove(proj, proj.Points[1].X, c.Width)
	require.True(t, in.Hovering())

	// Window change: no hover survives the re-render
	in.Reset()
	assert.False(t, in.Hovering())
	assert.Equal(t, -1, in.Index())
}

func TestInteraction_MoveOverEmptyProjection(t *testing.T) {
	c := DefaultCanvas()
	empty := Project(nil, c)
	in := NewInteraction()

	in.PointerMove(empty, 100, c.Width)
	assert.False(t, in.Hovering(), "no hover is possible without data")
}
