package chart

import (
	"math"
)

// Interaction is the hover state machine. Two states: idle (no
// index) and hovering (index into the current projection's points).
// PointerMove transitions to hovering, PointerLeave to idle, and a
// window change resets to idle because the index is only meaningful
// against the projection it was computed from.
//
// Pointer events are handled synchronously in arrival order, so the
// last event always wins.
type Interaction struct {
	index    int
	hovering bool
}

// NewInteraction returns an idle interaction.
func NewInteraction() *Interaction {
	return &Interaction{index: -1}
}

// Hovering reports whether a point is currently hovered.
func (in *Interaction) Hovering() bool {
	return in.hovering
}

// Index returns the hovered point index, or -1 when idle.
func (in *Interaction) Index() int {
	if !in.hovering {
		return -1
	}
	return in.index
}

// PointerMove resolves a pointer position to the nearest data index
// and enters the hovering state. The x offset is given in the
// rendered surface's own coordinates along with the surface's actual
// rendered width, since the canvas may be displayed scaled.
//
// With no points the event is ignored and the state stays idle.
func (in *Interaction) PointerMove(p Projection, pointerX, renderedWidth float64) {
	if !p.HasData || len(p.Points) == 0 {
		in.Reset()
		return
	}
	in.index = HitTest(p, pointerX, renderedWidth)
	in.hovering = true
}

// PointerLeave returns to the idle state unconditionally.
func (in *Interaction) PointerLeave() {
	in.hovering = false
	in.index = -1
}

// Reset clears hover state. Called whenever the projected window
// changes so no stale index survives a re-render.
func (in *Interaction) Reset() {
	in.PointerLeave()
}

// HitTest maps a pointer x offset to the nearest point index.
//
// The offset is first rescaled from the rendered width into the
// logical canvas width, then converted to a fraction of the plotted
// span clamped to [0,1], and finally rounded to the nearest index.
// The result is always within [0, n-1] for a non-empty projection.
func HitTest(p Projection, pointerX, renderedWidth float64) int {
	n := len(p.Points)
	if n == 0 {
		return -1
	}
	c := p.Canvas

	scale := 1.0
	if renderedWidth > 0 {
		scale = c.Width / renderedWidth
	}
	scaledX := pointerX * scale

	ratio := 0.0
	if c.PlotWidth() > 0 {
		ratio = (scaledX - c.Inset) / c.PlotWidth()
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	return int(math.Round(ratio * float64(n-1)))
}
