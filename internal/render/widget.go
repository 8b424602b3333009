// Package render assembles one synchronous render pass: windowed
// bars, chart geometry, hover state, derived metrics, and the
// position valuation. Everything is re-derived from current state on
// each pass; nothing incremental survives a series replacement.
package render

import (
	"sync"

	"github.com/dchessher/stock-simulator/internal/chart"
	"github.com/dchessher/stock-simulator/internal/metrics"
	"github.com/dchessher/stock-simulator/internal/models"
	"github.com/dchessher/stock-simulator/internal/position"
	"github.com/dchessher/stock-simulator/internal/series"
)

// Metrics is the derived-statistics block of a render pass.
type Metrics struct {
	Change        metrics.PriceChange `json:"change"`
	Direction     string              `json:"direction"`
	AverageVolume float64             `json:"average_volume"`
	Slope         float64             `json:"slope"`
	Sentiment     string              `json:"sentiment"`
}

// Hover is the interaction block of a render pass.
type Hover struct {
	Active  bool           `json:"active"`
	Index   int            `json:"index"`
	Point   *chart.Point   `json:"point,omitempty"`
	Tooltip *chart.Tooltip `json:"tooltip,omitempty"`
}

// View is the complete output of one render pass. All numeric fields
// are raw values; locale formatting is a downstream concern.
type View struct {
	Ticker     string             `json:"ticker"`
	Range      series.RangeKey    `json:"range"`
	Projection chart.Projection   `json:"projection"`
	Hover      Hover              `json:"hover"`
	Metrics    Metrics            `json:"metrics"`
	Position   position.Valuation `json:"position"`
}

// Options configures a Widget. Zero-value fields fall back to the
// shipped defaults.
type Options struct {
	Table         series.RangeTable
	Canvas        chart.Canvas
	Holding       position.Holding
	TooltipWidth  float64
	TooltipHeight float64
	InitialRange  series.RangeKey
}

// Widget owns the widget's state: the loaded series, the active range
// selection, and the hover interaction. The core derivations are pure;
// the mutex only serializes access for concurrent HTTP callers.
type Widget struct {
	mu sync.RWMutex

	table         series.RangeTable
	canvas        chart.Canvas
	holding       position.Holding
	tooltipWidth  float64
	tooltipHeight float64

	series      *models.Series
	rangeKey    series.RangeKey
	interaction *chart.Interaction
}

// NewWidget creates a widget with no series loaded.
func NewWidget(opts Options) *Widget {
	if opts.Table == nil {
		opts.Table = series.DefaultRangeTable()
	}
	if opts.Canvas == (chart.Canvas{}) {
		opts.Canvas = chart.DefaultCanvas()
	}
	if opts.Holding == (position.Holding{}) {
		opts.Holding = position.DefaultHolding()
	}
	if opts.TooltipWidth == 0 {
		opts.TooltipWidth = chart.DefaultTooltipWidth
	}
	if opts.TooltipHeight == 0 {
		opts.TooltipHeight = chart.DefaultTooltipHeight
	}
	if opts.InitialRange == "" {
		opts.InitialRange = series.Range1M
	}

	return &Widget{
		table:         opts.Table,
		canvas:        opts.Canvas,
		holding:       opts.Holding,
		tooltipWidth:  opts.TooltipWidth,
		tooltipHeight: opts.TooltipHeight,
		rangeKey:      opts.InitialRange,
		interaction:   chart.NewInteraction(),
	}
}

// Ranges returns the selectable range keys in display order.
func (w *Widget) Ranges() []series.RangeKey {
	return w.table.Keys()
}

// Range returns the active range selection.
func (w *Widget) Range() series.RangeKey {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.rangeKey
}

// SetSeries replaces the loaded series. The window changes, so hover
// state is discarded.
func (w *Widget) SetSeries(s *models.Series) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.series = s
	w.interaction.Reset()
}

// SetRange switches the active range selection, discarding hover
// state. Unknown keys leave the selection untouched.
func (w *Widget) SetRange(key series.RangeKey) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.table[key]; !ok {
		return models.ErrUnknownRange
	}
	if key != w.rangeKey {
		w.rangeKey = key
		w.interaction.Reset()
	}
	return nil
}

// PointerMove feeds a pointer position into the hover state machine.
// Coordinates are in the rendered surface's space; renderedWidth is
// the surface's actual width so offsets can be rescaled into the
// logical canvas.
func (w *Widget) PointerMove(pointerX, renderedWidth float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	proj := w.projectLocked()
	w.interaction.PointerMove(proj, pointerX, renderedWidth)
}

// PointerLeave clears hover state.
func (w *Widget) PointerLeave() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.interaction.PointerLeave()
}

func (w *Widget) windowLocked() []models.Bar {
	if w.series == nil {
		return nil
	}
	window, err := series.Select(w.series, w.rangeKey, w.table)
	if err != nil {
		return nil
	}
	return window
}

func (w *Widget) projectLocked() chart.Projection {
	return chart.Project(w.windowLocked(), w.canvas)
}

// Snapshot performs one full render pass from current state.
func (w *Widget) Snapshot() View {
	w.mu.RLock()
	defer w.mu.RUnlock()

	window := w.windowLocked()
	proj := chart.Project(window, w.canvas)

	s := w.series
	if s == nil {
		s = &models.Series{}
	}

	change := metrics.ComputeChange(s, window)
	slope := metrics.MomentumSlope(window)

	view := View{
		Ticker:     s.Ticker,
		Range:      w.rangeKey,
		Projection: proj,
		Metrics: Metrics{
			Change:        change,
			Direction:     change.Direction(),
			AverageVolume: metrics.AverageVolume(window),
			Slope:         slope,
			Sentiment:     metrics.ClassifySentiment(slope),
		},
		Position: w.holding.Value(change.Latest),
		Hover:    Hover{Index: -1},
	}

	if idx := w.interaction.Index(); idx >= 0 && idx < len(proj.Points) {
		pt := proj.Points[idx]
		tip := chart.PlaceTooltip(pt, w.canvas, w.tooltipWidth, w.tooltipHeight)
		view.Hover = Hover{Active: true, Index: idx, Point: &pt, Tooltip: &tip}
	}

	return view
}
