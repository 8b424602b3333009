package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchessher/stock-simulator/internal/metrics"
	"github.com/dchessher/stock-simulator/internal/models"
	"github.com/dchessher/stock-simulator/internal/series"
)

func threeBarSeries() *models.Series {
	return &models.Series{
		Ticker: "TECH",
		Bars: []models.Bar{
			{Date: "2024-03-01", Open: 10, High: 11, Low: 9, Close: 10, Volume: 100},
			{Date: "2024-03-04", Open: 12, High: 13, Low: 11, Close: 12, Volume: 100},
			{Date: "2024-03-05", Open: 9, High: 10, Low: 8, Close: 9, Volume: 100},
		},
	}
}

func TestWidget_Scenario(t *testing.T) {
	// 3 bars, closes [10, 12, 9], volumes all 100, range = entire series
	w := NewWidget(Options{InitialRange: series.RangeMax})
	w.SetSeries(threeBarSeries())

	view := w.Snapshot()

	assert.Equal(t, "TECH", view.Ticker)
	assert.Equal(t, 100.0, view.Metrics.AverageVolume)

	wantSlope := (9.0 - 10.0) / 10.0 * 100 // -10%
	assert.InDelta(t, wantSlope, view.Metrics.Slope, 1e-9)
	assert.Equal(t, metrics.SentimentBearish, view.Metrics.Sentiment)

	// Previous close comes from the full series: the 3-bar window IS
	// the full series here, so previous = 12 and change = -3.
	assert.Equal(t, 9.0, view.Metrics.Change.Latest)
	assert.Equal(t, -3.0, view.Metrics.Change.Change)
	assert.Equal(t, "negative", view.Metrics.Direction)

	require.True(t, view.Projection.HasData)
	assert.Len(t, view.Projection.Points, 3)
}

func TestWidget_PreviousOutsideWindow(t *testing.T) {
	// The 1D window holds only the last bar, but the daily change
	// still uses the full series' prior day.
	s := threeBarSeries()
	w := NewWidget(Options{InitialRange: series.Range1D})
	w.SetSeries(s)

	view := w.Snapshot()
	require.Len(t, view.Projection.Points, 1)
	assert.Equal(t, 9.0, view.Metrics.Change.Latest)
	assert.Equal(t, -3.0, view.Metrics.Change.Change) // 9 - 12
}

func TestWidget_PositionValuation(t *testing.T) {
	s := &models.Series{
		Ticker: "TECH",
		Bars:   []models.Bar{{Date: "2024-03-01", Open: 110, High: 111, Low: 109, Close: 110, Volume: 1}},
	}
	w := NewWidget(Options{})
	w.SetSeries(s)

	view := w.Snapshot()
	assert.Equal(t, 13200.0, view.Position.MarketValue)
	assert.Equal(t, 13020.0, view.Position.TotalCost)
	assert.Equal(t, 180.0, view.Position.UnrealizedGain)
	assert.InDelta(t, 180.0/13020.0*100, view.Position.GainPercent, 1e-9)
}

func TestWidget_EmptySeries(t *testing.T) {
	w := NewWidget(Options{})
	w.SetSeries(&models.Series{Ticker: "TECH"})

	view := w.Snapshot()
	assert.False(t, view.Projection.HasData)
	assert.Empty(t, view.Projection.Points)
	assert.Equal(t, 0.0, view.Metrics.AverageVolume)
	assert.Equal(t, 0.0, view.Metrics.Slope)
	assert.Equal(t, metrics.SentimentNeutral, view.Metrics.Sentiment)
	assert.Equal(t, 0.0, view.Metrics.Change.Change)
	assert.False(t, view.Hover.Active)
}

func TestWidget_NoSeriesLoaded(t *testing.T) {
	w := NewWidget(Options{})

	view := w.Snapshot()
	assert.False(t, view.Projection.HasData)
	assert.Equal(t, metrics.SentimentNeutral, view.Metrics.Sentiment)
	assert.False(t, math.IsNaN(view.Position.GainPercent))
}

func TestWidget_HoverLifecycle(t *testing.T) {
	w := NewWidget(Options{InitialRange: series.RangeMax})
	w.SetSeries(threeBarSeries())

	base := w.Snapshot()
	require.Len(t, base.Projection.Points, 3)

	// Move over the middle point
	w.PointerMove(base.Projection.Points[1].X, base.Projection.Canvas.Width)
	view := w.Snapshot()
	require.True(t, view.Hover.Active)
	assert.Equal(t, 1, view.Hover.Index)
	require.NotNil(t, view.Hover.Tooltip)
	assert.Equal(t, "2024-03-04", view.Hover.Tooltip.Date)
	assert.Equal(t, 13.0, view.Hover.Tooltip.High)
	assert.Equal(t, 11.0, view.Hover.Tooltip.Low)

	// Leave clears hover
	w.PointerLeave()
	view = w.Snapshot()
	assert.False(t, view.Hover.Active)
	assert.Nil(t, view.Hover.Tooltip)
}

func TestWidget_RangeChangeResetsHover(t *testing.T) {
	w := NewWidget(Options{InitialRange: series.RangeMax})
	w.SetSeries(threeBarSeries())

	base := w.Snapshot()
	w.PointerMove(base.Projection.Points[2].X, base.Projection.Canvas.Width)
	require.True(t, w.Snapshot().Hover.Active)

	require.NoError(t, w.SetRange(series.Range2D))
	view := w.Snapshot()
	assert.False(t, view.Hover.Active, "hover must not survive a window change")
	assert.Len(t, view.Projection.Points, 2)
}

func TestWidget_SeriesReplacementResetsHover(t *testing.T) {
	w := NewWidget(Options{InitialRange: series.RangeMax})
	w.SetSeries(threeBarSeries())

	base := w.Snapshot()
	w.PointerMove(base.Projection.Points[0].X, base.Projection.Canvas.Width)
	require.True(t, w.Snapshot().Hover.Active)

	w.SetSeries(threeBarSeries())
	assert.False(t, w.Snapshot().Hover.Active)
}

func TestWidget_SetRangeUnknown(t *testing.T) {
	w := NewWidget(Options{})
	err := w.SetRange(series.RangeKey("42Q"))
	assert.ErrorIs(t, err, models.ErrUnknownRange)
	assert.Equal(t, series.Range1M, w.Range())
}

func TestWidget_SameRangeKeepsHover(t *testing.T) {
	// Re-selecting the active range is not a window change
	w := NewWidget(Options{InitialRange: series.RangeMax})
	w.SetSeries(threeBarSeries())

	base := w.Snapshot()
	w.PointerMove(base.Projection.Points[1].X, base.Projection.Canvas.Width)
	require.NoError(t, w.SetRange(series.RangeMax))
	assert.True(t, w.Snapshot().Hover.Active)
}
