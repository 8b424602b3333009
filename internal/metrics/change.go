package metrics

import (
	"github.com/dchessher/stock-simulator/internal/models"
)

// PriceChange is the daily change readout: latest close against the
// prior day's close.
type PriceChange struct {
	Latest  float64 `json:"latest"`
	Change  float64 `json:"change"`
	Percent float64 `json:"percent"`
}

// Direction classifies the change for downstream styling.
func (c PriceChange) Direction() string {
	if c.Change >= 0 {
		return "positive"
	}
	return "negative"
}

// ComputeChange derives the latest/previous close delta.
//
// The latest close is taken from the window when it has bars, falling
// back to the full series. The previous close is always the
// second-to-last bar of the FULL series: the daily-change baseline is
// the true prior trading day, independent of the selected display
// range. With no prior bar the change is 0.
func ComputeChange(s *models.Series, window []models.Bar) PriceChange {
	var latest float64
	if len(window) > 0 {
		latest = window[len(window)-1].Close
	} else if b := s.Latest(); b != nil {
		latest = b.Close
	} else {
		return PriceChange{}
	}

	prev := s.Previous()
	if prev == nil {
		return PriceChange{Latest: latest}
	}

	change := latest - prev.Close
	percent := 0.0
	if prev.Close != 0 {
		percent = change / prev.Close * 100
	}
	return PriceChange{Latest: latest, Change: change, Percent: percent}
}

// AverageVolume is the arithmetic mean of volume over the window,
// 0 for an empty window. Only window bars contribute.
func AverageVolume(window []models.Bar) float64 {
	if len(window) == 0 {
		return 0
	}
	var total int64
	for i := range window {
		total += window[i].Volume
	}
	return float64(total) / float64(len(window))
}
