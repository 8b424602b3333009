package metrics

import (
	"github.com/dchessher/stock-simulator/internal/models"
)

// Sentiment labels derived from the momentum slope.
const (
	SentimentBullish = "Bullish"
	SentimentNeutral = "Neutral"
	SentimentBearish = "Bearish"
)

// Slope thresholds in percent. Comparisons are exclusive, so a slope
// of exactly ±0.2 classifies as Neutral.
const (
	bullishThreshold = 0.2
	bearishThreshold = -0.2
)

// MomentumSlope is the percentage move between the window's boundary
// closes: (last - first) / first * 100.
//
// Windows shorter than 2 bars have no slope and return 0. A zero
// first close also returns 0 rather than dividing; the guard keeps
// the metric total, consistent with the guarded percentages in this
// package.
func MomentumSlope(window []models.Bar) float64 {
	if len(window) < 2 {
		return 0
	}
	first := window[0].Close
	last := window[len(window)-1].Close
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}

// ClassifySentiment maps a slope to one of the three labels.
func ClassifySentiment(slope float64) string {
	switch {
	case slope > bullishThreshold:
		return SentimentBullish
	case slope < bearishThreshold:
		return SentimentBearish
	default:
		return SentimentNeutral
	}
}
