package metrics

import (
	"math"
	"testing"
)

func TestMomentumSlope(t *testing.T) {
	window := barsFromCloses(10, 12, 9)
	want := (9.0 - 10.0) / 10.0 * 100 // -10%
	if got := MomentumSlope(window); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected slope %f, got %f", want, got)
	}
}

func TestMomentumSlope_TooFewBars(t *testing.T) {
	if got := MomentumSlope(nil); got != 0 {
		t.Errorf("Expected 0 for empty window, got %f", got)
	}
	if got := MomentumSlope(barsFromCloses(100)); got != 0 {
		t.Errorf("Expected 0 for single-bar window, got %f", got)
	}
}

func TestMomentumSlope_ZeroFirstClose(t *testing.T) {
	// Explicit guard: no division by zero, slope degrades to 0
	if got := MomentumSlope(barsFromCloses(0, 50)); got != 0 {
		t.Errorf("Expected guarded slope 0, got %f", got)
	}
}

func TestClassifySentiment_Boundaries(t *testing.T) {
	cases := []struct {
		first, last float64
		want        string
	}{
		{100, 120.01, SentimentBullish}, // slope 20.01
		{1000, 1002, SentimentNeutral},  // slope exactly 0.2 is Neutral
		{1000, 998, SentimentNeutral},   // slope exactly -0.2 is Neutral
		{100, 79.99, SentimentBearish},  // slope -20.01
		{100, 100, SentimentNeutral},
	}

	for _, tc := range cases {
		slope := MomentumSlope(barsFromCloses(tc.first, tc.last))
		if got := ClassifySentiment(slope); got != tc.want {
			t.Errorf("first=%f last=%f (slope %f): expected %s, got %s",
				tc.first, tc.last, slope, tc.want, got)
		}
	}
}

func TestClassifySentiment_Direct(t *testing.T) {
	if ClassifySentiment(0.21) != SentimentBullish {
		t.Error("Expected Bullish just above threshold")
	}
	if ClassifySentiment(-0.21) != SentimentBearish {
		t.Error("Expected Bearish just below threshold")
	}
	if ClassifySentiment(0.2) != SentimentNeutral {
		t.Error("Expected Neutral at the exact bullish boundary")
	}
	if ClassifySentiment(-0.2) != SentimentNeutral {
		t.Error("Expected Neutral at the exact bearish boundary")
	}
	if ClassifySentiment(0) != SentimentNeutral {
		t.Error("Expected Neutral at zero")
	}
}
