package data

import (
	"math"
	"math/rand"
	"time"

	"github.com/dchessher/stock-simulator/internal/models"
)

// mockSeed keeps the generated series stable across restarts so the
// widget renders the same chart every run.
const mockSeed = 42

// MockSeries generates a deterministic daily series of the given
// length, skipping weekends, ending on the given day. Prices follow a
// bounded random walk around the default cost basis so the synthetic
// position shows a plausible gain or loss.
func MockSeries(ticker string, days int, end time.Time) *models.Series {
	rng := rand.New(rand.NewSource(mockSeed))

	// Walk back far enough to collect `days` weekdays
	dates := make([]time.Time, 0, days)
	for d := end; len(dates) < days; d = d.AddDate(0, 0, -1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dates = append(dates, d)
	}
	// Reverse into chronological order
	for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
		dates[i], dates[j] = dates[j], dates[i]
	}

	bars := make([]models.Bar, 0, days)
	price := 105.0
	for _, d := range dates {
		drift := (rng.Float64() - 0.48) * 2.4
		open := price
		close := open + drift
		if close < 5 {
			close = 5
		}
		high := open
		if close > high {
			high = close
		}
		high += rng.Float64() * 1.2
		low := open
		if close < low {
			low = close
		}
		low -= rng.Float64() * 1.2
		if low < 0 {
			low = 0
		}

		bars = append(bars, models.Bar{
			Date:   d.Format("2006-01-02"),
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(close),
			Volume: 800_000 + rng.Int63n(900_000),
		})
		price = close
	}

	return &models.Series{Ticker: ticker, Bars: bars}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
