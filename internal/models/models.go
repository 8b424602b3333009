package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price is a float64 that tolerates JSON string encoding.
// Some upstream feeds serialize numeric fields as strings
// ("108.50"), so the boundary coerces before values enter the core.
type Price float64

// UnmarshalJSON accepts either a JSON number or a numeric string.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	*p = Price(v)
	return nil
}

// Volume is an int64 share count that tolerates JSON string encoding.
type Volume int64

// UnmarshalJSON accepts either a JSON number or a numeric string.
func (v *Volume) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// Volume sometimes arrives as "1.234e+06"
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("%w: %q", ErrInvalidVolume, s)
		}
		n = int64(f)
	}
	*v = Volume(n)
	return nil
}

// Bar represents one trading day's OHLCV record.
// The core accepts bars as-is and does not re-validate OHLC
// relationships; Validate is for the ingestion boundary only.
type Bar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// Validate validates a Bar at the ingestion boundary. NaN and
// infinite prices are rejected here so the derivation formulas never
// see them.
func (b *Bar) Validate() error {
	if b.Date == "" {
		return ErrInvalidDate
	}
	for _, v := range [4]float64{b.Open, b.High, b.Low, b.Close} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidPrice
		}
	}
	if b.High < b.Low {
		return ErrInvalidBar
	}
	if b.Volume < 0 {
		return ErrInvalidVolume
	}
	return nil
}

// barJSON is the wire form of a Bar with coercing field types.
type barJSON struct {
	Date   string `json:"date"`
	Open   Price  `json:"open"`
	High   Price  `json:"high"`
	Low    Price  `json:"low"`
	Close  Price  `json:"close"`
	Volume Volume `json:"volume"`
}

// UnmarshalJSON decodes a Bar, coercing string-encoded numerics.
func (b *Bar) UnmarshalJSON(data []byte) error {
	var w barJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	b.Date = w.Date
	b.Open = float64(w.Open)
	b.High = float64(w.High)
	b.Low = float64(w.Low)
	b.Close = float64(w.Close)
	b.Volume = int64(w.Volume)
	return nil
}

// Series is the full ordered bar history for one security.
// Bars are ordered by non-decreasing date; the core trusts
// ingestion order and never reorders or deduplicates.
type Series struct {
	Ticker string `json:"ticker"`
	Bars   []Bar  `json:"bars"`
}

// Validate validates a Series at the ingestion boundary.
func (s *Series) Validate() error {
	if s.Ticker == "" {
		return ErrInvalidTicker
	}
	for i := range s.Bars {
		if err := s.Bars[i].Validate(); err != nil {
			return fmt.Errorf("bar %d (%s): %w", i, s.Bars[i].Date, err)
		}
	}
	return nil
}

// IsEmpty reports whether the series has no bars.
func (s *Series) IsEmpty() bool {
	return s == nil || len(s.Bars) == 0
}

// Latest returns the most recent bar, or nil for an empty series.
func (s *Series) Latest() *Bar {
	if s.IsEmpty() {
		return nil
	}
	return &s.Bars[len(s.Bars)-1]
}

// Previous returns the second-to-last bar of the full series, or nil.
// This is the baseline for the daily change readout regardless of the
// selected display range.
func (s *Series) Previous() *Bar {
	if s == nil || len(s.Bars) < 2 {
		return nil
	}
	return &s.Bars[len(s.Bars)-2]
}
