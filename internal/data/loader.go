// Package data supplies the widget's input boundary: a Series parsed
// from a JSON document, or a deterministic mock series when no data
// file is configured. Numeric coercion from string-encoded fields
// happens in the models wire types before values enter the core.
package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dchessher/stock-simulator/internal/models"
)

var (
	// ErrNoData is returned when the document contains no bars
	ErrNoData = errors.New("document contains no bars")
)

// seriesDocument is the accepted wire shape. Either a full series
// object or a bare bar array (ticker supplied by the caller).
type seriesDocument struct {
	Ticker string       `json:"ticker"`
	Bars   []models.Bar `json:"bars"`
}

// Parse decodes a series document from r. A bare JSON array of bars
// is accepted as well; fallbackTicker names the security in that case
// or when the document omits the ticker.
func Parse(r io.Reader, fallbackTicker string) (*models.Series, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read series document: %w", err)
	}

	var doc seriesDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Retry as a bare bar array
		var bars []models.Bar
		if arrErr := json.Unmarshal(raw, &bars); arrErr != nil {
			return nil, fmt.Errorf("parse series document: %w", err)
		}
		doc.Bars = bars
	}

	if doc.Ticker == "" {
		doc.Ticker = fallbackTicker
	}

	s := &models.Series{Ticker: doc.Ticker, Bars: doc.Bars}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate series: %w", err)
	}
	return s, nil
}

// LoadFile parses a series document from disk.
func LoadFile(path, fallbackTicker string) (*models.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f, fallbackTicker)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if s.IsEmpty() {
		return nil, fmt.Errorf("load %s: %w", path, ErrNoData)
	}
	return s, nil
}
