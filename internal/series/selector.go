package series

import (
	"fmt"
	"sort"

	"github.com/dchessher/stock-simulator/internal/models"
)

// RangeKey names a lookback window selectable by the user.
type RangeKey string

const (
	Range1D  RangeKey = "1D"
	Range2D  RangeKey = "2D"
	Range5D  RangeKey = "5D"
	Range10D RangeKey = "10D"
	Range1M  RangeKey = "1M"
	Range3M  RangeKey = "3M"
	Range6M  RangeKey = "6M"
	Range1Y  RangeKey = "1Y"
	RangeMax RangeKey = "MAX"
)

// EntireSeries is the sentinel bar count meaning "no suffix limit".
const EntireSeries = 0

// RangeTable maps range keys to suffix lengths in bars.
// An EntireSeries entry returns the full history.
type RangeTable map[RangeKey]int

// DefaultRangeTable is the lookup the widget ships with. Lengths are
// bar counts, not calendar spans: 1M is ~21 trading days, 3M is ~63.
// 6M and 1Y resolve to the entire loaded history, same as MAX; whether
// they should instead filter by calendar date is an open product
// question, so the collapsed behavior is kept as-is.
func DefaultRangeTable() RangeTable {
	return RangeTable{
		Range1D:  1,
		Range2D:  2,
		Range5D:  5,
		Range10D: 10,
		Range1M:  21,
		Range3M:  63,
		Range6M:  EntireSeries,
		Range1Y:  EntireSeries,
		RangeMax: EntireSeries,
	}
}

// Keys returns the table's range keys in stable order.
func (t RangeTable) Keys() []RangeKey {
	keys := make([]RangeKey, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return rangeOrder(keys[i]) < rangeOrder(keys[j]) })
	return keys
}

// rangeOrder sorts keys shortest lookback first, MAX last.
func rangeOrder(k RangeKey) int {
	order := map[RangeKey]int{
		Range1D: 0, Range2D: 1, Range5D: 2, Range10D: 3,
		Range1M: 4, Range3M: 5, Range6M: 6, Range1Y: 7, RangeMax: 8,
	}
	if n, ok := order[k]; ok {
		return n
	}
	return len(order)
}

// Select returns the suffix of the series named by the range key.
// For an EntireSeries entry the full bar sequence is returned
// unchanged; otherwise the last n bars, or all of them when the
// series is shorter than n. Pure function of its inputs.
func Select(s *models.Series, key RangeKey, table RangeTable) ([]models.Bar, error) {
	n, ok := table[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownRange, key)
	}
	if s == nil {
		return nil, nil
	}
	if n == EntireSeries || n >= len(s.Bars) {
		return s.Bars, nil
	}
	return s.Bars[len(s.Bars)-n:], nil
}
