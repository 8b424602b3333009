// Package position values the widget's illustrative holding. The
// share count and cost basis are fixed placeholders, not user data.
package position

// Default holding parameters.
const (
	DefaultShares    = 120.0
	DefaultCostBasis = 108.5
)

// Holding is the synthetic position shown in the P&L panel.
type Holding struct {
	Shares    float64 `json:"shares"`
	CostBasis float64 `json:"cost_basis"`
}

// DefaultHolding returns the fixed illustrative holding.
func DefaultHolding() Holding {
	return Holding{Shares: DefaultShares, CostBasis: DefaultCostBasis}
}

// Valuation is the holding marked to the current price.
type Valuation struct {
	Shares         float64 `json:"shares"`
	CostBasis      float64 `json:"cost_basis"`
	CurrentPrice   float64 `json:"current_price"`
	MarketValue    float64 `json:"market_value"`
	TotalCost      float64 `json:"total_cost"`
	UnrealizedGain float64 `json:"unrealized_gain"`
	GainPercent    float64 `json:"gain_percent"`
}

// Direction classifies the gain for downstream styling.
func (v Valuation) Direction() string {
	if v.UnrealizedGain >= 0 {
		return "positive"
	}
	return "negative"
}

// Value marks the holding to the given price. Depends only on the
// latest close, not on the selected display range.
func (h Holding) Value(currentPrice float64) Valuation {
	marketValue := h.Shares * currentPrice
	totalCost := h.Shares * h.CostBasis
	gain := marketValue - totalCost

	percent := 0.0
	if totalCost != 0 {
		percent = gain / totalCost * 100
	}

	return Valuation{
		Shares:         h.Shares,
		CostBasis:      h.CostBasis,
		CurrentPrice:   currentPrice,
		MarketValue:    marketValue,
		TotalCost:      totalCost,
		UnrealizedGain: gain,
		GainPercent:    percent,
	}
}
