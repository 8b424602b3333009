package chart

// Default tooltip box in logical canvas units.
const (
	DefaultTooltipWidth  = 120.0
	DefaultTooltipHeight = 56.0
	tooltipGap           = 10.0
)

// Tooltip is the hover readout box: placement on the canvas plus the
// hovered bar's raw values. Date is the unformatted calendar date;
// locale formatting happens downstream.
type Tooltip struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Below  bool    `json:"below"`
	Date   string  `json:"date"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
}

// PlaceTooltip positions a tw-by-th box against the hovered point:
// horizontally centered on the point and clamped inside the insets,
// vertically a fixed gap above the point unless the box would cross
// the top inset, in which case it flips below with the same gap.
func PlaceTooltip(pt Point, c Canvas, tw, th float64) Tooltip {
	x := pt.X - tw/2
	if x < c.Inset {
		x = c.Inset
	}
	if max := c.Width - c.Inset - tw; x > max {
		x = max
	}

	y := pt.Y - tooltipGap - th
	below := false
	if y < c.Inset {
		y = pt.Y + tooltipGap
		below = true
	}

	return Tooltip{
		X:      x,
		Y:      y,
		Width:  tw,
		Height: th,
		Below:  below,
		Date:   pt.Bar.Date,
		High:   pt.Bar.High,
		Low:    pt.Bar.Low,
	}
}
