// Package chart maps a window of daily bars onto a fixed logical
// canvas and resolves pointer positions back to data indices.
package chart

import (
	"github.com/dchessher/stock-simulator/internal/models"
)

// Default logical canvas. Rendering surfaces may scale it; hit-testing
// rescales pointer coordinates back into this space.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 320.0
	DefaultInset  = 20.0
)

// Canvas is the fixed logical drawing surface. The inset applies on
// all four sides.
type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Inset  float64 `json:"inset"`
}

// DefaultCanvas returns the canvas the widget ships with.
func DefaultCanvas() Canvas {
	return Canvas{Width: DefaultWidth, Height: DefaultHeight, Inset: DefaultInset}
}

// PlotWidth is the horizontal extent available to data points.
func (c Canvas) PlotWidth() float64 {
	return c.Width - 2*c.Inset
}

// PlotHeight is the vertical extent available to data points.
func (c Canvas) PlotHeight() float64 {
	return c.Height - 2*c.Inset
}

// Baseline is the y coordinate of the chart floor.
func (c Canvas) Baseline() float64 {
	return c.Height - c.Inset
}

// Point is one bar projected into canvas coordinates. Index refers
// back into the projected window.
type Point struct {
	X     float64    `json:"x"`
	Y     float64    `json:"y"`
	Index int        `json:"index"`
	Bar   models.Bar `json:"bar"`
}

// Projection is the full geometry for one render pass. Line is the
// polyline through all points in order; Area appends the two baseline
// corners so the region under the line closes into a polygon.
type Projection struct {
	Canvas   Canvas       `json:"canvas"`
	HasData  bool         `json:"has_data"`
	Points   []Point      `json:"points"`
	Line     []Point      `json:"line,omitempty"`
	Area     [][2]float64 `json:"area,omitempty"`
	Baseline float64      `json:"baseline"`
	MinPrice float64      `json:"min_price"`
	MaxPrice float64      `json:"max_price"`
}

// Project maps the window onto the canvas.
//
// The vertical scale spans min(low)..max(high) over the window, with a
// degenerate zero range widened to 1 so a flat series still draws a
// line instead of collapsing. Points are evenly spaced horizontally
// from inset to width-inset regardless of calendar gaps; higher prices
// map to smaller y. An empty window yields HasData=false and no
// points, and the caller renders a placeholder.
func Project(window []models.Bar, c Canvas) Projection {
	proj := Projection{Canvas: c, Baseline: c.Baseline()}
	if len(window) == 0 {
		return proj
	}

	minPrice := window[0].Low
	maxPrice := window[0].High
	for i := range window {
		if window[i].Low < minPrice {
			minPrice = window[i].Low
		}
		if window[i].High > maxPrice {
			maxPrice = window[i].High
		}
	}
	priceRange := maxPrice - minPrice
	if priceRange == 0 {
		priceRange = 1
	}

	n := len(window)
	span := n - 1
	if span < 1 {
		span = 1
	}

	points := make([]Point, n)
	for i := range window {
		x := c.Inset + float64(i)/float64(span)*c.PlotWidth()
		y := c.Height - c.Inset - (window[i].Close-minPrice)/priceRange*c.PlotHeight()
		points[i] = Point{X: x, Y: y, Index: i, Bar: window[i]}
	}

	area := make([][2]float64, 0, n+2)
	for i := range points {
		area = append(area, [2]float64{points[i].X, points[i].Y})
	}
	area = append(area,
		[2]float64{points[n-1].X, proj.Baseline},
		[2]float64{points[0].X, proj.Baseline},
	)

	proj.HasData = true
	proj.Points = points
	proj.Line = points
	proj.Area = area
	proj.MinPrice = minPrice
	proj.MaxPrice = maxPrice
	return proj
}
