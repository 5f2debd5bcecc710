package models

import (
	"fmt"
	"image/color"
)

// ============================================================
// Geometry primitives
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ============================================================
// Drawing style
// ============================================================

const StrokeWidth = 1.0

var (
	StrokeColor     = color.RGBA{A: 255}
	BackgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Hex formats c as #rrggbb, alpha dropped.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ============================================================
// Frame
// ============================================================

// Frame is what a rendering collaborator draws. No points means nothing to draw.
type Frame struct {
	Depth       int     `json:"depth"`
	Points      []Point `json:"points"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
}

func (f Frame) Empty() bool {
	return len(f.Points) == 0
}
