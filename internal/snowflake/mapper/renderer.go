package mapper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"koch-snowflake/internal/snowflake/models"
)

const (
	defaultSize = 1000
	margin      = 20
)

// ============================================================
// Renderer
// ============================================================

type Renderer struct {
	Background string
}

func NewRenderer() *Renderer {
	return &Renderer{Background: models.Hex(models.BackgroundColor)}
}

// Render собирает SVG из кадра. Пустой кадр даёт чистый холст.
func (r *Renderer) Render(frame models.Frame) (string, error) {
	if frame.StrokeWidth < 0 {
		return "", fmt.Errorf("negative stroke width %v", frame.StrokeWidth)
	}

	minX, minY, width, height := r.viewBox(frame.Points)

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		formatFloat(width), formatFloat(height), formatFloat(minX), formatFloat(minY), formatFloat(width), formatFloat(height)))
	builder.WriteString("\n")

	builder.WriteString(fmt.Sprintf(`  <rect x="%s" y="%s" width="%s" height="%s" fill="%s" />`,
		formatFloat(minX), formatFloat(minY), formatFloat(width), formatFloat(height), r.Background))
	builder.WriteString("\n")

	if path := r.renderPolyline(frame); path != "" {
		builder.WriteString("  ")
		builder.WriteString(path)
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String(), nil
}

// ============================================================
// Sizing
// ============================================================

// viewBox fits the points in SVG space (y pointing down) plus a margin.
func (r *Renderer) viewBox(points []models.Point) (minX, minY, width, height float64) {
	if len(points) == 0 {
		return 0, 0, defaultSize, defaultSize
	}

	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64

	for _, p := range points {
		sp := toSVG(p)
		if sp.X < minX {
			minX = sp.X
		}
		if sp.X > maxX {
			maxX = sp.X
		}
		if sp.Y < minY {
			minY = sp.Y
		}
		if sp.Y > maxY {
			maxY = sp.Y
		}
	}

	width = maxX - minX
	height = maxY - minY
	if width <= 0 {
		width = defaultSize
	}
	if height <= 0 {
		height = defaultSize
	}

	return minX - margin, minY - margin, width + 2*margin, height + 2*margin
}

// ============================================================
// Element renderers
// ============================================================

func (r *Renderer) renderPolyline(frame models.Frame) string {
	points := frame.Points
	if len(points) < 2 {
		return ""
	}

	// The closing duplicate is replaced by Z.
	if points[0] == points[len(points)-1] && len(points) > 2 {
		points = points[:len(points)-1]
	}

	var path strings.Builder
	path.WriteString(fmt.Sprintf(`<path id="snowflake-depth-%d" d="M `, frame.Depth))
	path.WriteString(formatPoint(toSVG(points[0])))
	for _, p := range points[1:] {
		path.WriteString(" L ")
		path.WriteString(formatPoint(toSVG(p)))
	}
	path.WriteString(fmt.Sprintf(` Z" fill="none" stroke="%s" stroke-width="%s" stroke-linejoin="miter" />`,
		frame.Stroke, formatFloat(frame.StrokeWidth)))

	return path.String()
}

// ============================================================
// Geometry & formatting helpers
// ============================================================

// toSVG flips the y axis: the turtle works with y up.
func toSVG(p models.Point) models.Point {
	return models.Point{X: p.X, Y: -p.Y}
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(round(val), 'f', -1, 64)
}

func formatPoint(p models.Point) string {
	return formatFloat(p.X) + " " + formatFloat(p.Y)
}

// round trims coordinates to three decimals.
func round(val float64) float64 {
	r := math.Round(val*1000) / 1000
	if r == 0 {
		return 0
	}
	return r
}
