package curve

import (
	"koch-snowflake/internal/snowflake/models"
	"koch-snowflake/internal/snowflake/turtle"
)

const (
	// ExteriorAngle joins the three edges of the snowflake.
	ExteriorAngle = 120.0
	peakAngle     = 60.0
	edges         = 3
)

// ============================================================
// Koch edge
// ============================================================

// Generate drives t along one Koch edge of the given side length.
// depth must already be bounded by the caller; there is no cap here.
func Generate(t *turtle.Turtle, sideLength float64, depth int) {
	if depth == 0 {
		t.Forward(sideLength)
		return
	}

	s := sideLength / 3
	Generate(t, s, depth-1)
	t.TurnLeft(peakAngle)
	Generate(t, s, depth-1)
	t.TurnRight(2 * peakAngle)
	Generate(t, s, depth-1)
	t.TurnLeft(peakAngle)
	Generate(t, s, depth-1)
}

// ============================================================
// Snowflake
// ============================================================

// Snowflake traces all three edges. The turn after the last edge is kept:
// it brings the heading a full 360° round and draws nothing.
func Snowflake(t *turtle.Turtle, sideLength float64, depth int) {
	for i := 0; i < edges; i++ {
		Generate(t, sideLength, depth)
		t.TurnRight(ExteriorAngle)
	}
}

// Closed runs Snowflake on t and returns its visited points with the first
// point repeated at the end.
func Closed(t *turtle.Turtle, sideLength float64, depth int) []models.Point {
	Snowflake(t, sideLength, depth)
	points := t.Drain()
	if len(points) == 0 {
		return points
	}
	return append(points, points[0])
}

// SegmentCount is the number of forward moves on one edge at depth.
func SegmentCount(depth int) int {
	n := 1
	for i := 0; i < depth; i++ {
		n *= 4
	}
	return n
}
