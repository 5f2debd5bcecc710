package turtle

import (
	"math"

	"koch-snowflake/internal/snowflake/models"
)

// Scale converts side-length units into pixels.
const Scale = 1200.0

// ============================================================
// Turtle
// ============================================================

// Turtle walks the plane by relative moves and remembers where it has been.
// The heading is kept in degrees and is never wrapped.
type Turtle struct {
	pos     models.Point
	heading float64
	visited []models.Point
}

func New(origin models.Point, heading float64) *Turtle {
	return &Turtle{pos: origin, heading: heading}
}

// Forward records the current position, then moves distance*Scale along the heading.
func (t *Turtle) Forward(distance float64) {
	t.visited = append(t.visited, t.pos)
	rad := degToRad(t.heading)
	t.pos.X += math.Cos(rad) * distance * Scale
	t.pos.Y += math.Sin(rad) * distance * Scale
}

func (t *Turtle) TurnRight(degrees float64) {
	t.heading += degrees
}

func (t *Turtle) TurnLeft(degrees float64) {
	t.heading -= degrees
}

func (t *Turtle) Position() models.Point {
	return t.pos
}

func (t *Turtle) Heading() float64 {
	return t.heading
}

// Visited returns the recorded positions without taking them.
func (t *Turtle) Visited() []models.Point {
	return t.visited
}

// Drain hands over the recorded positions and leaves the turtle with an empty buffer.
func (t *Turtle) Drain() []models.Point {
	out := t.visited
	t.visited = nil
	return out
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
