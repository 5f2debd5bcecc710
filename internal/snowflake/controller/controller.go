package controller

import (
	"strings"

	"koch-snowflake/internal/snowflake/curve"
	"koch-snowflake/internal/snowflake/models"
	"koch-snowflake/internal/snowflake/turtle"
)

const (
	StartSideLength = 0.5
	StartDepth      = 0
	MinDepth        = 0
	MaxDepth        = 8
	StartHeading    = 0.0
)

// Origin is where every regeneration puts the turtle down.
var Origin = models.Point{X: -153, Y: -80}

// ============================================================
// State
// ============================================================

type State int

const (
	// Stale: the stored result does not match the current depth.
	Stale State = iota
	// Fresh: it does.
	Fresh
)

func (s State) String() string {
	switch s {
	case Stale:
		return "stale"
	case Fresh:
		return "fresh"
	default:
		return "unknown"
	}
}

// ============================================================
// Commands
// ============================================================

type Command int

const (
	NoCommand Command = iota
	IncreaseDepth
	DecreaseDepth
)

func (c Command) String() string {
	switch c {
	case IncreaseDepth:
		return "increase_depth"
	case DecreaseDepth:
		return "decrease_depth"
	default:
		return "none"
	}
}

// ParseCommand maps a key name onto a command. ok is false for keys the
// controller does not react to.
func ParseCommand(key string) (cmd Command, ok bool) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "up", "arrowup", "+":
		return IncreaseDepth, true
	case "down", "arrowdown", "-":
		return DecreaseDepth, true
	}
	return NoCommand, false
}

// ============================================================
// Controller
// ============================================================

// Controller decides when the snowflake has to be regenerated. It is not
// safe for concurrent use; callers deliver events and ticks serially.
type Controller struct {
	depth       int
	state       State
	result      []models.Point
	generations int
}

func New() *Controller {
	return &Controller{depth: StartDepth, state: Stale}
}

func (c *Controller) Depth() int {
	return c.depth
}

func (c *Controller) State() State {
	return c.state
}

// Result is a copy of the last generated polygon, nil before the first tick.
func (c *Controller) Result() []models.Point {
	return clonePoints(c.result)
}

// Generations counts how many times Tick actually regenerated.
func (c *Controller) Generations() int {
	return c.generations
}

// Increase is a no-op at MaxDepth.
func (c *Controller) Increase() {
	if c.depth >= MaxDepth {
		return
	}
	c.depth++
	c.state = Stale
}

// Decrease is a no-op at MinDepth.
func (c *Controller) Decrease() {
	if c.depth <= MinDepth {
		return
	}
	c.depth--
	c.state = Stale
}

// Handle applies an input event. Anything other than the two depth commands is ignored.
func (c *Controller) Handle(cmd Command) {
	switch cmd {
	case IncreaseDepth:
		c.Increase()
	case DecreaseDepth:
		c.Decrease()
	}
}

// Tick regenerates the polygon when stale and reports whether it did.
func (c *Controller) Tick() bool {
	if c.state == Fresh {
		return false
	}

	t := turtle.New(Origin, StartHeading)
	c.result = curve.Closed(t, StartSideLength, c.depth)
	c.state = Fresh
	c.generations++
	return true
}

// Frame is the output for a rendering collaborator. Points are only
// handed out while Fresh, so a stale controller draws nothing.
func (c *Controller) Frame() models.Frame {
	f := models.Frame{
		Depth:       c.depth,
		Points:      []models.Point{},
		Stroke:      models.Hex(models.StrokeColor),
		StrokeWidth: models.StrokeWidth,
	}
	if c.state == Fresh {
		f.Points = clonePoints(c.result)
	}
	return f
}

func clonePoints(points []models.Point) []models.Point {
	if points == nil {
		return nil
	}
	return append(make([]models.Point, 0, len(points)), points...)
}
