package viewer

import (
	"koch-snowflake/internal/snowflake/controller"
	"koch-snowflake/internal/snowflake/mapper"
	"koch-snowflake/internal/snowflake/models"
)

// Input is what the window saw during one update.
type Input struct {
	Up, Down bool
}

// ScreenPoint is a polyline vertex in raster space.
type ScreenPoint struct {
	X, Y float32
}

// Viewer owns the controller of a desktop window and keeps the polyline in
// screen space, split into runs a rasterizer can stroke one at a time.
type Viewer struct {
	ctrl      *controller.Controller
	viewport  mapper.Viewport
	batchSize int
	frame     models.Frame
	runs      [][]ScreenPoint
}

func New(viewport mapper.Viewport, batchSize int) *Viewer {
	return &Viewer{
		ctrl:      controller.New(),
		viewport:  viewport,
		batchSize: batchSize,
	}
}

// Update applies the input, ticks the controller and reports whether the
// polyline was regenerated.
func (v *Viewer) Update(in Input) bool {
	if in.Up {
		v.ctrl.Handle(controller.IncreaseDepth)
	}
	if in.Down {
		v.ctrl.Handle(controller.DecreaseDepth)
	}

	if !v.ctrl.Tick() {
		return false
	}

	v.frame = v.ctrl.Frame()
	v.runs = nil
	for _, batch := range mapper.Batches(v.frame.Points, v.batchSize) {
		run := make([]ScreenPoint, len(batch))
		for i, p := range batch {
			run[i].X, run[i].Y = v.viewport.ToScreen(p)
		}
		v.runs = append(v.runs, run)
	}
	return true
}

// Visible is false while the controller is stale; nothing is drawn then.
func (v *Viewer) Visible() bool {
	return v.ctrl.State() == controller.Fresh
}

func (v *Viewer) Runs() [][]ScreenPoint {
	return v.runs
}

func (v *Viewer) Frame() models.Frame {
	return v.frame
}

func (v *Viewer) Depth() int {
	return v.ctrl.Depth()
}

func (v *Viewer) Generations() int {
	return v.ctrl.Generations()
}
