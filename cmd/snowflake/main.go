package main

import (
	"image/color"
	"log"

	"koch-snowflake/internal/common/config"
	"koch-snowflake/internal/snowflake/controller"
	"koch-snowflake/internal/snowflake/mapper"
	"koch-snowflake/internal/snowflake/models"
	"koch-snowflake/internal/snowflake/viewer"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// points per stroked path; keeps each batch under the uint16 index limit
const batchSize = 2048

type App struct {
	view     *viewer.Viewer
	viewport mapper.Viewport
	batches  []strokeBatch
}

type strokeBatch struct {
	vs []ebiten.Vertex
	is []uint16
}

func NewApp(width, height int) *App {
	viewport := mapper.Viewport{Width: width, Height: height}
	return &App{
		view:     viewer.New(viewport, batchSize),
		viewport: viewport,
	}
}

func (a *App) Layout(outsideW, outsideH int) (int, int) {
	return a.viewport.Width, a.viewport.Height
}

func (a *App) Update() error {
	in := viewer.Input{
		Up:   inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Down: inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
	}

	if a.view.Update(in) {
		frame := a.view.Frame()
		a.batches = tessellate(a.view.Runs(), frame.StrokeWidth)
		log.Printf("[SNOWFLAKE] depth %d: %d points in %d batches", frame.Depth, len(frame.Points), len(a.batches))
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(models.BackgroundColor)

	if !a.view.Visible() {
		return
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillRuleNonZero
	for _, b := range a.batches {
		screen.DrawTriangles(b.vs, b.is, whiteImage(), op)
	}
}

// tessellate turns screen-space runs into stroked triangles once per regeneration.
func tessellate(runs [][]viewer.ScreenPoint, width float64) []strokeBatch {
	stroke := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinMiter,
	}

	var out []strokeBatch
	for _, run := range runs {
		var path vector.Path
		path.MoveTo(run[0].X, run[0].Y)
		for _, p := range run[1:] {
			path.LineTo(p.X, p.Y)
		}

		vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, stroke)
		paint(vs, models.StrokeColor)
		out = append(out, strokeBatch{vs: vs, is: is})
	}
	return out
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255.0
		vs[i].ColorG = float32(c.G) / 255.0
		vs[i].ColorB = float32(c.B) / 255.0
		vs[i].ColorA = float32(c.A) / 255.0
	}
}

var whiteImageInstance *ebiten.Image

func whiteImage() *ebiten.Image {
	if whiteImageInstance == nil {
		whiteImageInstance = ebiten.NewImage(3, 3)
		whiteImageInstance.Fill(color.White)
	}
	return whiteImageInstance
}

func main() {
	cfg := config.Load()

	ebiten.SetWindowTitle("Koch Snowflake")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)

	app := NewApp(cfg.WindowWidth, cfg.WindowHeight)
	log.Printf("[SNOWFLAKE] up/down to change depth (%d..%d)", controller.MinDepth, controller.MaxDepth)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
