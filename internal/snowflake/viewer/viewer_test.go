package viewer

import (
	"testing"

	"koch-snowflake/internal/snowflake/controller"
	"koch-snowflake/internal/snowflake/curve"
	"koch-snowflake/internal/snowflake/mapper"
)

var viewport = mapper.Viewport{Width: 1024, Height: 768}

func TestFirstUpdateRegenerates(t *testing.T) {
	v := New(viewport, 2048)
	if v.Visible() {
		t.Fatalf("viewer visible before the first update")
	}

	if !v.Update(Input{}) {
		t.Fatalf("first update did not regenerate")
	}
	if !v.Visible() {
		t.Fatalf("viewer not visible after regeneration")
	}

	runs := v.Runs()
	if len(runs) != 1 || len(runs[0]) != 4 {
		t.Fatalf("depth 0 runs = %v", runs)
	}
	if got, want := runs[0][0], (ScreenPoint{X: 359, Y: 464}); got != want {
		t.Fatalf("first vertex = %+v, want %+v", got, want)
	}
	if runs[0][0] != runs[0][3] {
		t.Fatalf("polyline not closed: %+v", runs[0])
	}
}

func TestIdleUpdatesDoNothing(t *testing.T) {
	v := New(viewport, 2048)
	v.Update(Input{})
	runs := v.Runs()

	for i := 0; i < 3; i++ {
		if v.Update(Input{}) {
			t.Fatalf("idle update %d regenerated", i)
		}
	}
	if v.Generations() != 1 || len(v.Runs()) != len(runs) {
		t.Fatalf("generations = %d, runs = %d", v.Generations(), len(v.Runs()))
	}
}

func TestKeysChangeDepth(t *testing.T) {
	v := New(viewport, 16)
	v.Update(Input{})

	if !v.Update(Input{Up: true}) || v.Depth() != 1 {
		t.Fatalf("up: depth %d", v.Depth())
	}

	// 13 points in runs of at most 16 points
	if len(v.Runs()) != 1 || len(v.Frame().Points) != 13 {
		t.Fatalf("depth 1: %d runs, %d points", len(v.Runs()), len(v.Frame().Points))
	}

	v.Update(Input{Up: true})
	points := 3*curve.SegmentCount(2) + 1
	segments := 0
	for _, run := range v.Runs() {
		segments += len(run) - 1
	}
	if segments != points-1 {
		t.Fatalf("depth 2: %d segments across runs, want %d", segments, points-1)
	}

	v.Update(Input{Up: true, Down: true})
	if v.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", v.Depth())
	}
}

func TestDownAtZeroIsIgnored(t *testing.T) {
	v := New(viewport, 2048)
	v.Update(Input{})

	if v.Update(Input{Down: true}) || v.Depth() != controller.MinDepth {
		t.Fatalf("down at zero: depth %d", v.Depth())
	}
}
