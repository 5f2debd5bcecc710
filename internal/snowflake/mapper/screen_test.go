package mapper

import (
	"testing"

	"koch-snowflake/internal/snowflake/models"
)

func TestViewportToScreen(t *testing.T) {
	v := Viewport{Width: 1024, Height: 768}

	tests := []struct {
		in     models.Point
		sx, sy float32
	}{
		{models.Point{}, 512, 384},
		{models.Point{X: -153, Y: -80}, 359, 464},
		{models.Point{X: 100, Y: 100}, 612, 284},
	}
	for _, tt := range tests {
		sx, sy := v.ToScreen(tt.in)
		if sx != tt.sx || sy != tt.sy {
			t.Errorf("ToScreen(%+v) = (%v, %v), want (%v, %v)", tt.in, sx, sy, tt.sx, tt.sy)
		}
	}
}

func TestBatchesKeepEverySegment(t *testing.T) {
	points := make([]models.Point, 10)
	for i := range points {
		points[i] = models.Point{X: float64(i)}
	}

	batches := Batches(points, 4)
	if len(batches) != 3 {
		t.Fatalf("got %d batches, want 3", len(batches))
	}

	segments := 0
	for i, b := range batches {
		segments += len(b) - 1
		if i > 0 && b[0] != batches[i-1][len(batches[i-1])-1] {
			t.Fatalf("batch %d does not start where batch %d ended", i, i-1)
		}
	}
	if segments != len(points)-1 {
		t.Fatalf("segments = %d, want %d", segments, len(points)-1)
	}
}

func TestBatchesShortInput(t *testing.T) {
	if got := Batches(nil, 8); got != nil {
		t.Fatalf("Batches(nil) = %v", got)
	}
	if got := Batches([]models.Point{{}}, 8); got != nil {
		t.Fatalf("single point gave %v", got)
	}
	if got := Batches([]models.Point{{}, {X: 1}}, 8); len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("two points gave %v", got)
	}
}
