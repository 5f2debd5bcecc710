package turtle

import (
	"math"
	"testing"

	"koch-snowflake/internal/snowflake/models"
)

const eps = 1e-9

func assertPoint(t *testing.T, got, want models.Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > eps || math.Abs(got.Y-want.Y) > eps {
		t.Fatalf("point mismatch:\n  got : %+v\n  want: %+v", got, want)
	}
}

func TestForwardRecordsThenMoves(t *testing.T) {
	tr := New(models.Point{X: -153, Y: -80}, 0)
	tr.Forward(0.5 / 3)

	visited := tr.Visited()
	if len(visited) != 1 {
		t.Fatalf("visited = %d points, want 1", len(visited))
	}
	assertPoint(t, visited[0], models.Point{X: -153, Y: -80})
	assertPoint(t, tr.Position(), models.Point{X: 47, Y: -80})
}

func TestForwardFollowsHeading(t *testing.T) {
	tests := []struct {
		name    string
		heading float64
		dist    float64
		want    models.Point
	}{
		{"east", 0, 1, models.Point{X: Scale, Y: 0}},
		{"north", 90, 1, models.Point{X: 0, Y: Scale}},
		{"west", 180, 0.5, models.Point{X: -Scale / 2, Y: 0}},
		{"backwards", 0, -1, models.Point{X: -Scale, Y: 0}},
		{"unwrapped heading", 360 + 90, 1, models.Point{X: 0, Y: Scale}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(models.Point{}, tt.heading)
			tr.Forward(tt.dist)
			assertPoint(t, tr.Position(), tt.want)
		})
	}
}

func TestTurnsAreNotNormalized(t *testing.T) {
	tr := New(models.Point{}, 0)
	for i := 0; i < 3; i++ {
		tr.TurnRight(120)
	}
	if tr.Heading() != 360 {
		t.Fatalf("heading = %v, want 360", tr.Heading())
	}

	tr.TurnLeft(400)
	if tr.Heading() != -40 {
		t.Fatalf("heading = %v, want -40", tr.Heading())
	}
}

func TestDrainEmptiesBuffer(t *testing.T) {
	tr := New(models.Point{}, 0)
	tr.Forward(1)
	tr.Forward(1)

	got := tr.Drain()
	if len(got) != 2 {
		t.Fatalf("drained %d points, want 2", len(got))
	}
	assertPoint(t, got[1], models.Point{X: Scale})

	if n := len(tr.Visited()); n != 0 {
		t.Fatalf("visited after drain = %d, want 0", n)
	}
	assertPoint(t, tr.Position(), models.Point{X: 2 * Scale})
}
