package mapper

import "koch-snowflake/internal/snowflake/models"

// ============================================================
// Screen mapping
// ============================================================

// Viewport maps turtle space (origin in the middle, y up) onto a raster
// whose origin is the top-left corner with y down.
type Viewport struct {
	Width, Height int
}

func (v Viewport) ToScreen(p models.Point) (float32, float32) {
	sx := p.X + float64(v.Width)/2
	sy := float64(v.Height)/2 - p.Y
	return float32(sx), float32(sy)
}

// Batches splits a polyline into runs of at most size points. Consecutive
// runs share their boundary point so no segment is lost.
func Batches(points []models.Point, size int) [][]models.Point {
	if size < 2 {
		size = 2
	}
	if len(points) < 2 {
		return nil
	}

	var out [][]models.Point
	for start := 0; start < len(points)-1; start += size - 1 {
		end := start + size
		if end > len(points) {
			end = len(points)
		}
		out = append(out, points[start:end])
	}
	return out
}
