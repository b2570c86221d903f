package testutil

import (
	"math"
	"testing"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireGridNearlyEqual fails t if got and want differ in dimensions or if
// any sample pair exceeds eps (absolute tolerance).
func RequireGridNearlyEqual(t *testing.T, got, want *grid.Real, eps float64) {
	t.Helper()
	if got.Rows != want.Rows || got.Cols != want.Cols {
		t.Fatalf("dimension mismatch: got %dx%d, want %dx%d", got.Rows, got.Cols, want.Rows, want.Cols)
	}
	for r := 0; r < got.Rows; r++ {
		for c := 0; c < got.Cols; c++ {
			diff := math.Abs(got.At(r, c) - want.At(r, c))
			if diff > eps {
				t.Fatalf("sample (%d,%d): got %v, want %v (diff %v > eps %v)",
					r, c, got.At(r, c), want.At(r, c), diff, eps)
			}
		}
	}
}

// RequirePixEqual fails t if two grayscale grids differ in dimensions or in
// any pixel value.
func RequirePixEqual(t *testing.T, got, want *grid.Gray) {
	t.Helper()
	if got.Rows != want.Rows || got.Cols != want.Cols {
		t.Fatalf("dimension mismatch: got %dx%d, want %dx%d", got.Rows, got.Cols, want.Rows, want.Cols)
	}
	for r := 0; r < got.Rows; r++ {
		for c := 0; c < got.Cols; c++ {
			if got.At(r, c) != want.At(r, c) {
				t.Fatalf("pixel (%d,%d): got %d, want %d", r, c, got.At(r, c), want.At(r, c))
			}
		}
	}
}

// RequireFinite fails t if any sample of the grid is NaN or Inf.
func RequireFinite(t *testing.T, g *grid.Real) {
	t.Helper()
	for i, v := range g.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute sample difference between two
// equally-sized grids.
func MaxAbsDiff(a, b *grid.Real) float64 {
	maxDiff := 0.0
	for i := range a.Data {
		d := math.Abs(a.Data[i] - b.Data[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
