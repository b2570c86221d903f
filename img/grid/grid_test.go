package grid

import (
	"errors"
	"math"
	"testing"
)

func TestRealBasics(t *testing.T) {
	g := NewReal(2, 3)
	if g.Rows != 2 || g.Cols != 3 || len(g.Data) != 6 {
		t.Fatalf("unexpected geometry: %dx%d, %d samples", g.Rows, g.Cols, len(g.Data))
	}

	g.Set(1, 2, 4.5)
	if got := g.At(1, 2); got != 4.5 {
		t.Errorf("At(1,2) = %v, want 4.5", got)
	}
	if got := g.Data[5]; got != 4.5 {
		t.Errorf("row-major layout broken: Data[5] = %v", got)
	}

	row := g.Row(1)
	if len(row) != 3 || row[2] != 4.5 {
		t.Errorf("Row(1) = %v", row)
	}
}

func TestRealFromRows(t *testing.T) {
	g := RealFromRows([][]float64{{1, 2}, {3, 4}})
	if g.Rows != 2 || g.Cols != 2 {
		t.Fatalf("unexpected geometry: %dx%d", g.Rows, g.Cols)
	}
	if g.At(0, 1) != 2 || g.At(1, 0) != 3 {
		t.Errorf("samples misplaced: %v", g.Data)
	}

	empty := RealFromRows(nil)
	if empty.Rows != 0 || empty.Cols != 0 {
		t.Errorf("empty input should give empty grid, got %dx%d", empty.Rows, empty.Cols)
	}
}

func TestRealCloneIndependent(t *testing.T) {
	g := RealFromRows([][]float64{{1, 2}, {3, 4}})
	c := g.Clone()
	c.Set(0, 0, 99)
	if g.At(0, 0) != 1 {
		t.Error("Clone shares backing storage with original")
	}
}

func TestSubGrid(t *testing.T) {
	g := RealFromRows([][]float64{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
	})
	s := g.SubGrid(1, 1, 2, 2)
	want := [][]float64{{5, 6}, {9, 10}}
	for r := range want {
		for c := range want[r] {
			if s.At(r, c) != want[r][c] {
				t.Errorf("SubGrid(%d,%d) = %v, want %v", r, c, s.At(r, c), want[r][c])
			}
		}
	}

	s.Set(0, 0, -1)
	if g.At(1, 1) != 5 {
		t.Error("SubGrid shares backing storage with original")
	}
}

func TestGradientMagnitude(t *testing.T) {
	dx := RealFromRows([][]float64{{3, 0}})
	dy := RealFromRows([][]float64{{4, -2}})
	g, err := GradientMagnitude(dx, dy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(g.At(0, 0)-5) > 1e-12 {
		t.Errorf("magnitude(3,4) = %v, want 5", g.At(0, 0))
	}
	if math.Abs(g.At(0, 1)-2) > 1e-12 {
		t.Errorf("magnitude(0,-2) = %v, want 2", g.At(0, 1))
	}
}

func TestGradientMagnitudeSizeMismatch(t *testing.T) {
	_, err := GradientMagnitude(NewReal(2, 2), NewReal(2, 3))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}
