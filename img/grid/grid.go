// Package grid provides the dense 2-D sample containers shared by the
// deblurring preprocessing routines: real-valued grids, complex-valued
// grids, and 8-bit grayscale grids that double as region masks.
//
// All grids are row-major with caller-owned backing storage. Operations in
// the dependent packages never mutate their inputs unless the operation is
// documented as in-place.
package grid

import (
	"errors"
	"math"
)

// ErrSizeMismatch is returned when two grids participating in a binary
// operation do not have identical dimensions.
var ErrSizeMismatch = errors.New("grid: size mismatch")

// Real is a dense row-major grid of float64 samples with a single channel.
type Real struct {
	Rows, Cols int
	Data       []float64
}

// NewReal allocates a zero-filled rows x cols grid.
func NewReal(rows, cols int) *Real {
	return &Real{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// RealFromRows builds a grid from a slice of equal-length rows.
// The input is copied.
func RealFromRows(rows [][]float64) *Real {
	if len(rows) == 0 {
		return &Real{}
	}
	g := NewReal(len(rows), len(rows[0]))
	for r, row := range rows {
		copy(g.Row(r), row)
	}
	return g
}

// At returns the sample at row r, column c.
func (g *Real) At(r, c int) float64 { return g.Data[r*g.Cols+c] }

// Set stores v at row r, column c.
func (g *Real) Set(r, c int, v float64) { g.Data[r*g.Cols+c] = v }

// Row returns the backing slice of row r. Mutations are visible in the grid.
func (g *Real) Row(r int) []float64 { return g.Data[r*g.Cols : (r+1)*g.Cols] }

// Clone returns an independent copy of the grid.
func (g *Real) Clone() *Real {
	out := NewReal(g.Rows, g.Cols)
	copy(out.Data, g.Data)
	return out
}

// SubGrid returns a copying crop of the rows x cols window anchored at
// (r0, c0).
func (g *Real) SubGrid(r0, c0, rows, cols int) *Real {
	out := NewReal(rows, cols)
	for r := 0; r < rows; r++ {
		copy(out.Row(r), g.Row(r0+r)[c0:c0+cols])
	}
	return out
}

// GradientMagnitude combines two directional gradient grids into the
// per-sample gradient magnitude sqrt(dx^2 + dy^2).
func GradientMagnitude(dx, dy *Real) (*Real, error) {
	if dx.Rows != dy.Rows || dx.Cols != dy.Cols {
		return nil, ErrSizeMismatch
	}
	out := NewReal(dx.Rows, dx.Cols)
	for i := range out.Data {
		out.Data[i] = math.Hypot(dx.Data[i], dy.Data[i])
	}
	return out, nil
}
