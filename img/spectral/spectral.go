package spectral

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
)

// Errors returned by spectral functions.
var (
	ErrEmptyInput    = errors.New("spectral: empty input")
	ErrOddDimensions = errors.New("spectral: odd dimensions")
	ErrZeroRange     = errors.New("spectral: zero dynamic range")
)

// Spectrum transforms a real grid into its full complex frequency-domain
// representation. With fastSize the grid is first padded with trailing zero
// rows and columns up to the next power of two, the efficient plan size;
// without it the transform runs at native size and fails for sizes the
// transform backend does not support.
func Spectrum(src *grid.Real, fastSize bool) (*grid.Complex, error) {
	if src == nil || src.Rows == 0 || src.Cols == 0 {
		return nil, ErrEmptyInput
	}
	rows, cols := src.Rows, src.Cols
	if fastSize {
		rows = nextPowerOf2(rows)
		cols = nextPowerOf2(cols)
	}
	out := grid.NewComplex(rows, cols)
	for r := 0; r < src.Rows; r++ {
		dst := out.Row(r)
		for c, v := range src.Row(r) {
			dst[c] = complex(v, 0)
		}
	}
	if err := forward2D(out); err != nil {
		return nil, err
	}
	return out, nil
}

// SpectrumComplex transforms an already-complex grid at its native size,
// returning a new grid.
func SpectrumComplex(src *grid.Complex) (*grid.Complex, error) {
	if src == nil || src.Rows == 0 || src.Cols == 0 {
		return nil, ErrEmptyInput
	}
	out := src.Clone()
	if err := forward2D(out); err != nil {
		return nil, err
	}
	return out, nil
}

// RealPart extracts the real plane of a complex grid.
func RealPart(src *grid.Complex) *grid.Real {
	out := grid.NewReal(src.Rows, src.Cols)
	for i, z := range src.Data {
		out.Data[i] = real(z)
	}
	return out
}

// forward2D applies the forward transform in place, rows first then columns.
func forward2D(g *grid.Complex) error {
	rowPlan, err := algofft.NewPlan64(g.Cols)
	if err != nil {
		return fmt.Errorf("spectral: row plan: %w", err)
	}
	for r := 0; r < g.Rows; r++ {
		row := g.Row(r)
		if err := rowPlan.Forward(row, row); err != nil {
			return fmt.Errorf("spectral: row transform: %w", err)
		}
	}

	colPlan, err := algofft.NewPlan64(g.Rows)
	if err != nil {
		return fmt.Errorf("spectral: column plan: %w", err)
	}
	col := make([]complex128, g.Rows)
	for c := 0; c < g.Cols; c++ {
		for r := range col {
			col[r] = g.Data[r*g.Cols+c]
		}
		if err := colPlan.Forward(col, col); err != nil {
			return fmt.Errorf("spectral: column transform: %w", err)
		}
		for r := range col {
			g.Data[r*g.Cols+c] = col[r]
		}
	}
	return nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
