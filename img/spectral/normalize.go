package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
)

// NormalizeSymmetric rescales a real grid by 1/max(|min|, |max|), so the
// signed range keeps its proportion around zero: a grid spanning [-2, 4]
// maps onto [-0.5, 1]. An all-zero grid has no scale and yields ErrZeroRange.
func NormalizeSymmetric(src *grid.Real) (*grid.Real, error) {
	if src == nil || len(src.Data) == 0 {
		return nil, ErrEmptyInput
	}
	scale := math.Max(math.Abs(floats.Min(src.Data)), math.Abs(floats.Max(src.Data)))
	if scale == 0 {
		return nil, ErrZeroRange
	}
	out := src.Clone()
	floats.Scale(1/scale, out.Data)
	return out, nil
}

// NormalizeSymmetricComplex applies the symmetric rescaling independently to
// the real and imaginary planes and recombines them.
func NormalizeSymmetricComplex(src *grid.Complex) (*grid.Complex, error) {
	if src == nil || len(src.Data) == 0 {
		return nil, ErrEmptyInput
	}
	re := RealPart(src)
	im := grid.NewReal(src.Rows, src.Cols)
	for i, z := range src.Data {
		im.Data[i] = imag(z)
	}

	reN, err := NormalizeSymmetric(re)
	if err != nil {
		return nil, err
	}
	imN, err := NormalizeSymmetric(im)
	if err != nil {
		return nil, err
	}

	out := grid.NewComplex(src.Rows, src.Cols)
	for i := range out.Data {
		out.Data[i] = complex(reN.Data[i], imN.Data[i])
	}
	return out, nil
}

// NormalizeRange maps the samples of a real grid affinely onto [0, 1].
// A constant grid has no dynamic range and yields ErrZeroRange.
func NormalizeRange(src *grid.Real) (*grid.Real, error) {
	if src == nil || len(src.Data) == 0 {
		return nil, ErrEmptyInput
	}
	mn := floats.Min(src.Data)
	mx := floats.Max(src.Data)
	if mx == mn {
		return nil, ErrZeroRange
	}
	out := src.Clone()
	floats.AddConst(-mn, out.Data)
	floats.Scale(1/(mx-mn), out.Data)
	return out, nil
}
