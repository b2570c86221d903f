package spectral

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
)

// LogMagnitude renders a spectrum as a DC-centered log-magnitude grid
// normalized to [0, 1]: log(1 + |z|) per bin, cropped to even dimensions,
// quadrant-swapped, then min-max normalized. Grids smaller than 2x2 have
// nothing left after the even crop and yield ErrEmptyInput.
func LogMagnitude(src *grid.Complex) (*grid.Real, error) {
	if src == nil || len(src.Data) == 0 {
		return nil, ErrEmptyInput
	}

	re := make([]float64, len(src.Data))
	im := make([]float64, len(src.Data))
	for i, z := range src.Data {
		re[i] = real(z)
		im[i] = imag(z)
	}
	mag := grid.NewReal(src.Rows, src.Cols)
	vecmath.Magnitude(mag.Data, re, im)
	for i, v := range mag.Data {
		mag.Data[i] = math.Log1p(v)
	}

	mag = CropEven(mag)
	if len(mag.Data) == 0 {
		return nil, ErrEmptyInput
	}
	if err := SwapQuadrants(mag); err != nil {
		return nil, err
	}
	return NormalizeRange(mag)
}
