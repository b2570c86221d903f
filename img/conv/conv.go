package conv

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrKernelTooLarge = errors.New("conv: kernel exceeds input size for valid shape")
	ErrInvalidShape   = errors.New("conv: invalid shape")
)

// Shape selects the output sizing policy of [Conv2].
type Shape int

const (
	// Full keeps every output sample touched by the kernel.
	Full Shape = iota

	// Same crops the full result to the source size. The crop is centered
	// with a ceil bias: for an even kernel span the extra sample is dropped
	// from the leading edge.
	Same

	// Valid keeps only samples computed entirely from source data.
	Valid
)

// Conv2 computes the 2-D linear convolution of src with kernel and crops the
// result according to shape. The kernel is given in natural (non-flipped)
// orientation; samples outside src contribute zero. The result is an
// independent grid and the inputs are left untouched.
func Conv2(src, kernel *grid.Real, shape Shape) (*grid.Real, error) {
	if src == nil || src.Rows == 0 || src.Cols == 0 {
		return nil, ErrEmptyInput
	}
	if kernel == nil || kernel.Rows == 0 || kernel.Cols == 0 {
		return nil, ErrEmptyKernel
	}
	switch shape {
	case Full, Same, Valid:
	default:
		return nil, ErrInvalidShape
	}
	if shape == Valid && (kernel.Rows > src.Rows || kernel.Cols > src.Cols) {
		return nil, ErrKernelTooLarge
	}

	full := convFull(src, kernel)

	switch shape {
	case Same:
		// Offset (kh/2, kw/2) is the centered crop
		// ((padded - pad - size + 1) / 2 with the +1 rounding the centering
		// toward the ceiling) expressed in full-result coordinates.
		return full.SubGrid(kernel.Rows/2, kernel.Cols/2, src.Rows, src.Cols), nil
	case Valid:
		return full.SubGrid(kernel.Rows-1, kernel.Cols-1,
			src.Rows-kernel.Rows+1, src.Cols-kernel.Cols+1), nil
	default:
		return full, nil
	}
}

// convFull scatters each source sample against the kernel, accumulating
// shifted kernel rows into the output: out[y+j][x+i] += src[y][x] * k[j][i].
// Zero source samples are skipped; masked and zero-padded inputs are common
// and mostly zero.
func convFull(src, k *grid.Real) *grid.Real {
	out := grid.NewReal(src.Rows+k.Rows-1, src.Cols+k.Cols-1)
	for y := 0; y < src.Rows; y++ {
		row := src.Row(y)
		for j := 0; j < k.Rows; j++ {
			krow := k.Row(j)
			dst := out.Row(y + j)
			for x, v := range row {
				if v == 0 {
					continue
				}
				floats.AddScaled(dst[x:x+k.Cols], v, krow)
			}
		}
	}
	return out
}
