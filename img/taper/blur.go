package taper

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
)

// gaussianKernel returns size normalized Gaussian taps. A sigma <= 0 derives
// the width from the kernel size as 0.3*((size-1)*0.5 - 1) + 0.8, matching
// the convention of common blur implementations for auto-sigma.
func gaussianKernel(size int, sigma float64) []float64 {
	if sigma <= 0 {
		sigma = 0.3*((float64(size)-1)*0.5-1) + 0.8
	}
	k := make([]float64, size)
	center := float64(size-1) / 2
	for i := range k {
		d := float64(i) - center
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
	}
	floats.Scale(1/floats.Sum(k), k)
	return k
}

// gaussianBlur applies a separable Gaussian of the given odd kernel size to
// a grayscale grid, accumulating in float64 and rounding once at the end.
// Out-of-range taps mirror without repeating the edge sample.
func gaussianBlur(src *grid.Gray, size int, sigma float64) *grid.Gray {
	k := gaussianKernel(size, sigma)
	radius := size / 2
	rows, cols := src.Rows, src.Cols

	tmp := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		row := src.PixRow(r)
		out := tmp[r*cols : (r+1)*cols]
		for c := 0; c < cols; c++ {
			var acc float64
			for t := -radius; t <= radius; t++ {
				acc += k[t+radius] * float64(row[reflect101(c+t, cols)])
			}
			out[c] = acc
		}
	}

	dst := grid.NewGray(rows, cols)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			var acc float64
			for t := -radius; t <= radius; t++ {
				acc += k[t+radius] * tmp[reflect101(r+t, rows)*cols+c]
			}
			dst.Pix[r*cols+c] = clampRoundU8(acc)
		}
	}
	return dst
}

// reflect101 mirrors an out-of-range index into [0, n) without repeating the
// border sample: -1 maps to 1, n maps to n-2. Indices far outside the range,
// from kernels wider than the grid, keep reflecting until they land inside.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*(n-1) - i
		}
	}
	return i
}

func clampRoundU8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
