// Package xcorr measures the similarity of two real grids as a masked
// normalized cross-correlation score in [-1, 1].
package xcorr

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
)

// Errors returned by Score.
var (
	ErrSizeMismatch  = errors.New("xcorr: size mismatch")
	ErrEmptyRegion   = errors.New("xcorr: no active samples")
	ErrZeroDeviation = errors.New("xcorr: zero deviation in active region")
)

// Score returns the normalized cross-correlation of x and y over the active
// samples of mask. A nil mask treats every sample as active.
//
// Means are taken over active samples only. The deviations divide nothing by
// the sample count: they are the square roots of the summed squared
// differences, so the result is sum((x-mx)(y-my)) / (sqrt(sum((x-mx)^2)) *
// sqrt(sum((y-my)^2))).
//
// A region whose active samples are all identical in either grid has zero
// deviation and yields ErrZeroDeviation instead of a division by zero.
func Score(x, y *grid.Real, mask *grid.Gray) (float64, error) {
	if x == nil || y == nil || x.Rows != y.Rows || x.Cols != y.Cols {
		return 0, ErrSizeMismatch
	}
	if mask != nil && (mask.Rows != x.Rows || mask.Cols != x.Cols) {
		return 0, ErrSizeMismatch
	}

	var sumX, sumY float64
	n := 0
	if mask == nil {
		sumX = floats.Sum(x.Data)
		sumY = floats.Sum(y.Data)
		n = len(x.Data)
	} else {
		for i, m := range mask.Pix {
			if m == 0 {
				continue
			}
			sumX += x.Data[i]
			sumY += y.Data[i]
			n++
		}
	}
	if n == 0 {
		return 0, ErrEmptyRegion
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var e, devX, devY float64
	for i := range x.Data {
		if mask != nil && mask.Pix[i] == 0 {
			continue
		}
		dx := x.Data[i] - meanX
		dy := y.Data[i] - meanY
		e += dx * dy
		devX += dx * dx
		devY += dy * dy
	}
	devX = math.Sqrt(devX)
	devY = math.Sqrt(devY)
	if devX == 0 || devY == 0 {
		return 0, ErrZeroDeviation
	}
	return e / (devX * devY), nil
}
