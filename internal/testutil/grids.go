package testutil

import (
	"math/rand"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
)

// Ramp generates a rows x cols grid whose samples count up from 0 in
// row-major order.
func Ramp(rows, cols int) *grid.Real {
	g := grid.NewReal(rows, cols)
	for i := range g.Data {
		g.Data[i] = float64(i)
	}
	return g
}

// DeterministicNoise generates a rows x cols grid of uniform noise in
// [-amplitude, amplitude] with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, rows, cols int) *grid.Real {
	g := grid.NewReal(rows, cols)
	rng := rand.New(rand.NewSource(seed))
	for i := range g.Data {
		g.Data[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return g
}

// Constant generates a rows x cols grid filled with value.
func Constant(value float64, rows, cols int) *grid.Real {
	g := grid.NewReal(rows, cols)
	for i := range g.Data {
		g.Data[i] = value
	}
	return g
}

// Impulse generates a rows x cols grid that is zero except for a unit
// sample at (r, c).
func Impulse(rows, cols, r, c int) *grid.Real {
	g := grid.NewReal(rows, cols)
	g.Set(r, c, 1)
	return g
}

// ConstantGray generates a rows x cols grayscale grid filled with value.
func ConstantGray(value uint8, rows, cols int) *grid.Gray {
	g := grid.NewGray(rows, cols)
	for i := range g.Pix {
		g.Pix[i] = value
	}
	return g
}

// NoiseGray generates a rows x cols grayscale grid of pixels in [lo, hi]
// with a fixed seed for reproducibility.
func NoiseGray(seed int64, lo, hi uint8, rows, cols int) *grid.Gray {
	g := grid.NewGray(rows, cols)
	rng := rand.New(rand.NewSource(seed))
	span := int(hi) - int(lo) + 1
	for i := range g.Pix {
		g.Pix[i] = lo + uint8(rng.Intn(span))
	}
	return g
}
