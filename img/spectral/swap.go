package spectral

import "github.com/almondyoung/depth-aware-motion-deblurring/img/grid"

// SwapQuadrants exchanges the four quadrants of a real grid in place,
// top-left with bottom-right and top-right with bottom-left, so a spectrum
// with DC at the corner becomes DC-centered. Both dimensions must be even;
// crop odd grids with [CropEven] first. Applying the swap twice restores the
// original grid.
func SwapQuadrants(g *grid.Real) error {
	return swapQuadrants(g.Data, g.Rows, g.Cols)
}

// SwapQuadrantsComplex is [SwapQuadrants] for complex grids.
func SwapQuadrantsComplex(g *grid.Complex) error {
	return swapQuadrants(g.Data, g.Rows, g.Cols)
}

func swapQuadrants[T any](data []T, rows, cols int) error {
	if rows == 0 || cols == 0 {
		return ErrEmptyInput
	}
	if rows%2 != 0 || cols%2 != 0 {
		return ErrOddDimensions
	}
	cy, cx := rows/2, cols/2
	for r := 0; r < cy; r++ {
		top := data[r*cols : r*cols+cols]
		bottom := data[(r+cy)*cols : (r+cy)*cols+cols]
		for c := 0; c < cx; c++ {
			top[c], bottom[c+cx] = bottom[c+cx], top[c]
			top[c+cx], bottom[c] = bottom[c], top[c+cx]
		}
	}
	return nil
}

// CropEven returns a copy of g cropped to even dimensions, dropping the last
// row and/or column of odd-sized grids.
func CropEven(g *grid.Real) *grid.Real {
	return g.SubGrid(0, 0, g.Rows&^1, g.Cols&^1)
}
