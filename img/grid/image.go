package grid

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
)

// FromImage copies the pixels of an image into a grayscale grid, converting
// non-gray color models through the standard grayscale conversion.
func FromImage(img image.Image) *Gray {
	b := img.Bounds()
	g := NewGray(b.Dy(), b.Dx())
	if src, ok := img.(*image.Gray); ok {
		for r := 0; r < g.Rows; r++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+r)
			copy(g.PixRow(r), src.Pix[off:off+g.Cols])
		}
		return g
	}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			px := color.GrayModel.Convert(img.At(b.Min.X+c, b.Min.Y+r)).(color.Gray)
			g.Set(r, c, px.Y)
		}
	}
	return g
}

// Image converts the grid into a stdlib grayscale image.
func (g *Gray) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Cols, g.Rows))
	for r := 0; r < g.Rows; r++ {
		copy(img.Pix[r*img.Stride:r*img.Stride+g.Cols], g.PixRow(r))
	}
	return img
}

// GrayFromReal converts a real grid to 8-bit samples for encoding. Grids
// already in [0, 1) are scaled by 255; anything else is shifted to a zero
// minimum first and, if the shifted maximum reaches 1, rescaled so the full
// value range maps onto [0, 255].
func GrayFromReal(src *Real) *Gray {
	out := NewGray(src.Rows, src.Cols)
	if len(src.Data) == 0 {
		return out
	}
	mn := floats.Min(src.Data)
	mx := floats.Max(src.Data)
	if mn >= 0 && mx < 1 {
		for i, v := range src.Data {
			out.Pix[i] = clampU8(v * 255)
		}
		return out
	}
	scale := 255.0
	if mx-mn >= 1 {
		scale = 255.0 / (mx - mn)
	}
	for i, v := range src.Data {
		out.Pix[i] = clampU8((v - mn) * scale)
	}
	return out
}

func clampU8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
