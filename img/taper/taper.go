package taper

import (
	"errors"

	"github.com/almondyoung/depth-aware-motion-deblurring/img/grid"
)

// Errors returned by EdgeTaper.
var (
	ErrEmptyInput      = errors.New("taper: empty input")
	ErrSizeMismatch    = errors.New("taper: size mismatch")
	ErrInvalidBlurSize = errors.New("taper: blur size must be odd and >= 3")
)

const (
	defaultGuideBlurSize = 19
	defaultFinalBlurSize = 51
)

type config struct {
	guideBlur int
	finalBlur int
	sink      func(stage string, g *grid.Gray)
}

// Option configures EdgeTaper.
type Option func(*config)

// WithBlurSizes overrides the Gaussian kernel sizes of the guide blur and
// the final diffusion blur. Both must be odd and at least 3.
func WithBlurSizes(guide, final int) Option {
	return func(c *config) {
		c.guideBlur = guide
		c.finalBlur = final
	}
}

// WithDebugSink installs a hook that receives each intermediate grid,
// labeled by stage. The hook is for inspection only; mutating the grids it
// receives corrupts the result. Without this option no hook is called.
func WithDebugSink(fn func(stage string, g *grid.Gray)) Option {
	return func(c *config) { c.sink = fn }
}

func (c *config) emit(stage string, g *grid.Gray) {
	if c.sink != nil {
		c.sink(stage, g)
	}
}

// EdgeTaper produces a copy of src whose surroundings outside the active
// mask region are smoothly extrapolated and diffused against guide, while
// every pixel under an active mask sample keeps its original value. All
// three grids must have identical dimensions.
func EdgeTaper(src, mask, guide *grid.Gray, opts ...Option) (*grid.Gray, error) {
	if src == nil || src.Rows == 0 || src.Cols == 0 {
		return nil, ErrEmptyInput
	}
	if mask == nil || mask.Rows != src.Rows || mask.Cols != src.Cols {
		return nil, ErrSizeMismatch
	}
	if guide == nil || guide.Rows != src.Rows || guide.Cols != src.Cols {
		return nil, ErrSizeMismatch
	}

	cfg := config{guideBlur: defaultGuideBlurSize, finalBlur: defaultFinalBlurSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.guideBlur < 3 || cfg.guideBlur%2 == 0 || cfg.finalBlur < 3 || cfg.finalBlur%2 == 0 {
		return nil, ErrInvalidBlurSize
	}

	rows, cols := src.Rows, src.Cols

	// Fill zero runs from their bounding nonzero neighbors, row-wise and
	// column-wise independently.
	horiz := src.Clone()
	for r := 0; r < rows; r++ {
		base := r * cols
		fillRuns(horiz.Pix, cols,
			func(i int) int { return base + i },
			func(i int) bool { return horiz.Pix[base+i] == 0 })
	}
	cfg.emit("horizontal-fill", horiz)

	vert := src.Clone()
	for c := 0; c < cols; c++ {
		fillRuns(vert.Pix, rows,
			func(i int) int { return i*cols + c },
			func(i int) bool { return vert.Pix[i*cols+c] == 0 })
	}
	cfg.emit("vertical-fill", vert)

	// Equal-weight blend of the directional fills.
	out := grid.NewGray(rows, cols)
	for i := range out.Pix {
		out.Pix[i] = uint8((uint16(horiz.Pix[i]) + uint16(vert.Pix[i]) + 1) / 2)
	}
	cfg.emit("directional-blend", out)

	// Re-fill the mask interior from the values just outside it, row-wise.
	// The interior content must not leak through the diffusion blur below;
	// the true pixels are restored at the end.
	for r := 0; r < rows; r++ {
		base := r * cols
		fillRuns(out.Pix, cols,
			func(i int) int { return base + i },
			func(i int) bool { return mask.Pix[base+i] != 0 })
	}
	cfg.emit("mask-fill", out)

	// Blend 70/30 with the blurred guide, then diffuse the seam.
	guideBlur := gaussianBlur(guide, cfg.guideBlur, 0)
	for i := range out.Pix {
		out.Pix[i] = blendU8(out.Pix[i], guideBlur.Pix[i], 0.7, 0.3)
	}
	out = gaussianBlur(out, cfg.finalBlur, 0)
	cfg.emit("guide-blend", out)

	// The region of interest keeps its original content.
	for i, m := range mask.Pix {
		if m != 0 {
			out.Pix[i] = src.Pix[i]
		}
	}
	return out, nil
}

// fillRuns fills every maximal gap run along one scan line of n positions.
// idx maps a line position to its flat pixel index and gap reports whether
// the position belongs to a run. A run [s, e] splits at m = e - (e-s)/2;
// [s, m] takes the value left of the run and (m, e] the value right of it.
// A run touching one line border adopts the far side's value for both
// halves; a run spanning the whole line fills with zero.
//
// Fills only ever write inside the closed run, behind the scan position, so
// gap and neighbor lookups always see unmodified samples.
func fillRuns(pix []uint8, n int, idx func(int) int, gap func(int) bool) {
	for i := 0; i < n; {
		if !gap(i) {
			i++
			continue
		}
		s := i
		for i < n && gap(i) {
			i++
		}
		e := i - 1

		var left, right uint8
		switch {
		case s > 0 && e < n-1:
			left = pix[idx(s-1)]
			right = pix[idx(e+1)]
		case s == 0 && e < n-1:
			right = pix[idx(e+1)]
			left = right
		case s > 0:
			left = pix[idx(s-1)]
			right = left
		}

		m := e - (e-s)/2
		for p := s; p <= m; p++ {
			pix[idx(p)] = left
		}
		for p := m + 1; p <= e; p++ {
			pix[idx(p)] = right
		}
	}
}

func blendU8(a, b uint8, wa, wb float64) uint8 {
	v := wa*float64(a) + wb*float64(b)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
