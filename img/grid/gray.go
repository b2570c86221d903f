package grid

// Gray is a dense row-major grid of 8-bit grayscale samples. It also serves
// as the mask type: a mask sample is active when it is nonzero.
type Gray struct {
	Rows, Cols int
	Pix        []uint8
}

// NewGray allocates a zero-filled rows x cols grayscale grid.
func NewGray(rows, cols int) *Gray {
	return &Gray{Rows: rows, Cols: cols, Pix: make([]uint8, rows*cols)}
}

// GrayFromRows builds a grayscale grid from a slice of equal-length rows.
// The input is copied.
func GrayFromRows(rows [][]uint8) *Gray {
	if len(rows) == 0 {
		return &Gray{}
	}
	g := NewGray(len(rows), len(rows[0]))
	for r, row := range rows {
		copy(g.PixRow(r), row)
	}
	return g
}

// At returns the sample at row r, column c.
func (g *Gray) At(r, c int) uint8 { return g.Pix[r*g.Cols+c] }

// Set stores v at row r, column c.
func (g *Gray) Set(r, c int, v uint8) { g.Pix[r*g.Cols+c] = v }

// Active reports whether the mask sample at row r, column c is nonzero.
func (g *Gray) Active(r, c int) bool { return g.Pix[r*g.Cols+c] != 0 }

// PixRow returns the backing slice of row r. Mutations are visible in the grid.
func (g *Gray) PixRow(r int) []uint8 { return g.Pix[r*g.Cols : (r+1)*g.Cols] }

// Clone returns an independent copy of the grid.
func (g *Gray) Clone() *Gray {
	out := NewGray(g.Rows, g.Cols)
	copy(out.Pix, g.Pix)
	return out
}

// Real converts the 8-bit samples to a float64 grid without rescaling.
func (g *Gray) Real() *Real {
	out := NewReal(g.Rows, g.Cols)
	for i, p := range g.Pix {
		out.Data[i] = float64(p)
	}
	return out
}

// FullMask returns a rows x cols mask with every sample active.
func FullMask(rows, cols int) *Gray {
	g := NewGray(rows, cols)
	for i := range g.Pix {
		g.Pix[i] = 255
	}
	return g
}
