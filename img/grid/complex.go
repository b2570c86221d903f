package grid

// Complex is a dense row-major grid of complex128 samples. It is the
// two-plane (real, imaginary) counterpart of [Real]; the type itself rules
// out handing a single-plane grid to an operation that requires both planes.
type Complex struct {
	Rows, Cols int
	Data       []complex128
}

// NewComplex allocates a zero-filled rows x cols complex grid.
func NewComplex(rows, cols int) *Complex {
	return &Complex{Rows: rows, Cols: cols, Data: make([]complex128, rows*cols)}
}

// At returns the sample at row r, column c.
func (g *Complex) At(r, c int) complex128 { return g.Data[r*g.Cols+c] }

// Set stores v at row r, column c.
func (g *Complex) Set(r, c int, v complex128) { g.Data[r*g.Cols+c] = v }

// Row returns the backing slice of row r. Mutations are visible in the grid.
func (g *Complex) Row(r int) []complex128 { return g.Data[r*g.Cols : (r+1)*g.Cols] }

// Clone returns an independent copy of the grid.
func (g *Complex) Clone() *Complex {
	out := NewComplex(g.Rows, g.Cols)
	copy(out.Data, g.Data)
	return out
}
