package prewitt

import "fmt"

// Grid is a dense 2D field of real-valued intensity samples.
//
// Samples are stored in a single contiguous row-major buffer rather than
// nested slices, so the convolution hot loop walks memory linearly.
// Values are conceptually in the 0-255 range but any non-negative real
// values are accepted.
//
// A Grid obtained from NewGrid or GridFromRows always has at least one
// row and one column. Grids are not safe for concurrent mutation; the
// edge detection functions only ever read their input.
type Grid struct {
	data []float64
	rows int
	cols int
}

// NewGrid allocates a zero-filled grid with the given dimensions.
// Returns ErrInvalidDimensions if rows or cols is less than 1.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{
		data: make([]float64, rows*cols),
		rows: rows,
		cols: cols,
	}, nil
}

// GridFromRows builds a grid from nested row slices, copying the values.
//
// Returns ErrInvalidDimensions if there are no rows, the first row is
// empty, or any row has a different length than the first (the input is
// not rectangular).
func GridFromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, i, len(row), cols)
		}
	}

	g := &Grid{
		data: make([]float64, len(rows)*cols),
		rows: len(rows),
		cols: cols,
	}
	for i, row := range rows {
		copy(g.data[i*cols:(i+1)*cols], row)
	}
	return g, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int { return g.cols }

// At returns the sample at row r, column c.
// Indices must be within bounds; out-of-range access panics.
func (g *Grid) At(r, c int) float64 {
	return g.data[r*g.cols+c]
}

// Set stores v at row r, column c.
func (g *Grid) Set(r, c int, v float64) {
	g.data[r*g.cols+c] = v
}

// Row returns the samples of row r as a slice sharing the grid's
// backing buffer. Mutating the slice mutates the grid.
func (g *Grid) Row(r int) []float64 {
	return g.data[r*g.cols : (r+1)*g.cols]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		data: make([]float64, len(g.data)),
		rows: g.rows,
		cols: g.cols,
	}
	copy(out.data, g.data)
	return out
}
