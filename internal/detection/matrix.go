package detection

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrShape is returned when matrix data does not fit the requested shape.
var ErrShape = errors.New("detection: matrix shape mismatch")

// Matrix is a dense, row-major matrix of float64 values.
//
// Unlike mat.Dense, a matrix may hold no elements. A matrix with zero rows
// is always 0×0, while r×0 keeps its row count. The zero value is a valid
// 0×0 matrix. A Matrix stores one flat slice, so it is always rectangular.
// Matrix satisfies mat.Matrix.
//
// Copies of a Matrix share the backing slice, so Set on one copy is seen
// by the others. Use Clone for an independent copy.
type Matrix struct {
	rows, cols int
	data       []float64
}

var _ mat.Matrix = Matrix{}

// NewMatrix returns a rows×cols matrix holding a copy of data in row-major
// order. len(data) must equal rows*cols. A shape with zero rows yields a
// 0×0 matrix.
func NewMatrix(rows, cols int, data []float64) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return Matrix{}, fmt.Errorf("%w: negative dimension %d×%d", ErrShape, rows, cols)
	}
	if len(data) != rows*cols {
		return Matrix{}, fmt.Errorf("%w: %d values for %d×%d", ErrShape, len(data), rows, cols)
	}
	if rows == 0 {
		return Matrix{}, nil
	}
	m := Matrix{rows: rows, cols: cols}
	if len(data) > 0 {
		m.data = make([]float64, len(data))
		copy(m.data, data)
	}
	return m, nil
}

// MustMatrix is like NewMatrix but panics on a shape error. Intended for
// fixtures with literal data.
func MustMatrix(rows, cols int, data []float64) Matrix {
	m, err := NewMatrix(rows, cols, data)
	if err != nil {
		panic(err)
	}
	return m
}

// MatrixFromRows builds a matrix from a slice of rows. All rows must have
// the same length. A nil or empty slice yields a 0×0 matrix.
func MatrixFromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return Matrix{rows: len(rows), cols: cols, data: data}, nil
}

// Zeros returns a rows×cols matrix of zeros. Zero rows yields 0×0.
func Zeros(rows, cols int) Matrix {
	if rows < 0 || cols < 0 {
		panic(mat.ErrShape)
	}
	if rows == 0 {
		return Matrix{}
	}
	m := Matrix{rows: rows, cols: cols}
	if rows*cols > 0 {
		m.data = make([]float64, rows*cols)
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := Zeros(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// FromDense copies any gonum matrix into a Matrix.
func FromDense(a mat.Matrix) Matrix {
	r, c := a.Dims()
	if r == 0 {
		return Matrix{}
	}
	m := Zeros(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = a.At(i, j)
		}
	}
	return m
}

// Dims returns the number of rows and columns.
func (m Matrix) Dims() (r, c int) { return m.rows, m.cols }

// At returns the element at row i, column j. It panics with
// mat.ErrIndexOutOfRange when i or j is out of bounds.
func (m Matrix) At(i, j int) float64 {
	if uint(i) >= uint(m.rows) || uint(j) >= uint(m.cols) {
		panic(mat.ErrIndexOutOfRange)
	}
	return m.data[i*m.cols+j]
}

// T returns the implicit transpose of m.
func (m Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	if uint(i) >= uint(m.rows) || uint(j) >= uint(m.cols) {
		panic(mat.ErrIndexOutOfRange)
	}
	m.data[i*m.cols+j] = v
}

// Row returns a copy of row i.
func (m Matrix) Row(i int) []float64 {
	if uint(i) >= uint(m.rows) {
		panic(mat.ErrRowAccess)
	}
	row := make([]float64, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	return row
}

// Clone returns a copy of m that shares no data with it.
func (m Matrix) Clone() Matrix {
	c := Matrix{rows: m.rows, cols: m.cols}
	if len(m.data) > 0 {
		c.data = m.RawData()
	}
	return c
}

// RawData returns a copy of the row-major backing data.
func (m Matrix) RawData() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// IsEmpty reports whether the matrix holds no elements.
func (m Matrix) IsEmpty() bool { return m.rows == 0 || m.cols == 0 }

// Dense returns a *mat.Dense copy of m, or nil when m is empty since gonum
// cannot represent zero-sized dense matrices.
func (m Matrix) Dense() *mat.Dense {
	if m.IsEmpty() {
		return nil
	}
	return mat.NewDense(m.rows, m.cols, m.RawData())
}

// Equal reports whether m and other have the same shape and bit-for-bit
// equal elements under float64 ==. NaN elements are never equal.
// A 2×0 matrix is not equal to a 0×0 matrix.
func (m Matrix) Equal(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	if m.IsEmpty() {
		return true
	}
	return mat.Equal(m, other)
}

// String renders the matrix in MATLAB notation. Empty matrices render as
// [](rxc).
func (m Matrix) String() string {
	if m.IsEmpty() {
		return fmt.Sprintf("[](%dx%d)", m.rows, m.cols)
	}
	return fmt.Sprintf("%v", mat.Formatted(m, mat.FormatMATLAB()))
}
