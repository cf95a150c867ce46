package ml

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix represents a dense matrix with a flat data slice for performance.
// data is row-major and shared with the gonum view.
type Matrix struct {
	rows, cols int
	data       []float64
	dense      *mat.Dense
}

// -------- CONSTRUCTORS ------- //
func NewMatrix(rows, cols int) *Matrix {
	data := make([]float64, rows*cols)
	return &Matrix{
		rows:  rows,
		cols:  cols,
		data:  data,
		dense: mat.NewDense(rows, cols, data),
	}
}

func NewMatrixFromSlice(rows, cols int, data []float64) *Matrix {
	if len(data) != rows*cols {
		panic("Slice length mismatch")
	}

	return &Matrix{
		rows:  rows,
		cols:  cols,
		data:  data,
		dense: mat.NewDense(rows, cols, data),
	}
}

// ------- MATRIX METHODS ------ //
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

// Row returns a view of row i. Writes go through to the matrix.
func (m *Matrix) Row(i int) []float64 {
	m.checkIndex(i, 0)
	return m.data[i*m.cols : (i+1)*m.cols]
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("index [%d, %d] out of range for [%d, %d] matrix", i, j, m.rows, m.cols))
	}
}

// Randomize fills every element with draw() * scale.
func (m *Matrix) Randomize(draw func() float64, scale float64) {
	for i := range m.data {
		m.data[i] = draw() * scale
	}
}

// ------ UTILITY FUNCTIONS ------

// MulVecTo computes out = a[:rows,:]^T * x, i.e. out[j] = sum_i x[i]*a[i][j]
// over the first len(x) rows of a. Rows past len(x) are not read.
func MulVecTo(out []float64, a *Matrix, x []float64) {
	if len(x) > a.rows || len(out) != a.cols {
		panic("Shape mismatch")
	}
	top := a.dense.Slice(0, len(x), 0, a.cols)
	dst := mat.NewVecDense(len(out), out)
	dst.MulVec(top.T(), mat.NewVecDense(len(x), x))
}

// MulVecGo is MulVecTo in pure go (no BLAS).
func MulVecGo(out []float64, a *Matrix, x []float64) {
	if len(x) > a.rows || len(out) != a.cols {
		panic("Shape mismatch")
	}
	for j := range out {
		out[j] = 0
	}
	for i, scalar := range x {
		row := a.data[i*a.cols : (i+1)*a.cols]
		for j, w := range row {
			out[j] += scalar * w
		}
	}
}
