package math

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingularMatrix is returned by Inverse when the determinant is too
// close to zero for the adjugate method to produce a meaningful result.
// Callers match it with errors.Is.
var ErrSingularMatrix = errors.New("math: matrix is singular")

// Matrix is a square matrix of order 2, 3 or 4 stored in row-major
// order. Matrices are immutable after construction; transforms are
// composed by multiplication, never by mutating in place.
//
// Memory layout for order 4 (indices):
// | 0  1  2  3  |
// | 4  5  6  7  |
// | 8  9  10 11 |
// | 12 13 14 15 |
type Matrix struct {
	order    int
	elements []float64
}

// NewMatrix creates a matrix of the given order from row-major
// elements. The element count must be order squared.
func NewMatrix(order int, elements ...float64) Matrix {
	if len(elements) != order*order {
		panic(fmt.Sprintf("math: matrix of order %d needs %d elements, got %d",
			order, order*order, len(elements)))
	}
	els := make([]float64, len(elements))
	copy(els, elements)
	return Matrix{order: order, elements: els}
}

// Identity returns the order-4 identity matrix
func Identity() Matrix {
	return NewMatrix(4,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Order returns the order of the matrix
func (m Matrix) Order() int {
	return m.order
}

// Get returns the element at (row, col)
func (m Matrix) Get(row, col int) float64 {
	m.checkIndex(row, col)
	return m.elements[row*m.order+col]
}

func (m Matrix) checkIndex(row, col int) {
	if row < 0 || row >= m.order || col < 0 || col >= m.order {
		panic(fmt.Sprintf("math: index (%d, %d) out of range for order %d matrix",
			row, col, m.order))
	}
}

// Equals reports whether two matrices have the same order and are
// element-wise equal within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	return m.equalsEps(other, Epsilon)
}

// EqualsEps is Equals with an explicit tolerance
func (m Matrix) EqualsEps(other Matrix, eps float64) bool {
	return m.equalsEps(other, eps)
}

func (m Matrix) equalsEps(other Matrix, eps float64) bool {
	if m.order != other.order {
		return false
	}
	for i := range m.elements {
		if !ApproxEqualEps(m.elements[i], other.elements[i], eps) {
			return false
		}
	}
	return true
}

// Transpose returns the transposed matrix
func (m Matrix) Transpose() Matrix {
	els := make([]float64, len(m.elements))
	for row := 0; row < m.order; row++ {
		for col := 0; col < m.order; col++ {
			els[col*m.order+row] = m.elements[row*m.order+col]
		}
	}
	return Matrix{order: m.order, elements: els}
}

// Mul returns the matrix product m * other. Both matrices must have
// the same order.
func (m Matrix) Mul(other Matrix) Matrix {
	if m.order != other.order {
		panic(fmt.Sprintf("math: cannot multiply matrix of order %d by order %d",
			m.order, other.order))
	}
	els := make([]float64, len(m.elements))
	for row := 0; row < m.order; row++ {
		for col := 0; col < m.order; col++ {
			var sum float64
			for k := 0; k < m.order; k++ {
				sum += m.elements[row*m.order+k] * other.elements[k*m.order+col]
			}
			els[row*m.order+col] = sum
		}
	}
	return Matrix{order: m.order, elements: els}
}

// MulPoint transforms a point (homogeneous w=1) by an order-4 matrix
func (m Matrix) MulPoint(p Point) Point {
	m.checkOrder4("MulPoint")
	e := m.elements
	return Point{
		X: e[0]*p.X + e[1]*p.Y + e[2]*p.Z + e[3],
		Y: e[4]*p.X + e[5]*p.Y + e[6]*p.Z + e[7],
		Z: e[8]*p.X + e[9]*p.Y + e[10]*p.Z + e[11],
	}
}

// MulVector transforms a vector (homogeneous w=0) by an order-4
// matrix. The translation column and the bottom row drop out, which is
// exactly the w=0 rule.
func (m Matrix) MulVector(v Vector) Vector {
	m.checkOrder4("MulVector")
	e := m.elements
	return Vector{
		X: e[0]*v.X + e[1]*v.Y + e[2]*v.Z,
		Y: e[4]*v.X + e[5]*v.Y + e[6]*v.Z,
		Z: e[8]*v.X + e[9]*v.Y + e[10]*v.Z,
	}
}

func (m Matrix) checkOrder4(op string) {
	if m.order != 4 {
		panic(fmt.Sprintf("math: %s requires an order 4 matrix, got order %d", op, m.order))
	}
}

// Submatrix returns the matrix with the given row and column removed
func (m Matrix) Submatrix(removeRow, removeCol int) Matrix {
	m.checkIndex(removeRow, removeCol)
	sub := m.order - 1
	els := make([]float64, 0, sub*sub)
	for row := 0; row < m.order; row++ {
		if row == removeRow {
			continue
		}
		for col := 0; col < m.order; col++ {
			if col == removeCol {
				continue
			}
			els = append(els, m.elements[row*m.order+col])
		}
	}
	return Matrix{order: sub, elements: els}
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant, computed by cofactor expansion
// along row 0. Only intended for the small fixed orders this kernel
// uses; the recursion is O(n!) and no general performance path.
func (m Matrix) Determinant() float64 {
	if m.order == 1 {
		return m.elements[0]
	}
	var det float64
	for col := 0; col < m.order; col++ {
		det += m.elements[col] * m.Cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse matrix, computed as the adjugate divided
// by the determinant. Returns ErrSingularMatrix when the determinant
// is within Epsilon of zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix{}, ErrSingularMatrix
	}
	els := make([]float64, len(m.elements))
	for row := 0; row < m.order; row++ {
		for col := 0; col < m.order; col++ {
			// adjugate(row, col) = cofactor(col, row)
			els[row*m.order+col] = m.Cofactor(col, row) / det
		}
	}
	return Matrix{order: m.order, elements: els}, nil
}
