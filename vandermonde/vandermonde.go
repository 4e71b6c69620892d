// Package vandermonde multiplies Vandermonde matrices by coefficient
// vectors on the left (spec §4.9). It is a standalone primitive: the ECFFT
// engine and the params/toy tests do not use it (those tests compare
// against poly.DenseGroupPolynomial.Evaluate).
package vandermonde

import (
	"github.com/jonathanmweiss/go-ecfft/field"
	"github.com/jonathanmweiss/go-ecfft/group"
)

// Matrix represents the "extended" Vandermonde matrix
// M[i][j] = Points[i]^j, 0 <= j < NbCols.
type Matrix struct {
	Points []field.Elem
	NbCols int
}

// LeftMultiply returns vector*M, where vector is treated as a row vector.
// Panics if len(vector) != len(m.Points).
func (m Matrix) LeftMultiply(vector []group.Group) []group.Group {
	if len(vector) != len(m.Points) {
		panic("vandermonde: vector length must match number of points")
	}

	nbRows := len(m.Points)

	// At step j, col[i] = vector[i] * points[i]^j.
	col := make([]group.Group, nbRows)
	copy(col, vector)

	res := make([]group.Group, 0, m.NbCols)

	for j := 0; j < m.NbCols; j++ {
		if j > 0 {
			for i := 0; i < nbRows; i++ {
				col[i] = col[i].ScalarMul(m.Points[i])
			}
		}

		acc := col[0]
		for i := 1; i < nbRows; i++ {
			acc = acc.Add(col[i])
		}

		res = append(res, acc)
	}

	return res
}

// SmallestRange returns the n signed integers closest to zero, in
// ascending order: -floor((n-1)/2), ..., floor(n/2). For n=5 that is
// -2,-1,0,1,2; for n=4 it is -1,0,1,2. SmallestRange(0) is []. Panics if
// n < 0.
func SmallestRange(n int32) []int32 {
	if n < 0 {
		panic("vandermonde: smallest_range requires n >= 0")
	}
	if n == 0 {
		return []int32{}
	}

	lo := -((n - 1) / 2)
	pts := make([]int32, n)
	for i := int32(0); i < n; i++ {
		pts[i] = lo + i
	}

	return pts
}

// SmallVandermondeLeftMultiply is LeftMultiply specialised to the points
// returned by SmallestRange(len(vector)), exploiting cheap group negation
// so it never materialises a negative scalar multiplication (spec §4.9).
func SmallVandermondeLeftMultiply(vector []group.Group, nbCols int) []group.Group {
	nbRows := len(vector)
	if nbRows == 0 {
		panic("vandermonde: vector must be non-empty")
	}

	zeroI := (nbRows - 1) / 2 // index of the point equal to 0
	points := SmallestRange(int32(nbRows))

	f := group.FieldOf(vector[0])
	absPoints := make([]field.Elem, nbRows)
	for i, p := range points {
		if p < 0 {
			p = -p
		}
		absPoints[i] = f.ElemFromUint64(uint64(p))
	}

	// absCol[i] tracks vector[i]*absPoints[i]^j, except at i == zeroI
	// (the 0 point), which is left untouched since it never contributes
	// beyond j == 0.
	absCol := make([]group.Group, nbRows)
	copy(absCol, vector)

	res := make([]group.Group, 0, nbCols)

	for j := 0; j < nbCols; j++ {
		if j > 0 {
			for i := 0; i < nbRows; i++ {
				if i != zeroI {
					absCol[i] = absCol[i].ScalarMul(absPoints[i])
				}
			}
		}

		if nbRows == 1 && j > 0 {
			res = append(res, vector[0].Zero())
			continue
		}

		acc := absCol[nbRows-1]
		for i := 0; i < nbRows-1; i++ {
			switch {
			case i < zeroI && j%2 == 1:
				acc = acc.Add(absCol[i].Neg())
			case i == zeroI:
				if j == 0 {
					acc = acc.Add(absCol[i])
				}
			default:
				acc = acc.Add(absCol[i])
			}
		}

		res = append(res, acc)
	}

	return res
}
