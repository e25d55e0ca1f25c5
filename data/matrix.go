/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"github.com/pkg/errors"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, errors.Wrap(ErrDimensionMismatch, "all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided Sampler.
// Returns an error in case of sampling failure.
func NewRandomMatrix(rows, cols int, sampler Sampler) (Matrix, error) {
	mat := make([]Vector, rows)

	for i := 0; i < rows; i++ {
		vec, err := NewRandomVector(cols, sampler)
		if err != nil {
			return nil, err
		}

		mat[i] = vec
	}

	return NewMatrix(mat)
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c Element) Matrix {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewConstantVector(cols, c)
	}

	return mat
}

// NewScalarMatrix embeds a single ring element into a 1x1 matrix.
func NewScalarMatrix(c Element) Matrix {
	return Matrix{Vector{c}}
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// CheckDims checks whether dimensions of matrix m match
// the provided rows and cols arguments.
func (m Matrix) CheckDims(rows, cols int) bool {
	return m.Rows() == rows && m.Cols() == cols
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i < 0 || i >= m.Cols() {
		return nil, errors.Wrap(ErrIndexOutOfBounds, "column index exceeds matrix dimensions")
	}

	column := make([]Element, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return NewVector(column), nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	mT, _ := NewMatrix(transposed) // error is impossible to happen

	return mT
}

// Copy creates a new matrix with the same values
// of the entries.
func (m Matrix) Copy() Matrix {
	vectors := make([]Vector, m.Rows())

	for i, v := range m {
		vectors[i] = v.Copy()
	}

	return Matrix(vectors)
}

// Equal returns true if matrices m and other have the same dimensions
// and agree element-wise in both value and modulus.
func (m Matrix) Equal(other Matrix) bool {
	if !m.DimsMatch(other) {
		return false
	}
	for i, v := range m {
		if !v.Equal(other[i]) {
			return false
		}
	}

	return true
}

// Add adds matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions or
// moduli.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, errors.Wrap(ErrDimensionMismatch, "matrices mismatch in dimensions")
	}

	vectors := make([]Vector, m.Rows())
	var err error

	for i, v := range m {
		vectors[i], err = v.Add(other[i])
		if err != nil {
			return nil, err
		}
	}

	return NewMatrix(vectors)
}

// Sub subtracts matrix other from m.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions or
// moduli.
func (m Matrix) Sub(other Matrix) (Matrix, error) {
	if !m.DimsMatch(other) {
		return nil, errors.Wrap(ErrDimensionMismatch, "matrices mismatch in dimensions")
	}

	vecs := make([]Vector, m.Rows())
	var err error

	for i, v := range m {
		vecs[i], err = v.Sub(other[i])
		if err != nil {
			return nil, err
		}
	}

	return NewMatrix(vecs)
}

// Mul multiplies matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if the number of columns of m differs from the
// number of rows of other, or if the matrices differ in moduli.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, errors.Wrap(ErrDimensionMismatch, "cannot multiply matrices")
	}

	prod := make([]Vector, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		prod[i] = make([]Element, other.Cols())
		for j := 0; j < other.Cols(); j++ {
			otherCol, _ := other.GetCol(j) // error is impossible to happen
			p, err := m[i].Dot(otherCol)
			if err != nil {
				return nil, err
			}
			prod[i][j] = p
		}
	}

	return NewMatrix(prod)
}

// MulScalar multiplies elements of matrix m by a ring element x.
// The result is returned in a new Matrix.
// It returns an error if any element's modulus differs from x's.
func (m Matrix) MulScalar(x Element) (Matrix, error) {
	vectors := make([]Vector, m.Rows())
	var err error

	for i, v := range m {
		vectors[i], err = v.MulScalar(x)
		if err != nil {
			return nil, err
		}
	}

	return NewMatrix(vectors)
}

// MulVec multiplies matrix m and vector v.
// It returns the resulting vector.
// Error is returned if the number of columns of m differs from the
// number of elements of v, or if moduli differ.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Cols() != len(v) {
		return nil, errors.Wrap(ErrDimensionMismatch, "cannot multiply matrix by a vector")
	}

	res := make(Vector, m.Rows())
	var err error

	for i, row := range m {
		res[i], err = row.Dot(v)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}
