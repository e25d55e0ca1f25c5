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

// Vector wraps a slice of Element values.
type Vector []Element

// NewVector returns a new Vector instance.
func NewVector(elements []Element) Vector {
	return Vector(elements)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler Sampler) (Vector, error) {
	vec := make([]Element, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c Element) Vector {
	vec := make([]Element, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Equal returns true if vectors v and other have the same length and
// agree element-wise in both value and modulus.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for i, c := range v {
		if !c.Equal(other[i]) {
			return false
		}
	}

	return true
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
// It returns an error if the vectors differ in length or in moduli.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Wrap(ErrDimensionMismatch, "vectors should be of same length")
	}

	sum := make([]Element, len(v))
	var err error

	for i, c := range v {
		sum[i], err = c.Add(other[i])
		if err != nil {
			return nil, err
		}
	}

	return NewVector(sum), nil
}

// Sub subtracts vector other from v.
// The result is returned in a new Vector.
// It returns an error if the vectors differ in length or in moduli.
func (v Vector) Sub(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, errors.Wrap(ErrDimensionMismatch, "vectors should be of same length")
	}

	sub := make([]Element, len(v))
	var err error

	for i, c := range v {
		sub[i], err = c.Sub(other[i])
		if err != nil {
			return nil, err
		}
	}

	return NewVector(sub), nil
}

// MulScalar multiplies vector v by a given ring element x.
// The result is returned in a new Vector.
// It returns an error if any element's modulus differs from x's.
func (v Vector) MulScalar(x Element) (Vector, error) {
	res := make(Vector, len(v))
	var err error

	for i, vi := range v {
		res[i], err = vi.Mul(x)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

// Dot calculates the dot product (inner product) of vectors v and
// other in the ring.
// It returns an error if the vectors are empty, differ in length, or
// differ in moduli.
func (v Vector) Dot(other Vector) (Element, error) {
	if len(v) == 0 || len(v) != len(other) {
		return Element{}, errors.Wrap(ErrDimensionMismatch, "vectors should be non-empty and of same length")
	}

	prod := Zero(v[0].Modulus())

	for i, c := range v {
		t, err := c.Mul(other[i])
		if err != nil {
			return Element{}, err
		}
		prod, err = prod.Add(t)
		if err != nil {
			return Element{}, err
		}
	}

	return prod, nil
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	vStr := ""
	for _, yi := range v {
		vStr = vStr + " " + yi.String()
	}
	return vStr
}
