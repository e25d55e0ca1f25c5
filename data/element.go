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
	"math"
	"math/bits"
	"strconv"

	"github.com/pkg/errors"
)

// Element is a value from the ring of integers modulo q. It is an
// immutable value type: arithmetic methods return a new Element and
// never modify the receiver.
//
// The modulus must be smaller than 2^64 - 1. Intermediate results of
// Add and Mul are computed with 128-bit precision, so there is no
// upper bound on the modulus beyond that.
type Element struct {
	modulus uint64
	value   uint64
}

// NewElement returns the ring element value mod modulus. It returns
// an error if value does not fit the ring or the modulus is too
// large.
func NewElement(modulus, value uint64) (Element, error) {
	if modulus >= math.MaxUint64 {
		return Element{}, errors.Wrapf(ErrOutOfRange, "modulus %d exceeds the supported range", modulus)
	}
	if value >= modulus {
		return Element{}, errors.Wrapf(ErrOutOfRange, "value %d is not in the ring of integers mod %d", value, modulus)
	}

	return Element{modulus: modulus, value: value}, nil
}

// Zero returns the additive identity of the ring of integers mod
// modulus.
func Zero(modulus uint64) Element {
	return Element{modulus: modulus}
}

// Modulus returns the modulus of the ring the element lives in.
func (e Element) Modulus() uint64 {
	return e.modulus
}

// Uint64 returns the value of the element as an unsigned integer
// in [0, modulus).
func (e Element) Uint64() uint64 {
	return e.value
}

// IsZero returns true if the element is the additive identity of its
// ring.
func (e Element) IsZero() bool {
	return e.value == 0
}

// Add adds elements e and other in the ring.
// It returns an error if the elements have different moduli.
func (e Element) Add(other Element) (Element, error) {
	if e.modulus != other.modulus {
		return Element{}, errors.Wrap(ErrModulusMismatch, "cannot add elements")
	}

	sum, carry := bits.Add64(e.value, other.value, 0)

	return Element{modulus: e.modulus, value: bits.Rem64(carry, sum, e.modulus)}, nil
}

// Sub subtracts other from e in the ring, wrapping around the modulus
// when other is the larger value.
// It returns an error if the elements have different moduli.
func (e Element) Sub(other Element) (Element, error) {
	if e.modulus != other.modulus {
		return Element{}, errors.Wrap(ErrModulusMismatch, "cannot subtract elements")
	}

	if e.value >= other.value {
		return Element{modulus: e.modulus, value: e.value - other.value}, nil
	}

	return Element{modulus: e.modulus, value: e.modulus - (other.value - e.value)}, nil
}

// Mul multiplies elements e and other in the ring.
// It returns an error if the elements have different moduli.
func (e Element) Mul(other Element) (Element, error) {
	if e.modulus != other.modulus {
		return Element{}, errors.Wrap(ErrModulusMismatch, "cannot multiply elements")
	}

	hi, lo := bits.Mul64(e.value, other.value)

	return Element{modulus: e.modulus, value: bits.Rem64(hi, lo, e.modulus)}, nil
}

// Cmp compares the values of elements e and other. It returns -1 if
// e is smaller, 0 if the elements are equal, and 1 if e is larger.
// Elements of rings with different moduli have no ordering, so
// comparing them returns an error.
func (e Element) Cmp(other Element) (int, error) {
	if e.modulus != other.modulus {
		return 0, errors.Wrap(ErrModulusMismatch, "cannot compare elements")
	}

	switch {
	case e.value < other.value:
		return -1, nil
	case e.value > other.value:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal returns true if e and other are the same value of the same
// ring.
func (e Element) Equal(other Element) bool {
	return e.modulus == other.modulus && e.value == other.value
}

// Decompose writes the value of e in base radix and returns its
// digits, least significant first. The number of digits is fixed by
// the ring, not the value: it is the number of base radix digits of
// modulus - 1, so every element of the same ring decomposes to the
// same length.
// It returns an error if radix is smaller than 2.
func (e Element) Decompose(radix uint64) ([]uint64, error) {
	if radix < 2 {
		return nil, errors.Wrapf(ErrOutOfRange, "decomposition radix %d should be at least 2", radix)
	}

	max := e.modulus - 1
	numDigits := 1
	for power := radix; power <= max; {
		numDigits++
		if power > max/radix {
			break
		}
		power *= radix
	}

	digits := make([]uint64, numDigits)
	v := e.value
	for i := 0; i < numDigits; i++ {
		digits[i] = v % radix
		v /= radix
	}

	return digits, nil
}

// Recompose evaluates digits as a base radix representation, least
// significant digit first, and returns the result as an element mod
// modulus. It is the inverse of Decompose for digits produced with
// the same radix and modulus.
// It returns an error if radix is smaller than 2, if any digit is not
// smaller than radix, or if the recomposed value does not fit the
// ring.
func Recompose(radix, modulus uint64, digits []uint64) (Element, error) {
	if radix < 2 {
		return Element{}, errors.Wrapf(ErrOutOfRange, "decomposition radix %d should be at least 2", radix)
	}

	var value uint64
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] >= radix {
			return Element{}, errors.Wrapf(ErrOutOfRange, "digit %d should be smaller than radix %d", digits[i], radix)
		}

		hi, lo := bits.Mul64(value, radix)
		sum, carry := bits.Add64(lo, digits[i], 0)
		if hi != 0 || carry != 0 {
			return Element{}, errors.Wrap(ErrOutOfRange, "recomposed value overflows")
		}
		value = sum
	}

	el, err := NewElement(modulus, value)
	if err != nil {
		return Element{}, errors.Wrap(err, "cannot recompose element")
	}

	return el, nil
}

// String produces a string representation of the element's value.
func (e Element) String() string {
	return strconv.FormatUint(e.value, 10)
}
