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

package sample

import (
	"math"

	"github.com/fentec-project/gopir/data"
	"github.com/pkg/errors"
)

// randBelow returns a uniformly distributed value from [0, bound).
// Full-width draws are rejected below a threshold so that the
// accepted draws cover the interval evenly; the expected number of
// iterations is constant.
func randBelow(prng PRNG, bound uint64) (uint64, error) {
	min := (math.MaxUint64 - bound) % bound

	for {
		r, err := randUint64(prng)
		if err != nil {
			return 0, err
		}
		if r >= min {
			return r % bound, nil
		}
	}
}

// Uniform samples random ring elements with uniformly distributed
// values from [0, modulus).
type Uniform struct {
	prng    PRNG
	modulus uint64
}

// NewUniform returns an instance of the Uniform sampler.
// It accepts the PRNG to draw randomness from and the modulus of the
// ring to sample in.
func NewUniform(prng PRNG, modulus uint64) *Uniform {
	return &Uniform{
		prng:    prng,
		modulus: modulus,
	}
}

// Sample samples a uniform random ring element.
func (u *Uniform) Sample() (data.Element, error) {
	if u.modulus == 0 {
		return data.Element{}, errors.Wrap(data.ErrOutOfRange, "sampling modulus should be positive")
	}

	r, err := randBelow(u.prng, u.modulus)
	if err != nil {
		return data.Element{}, err
	}

	return data.NewElement(u.modulus, r)
}

// NewBit returns a sampler of single random bits, that is, of the
// values 0 and 1 in the ring of integers mod 2.
func NewBit(prng PRNG) *Uniform {
	return NewUniform(prng, 2)
}

// UniformRange samples random ring elements with values drawn
// uniformly from the signed interval [min, max) and wrapped into the
// ring, so that a negative value v becomes modulus - |v|.
type UniformRange struct {
	prng    PRNG
	modulus uint64
	base    uint64
	width   uint64
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts the PRNG to draw randomness from, the modulus of the
// ring, and lower and upper bounds of the sampling interval.
// It returns an error if the interval is empty or does not fit the
// ring.
func NewUniformRange(prng PRNG, modulus uint64, min, max int64) (*UniformRange, error) {
	if modulus == 0 || modulus >= math.MaxUint64 {
		return nil, errors.Wrapf(data.ErrOutOfRange, "modulus %d exceeds the supported range", modulus)
	}
	if min >= max {
		return nil, errors.Wrap(data.ErrOutOfRange, "sampling interval should be non-empty")
	}

	width := uint64(max) - uint64(min)
	if width > modulus {
		return nil, errors.Wrap(data.ErrOutOfRange, "sampling interval exceeds the ring")
	}
	if min < 0 && -uint64(min) >= modulus {
		return nil, errors.Wrap(data.ErrOutOfRange, "lower bound exceeds the ring")
	}
	if max > 0 && uint64(max) > modulus {
		return nil, errors.Wrap(data.ErrOutOfRange, "upper bound exceeds the ring")
	}

	base := uint64(min)
	if min < 0 {
		base = modulus - (-uint64(min))
	}

	return &UniformRange{
		prng:    prng,
		modulus: modulus,
		base:    base,
		width:   width,
	}, nil
}

// Sample samples a random ring element from the interval.
func (u *UniformRange) Sample() (data.Element, error) {
	offset, err := randBelow(u.prng, u.width)
	if err != nil {
		return data.Element{}, err
	}

	sum := u.base + offset
	if sum < u.base || sum >= u.modulus {
		sum -= u.modulus
	}

	return data.NewElement(u.modulus, sum)
}
