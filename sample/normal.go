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
	"math/rand"

	"github.com/fentec-project/gopir/data"
	"github.com/pkg/errors"
)

// Normal samples random ring elements from a normal (Gaussian)
// distribution centered at modulus / 2, truncated to integer values.
//
// A draw that falls outside [0, modulus) cannot be represented in the
// ring and makes Sample return an error. With a standard deviation
// that is small relative to the modulus such draws are vanishingly
// rare.
type Normal struct {
	modulus uint64
	mean    float64
	stdDev  float64
	gauss   *rand.Rand
}

// NewNormal returns an instance of the Normal sampler.
// It accepts the PRNG to draw randomness from, the modulus of the
// ring, and the standard deviation of the distribution.
// It returns an error if the standard deviation does not fit the
// ring.
func NewNormal(prng PRNG, modulus uint64, stdDev float64) (*Normal, error) {
	if modulus == 0 {
		return nil, errors.Wrap(data.ErrOutOfRange, "sampling modulus should be positive")
	}
	if stdDev <= 0 || stdDev >= float64(modulus) {
		return nil, errors.Wrapf(data.ErrOutOfRange, "standard deviation %f should be positive and smaller than the modulus", stdDev)
	}

	return &Normal{
		modulus: modulus,
		mean:    float64(modulus / 2),
		stdDev:  stdDev,
		gauss:   rand.New(&prngSource{prng: prng}),
	}, nil
}

// Sample samples a normally distributed ring element.
func (s *Normal) Sample() (data.Element, error) {
	x := s.mean + s.gauss.NormFloat64()*s.stdDev
	if x < 0 || x >= float64(s.modulus) {
		return data.Element{}, errors.Wrapf(data.ErrOutOfRange, "normal sample %f is not in the ring of integers mod %d", x, s.modulus)
	}

	return data.NewElement(s.modulus, uint64(x))
}
