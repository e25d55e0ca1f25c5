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

package sample_test

import (
	"errors"
	"math"
	"testing"

	"github.com/fentec-project/gopir/data"
	"github.com/fentec-project/gopir/sample"
	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
)

func TestSample_Uniform(t *testing.T) {
	prng, err := sample.NewKeyedPRNG([]byte("uniform test"))
	assert.NoError(t, err)

	q := uint64(3329)
	sampler := sample.NewUniform(prng, q)

	vals := make([]float64, 10000)
	for i := range vals {
		e, err := sampler.Sample()
		assert.NoError(t, err)
		assert.Equal(t, q, e.Modulus())
		assert.True(t, e.Uint64() < q, "samples should be in [0, q)")
		vals[i] = float64(e.Uint64())
	}

	// the mean should be around q / 2
	me, err := stats.Mean(vals)
	assert.NoError(t, err)
	assert.True(t, me > 1614, "mean value of the uniform distribution is too small")
	assert.True(t, me < 1714, "mean value of the uniform distribution is too big")
}

func TestSample_UniformChiSquared(t *testing.T) {
	prng, err := sample.NewKeyedPRNG([]byte("chi squared test"))
	assert.NoError(t, err)

	q := uint64(16)
	n := 4096
	sampler := sample.NewUniform(prng, q)

	observed := make([]float64, q)
	for i := 0; i < n; i++ {
		e, err := sampler.Sample()
		assert.NoError(t, err)
		observed[e.Uint64()]++
	}

	// Pearson's statistic against the uniform distribution; for 15
	// degrees of freedom a value of 60 is far beyond any reasonable
	// quantile
	expected := float64(n) / float64(q)
	chiSquared := 0.0
	for _, o := range observed {
		chiSquared += (o - expected) * (o - expected) / expected
	}
	assert.True(t, chiSquared < 60, "samples are too far from the uniform distribution")
}

func TestSample_UniformDeterministic(t *testing.T) {
	prng1, err := sample.NewKeyedPRNG([]byte("seed"))
	assert.NoError(t, err)
	prng2, err := sample.NewKeyedPRNG([]byte("seed"))
	assert.NoError(t, err)

	sampler1 := sample.NewUniform(prng1, 3329)
	sampler2 := sample.NewUniform(prng2, 3329)

	for i := 0; i < 100; i++ {
		e1, err := sampler1.Sample()
		assert.NoError(t, err)
		e2, err := sampler2.Sample()
		assert.NoError(t, err)
		assert.Equal(t, e1, e2, "the same key should reproduce the same samples")
	}
}

func TestSample_Bit(t *testing.T) {
	prng, err := sample.NewKeyedPRNG([]byte("bit test"))
	assert.NoError(t, err)

	sampler := sample.NewBit(prng)

	ones := 0
	for i := 0; i < 2000; i++ {
		e, err := sampler.Sample()
		assert.NoError(t, err)
		assert.Equal(t, uint64(2), e.Modulus())
		assert.True(t, e.Uint64() < 2)
		if e.Uint64() == 1 {
			ones++
		}
	}

	assert.True(t, ones > 800, "too few ones among sampled bits")
	assert.True(t, ones < 1200, "too many ones among sampled bits")
}

func TestSample_UniformErrors(t *testing.T) {
	prng, err := sample.NewKeyedPRNG(nil)
	assert.NoError(t, err)

	_, err = sample.NewUniform(prng, 0).Sample()
	assert.True(t, errors.Is(err, data.ErrOutOfRange), "zero modulus should be rejected")

	_, err = sample.NewUniform(prng, math.MaxUint64).Sample()
	assert.True(t, errors.Is(err, data.ErrOutOfRange), "too large moduli should be rejected")
}

func TestSample_UniformRange(t *testing.T) {
	prng, err := sample.NewKeyedPRNG([]byte("range test"))
	assert.NoError(t, err)

	q := uint64(101)
	sampler, err := sample.NewUniformRange(prng, q, -2, 3)
	assert.NoError(t, err)

	counts := make(map[uint64]int)
	for i := 0; i < 1000; i++ {
		e, err := sampler.Sample()
		assert.NoError(t, err)
		counts[e.Uint64()]++
	}

	// [-2, 3) wraps to the ring values 99, 100, 0, 1, 2
	assert.Equal(t, 5, len(counts))
	for _, v := range []uint64{99, 100, 0, 1, 2} {
		assert.True(t, counts[v] > 0, "every value of the interval should appear")
	}
}

func TestSample_UniformRangeErrors(t *testing.T) {
	prng, err := sample.NewKeyedPRNG(nil)
	assert.NoError(t, err)

	_, err = sample.NewUniformRange(prng, 101, 3, 3)
	assert.True(t, errors.Is(err, data.ErrOutOfRange), "empty intervals should be rejected")

	_, err = sample.NewUniformRange(prng, 5, -4, 5)
	assert.True(t, errors.Is(err, data.ErrOutOfRange), "intervals wider than the ring should be rejected")

	_, err = sample.NewUniformRange(prng, 5, -5, 0)
	assert.True(t, errors.Is(err, data.ErrOutOfRange), "lower bounds outside the ring should be rejected")

	_, err = sample.NewUniformRange(prng, 5, 2, 6)
	assert.True(t, errors.Is(err, data.ErrOutOfRange), "upper bounds outside the ring should be rejected")

	_, err = sample.NewUniformRange(prng, 0, 0, 1)
	assert.True(t, errors.Is(err, data.ErrOutOfRange), "zero modulus should be rejected")
}
