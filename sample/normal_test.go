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
	"testing"

	"github.com/fentec-project/gopir/data"
	"github.com/fentec-project/gopir/sample"
	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
)

func TestSample_Normal(t *testing.T) {
	prng, err := sample.NewKeyedPRNG([]byte("normal test"))
	assert.NoError(t, err)

	q := uint64(3329)
	stdDev := 6.4
	sampler, err := sample.NewNormal(prng, q, stdDev)
	assert.NoError(t, err)

	vals := make([]float64, 10000)
	for i := range vals {
		e, err := sampler.Sample()
		assert.NoError(t, err)
		assert.Equal(t, q, e.Modulus())
		assert.True(t, e.Uint64() > 1600 && e.Uint64() < 1729, "samples should concentrate around q / 2")
		vals[i] = float64(e.Uint64())
	}

	// the mean should be around 1664 and the standard deviation
	// around 6.4
	me, err := stats.Mean(vals)
	assert.NoError(t, err)
	assert.True(t, me > 1662, "mean value of the normal distribution is too small")
	assert.True(t, me < 1666, "mean value of the normal distribution is too big")

	sd, err := stats.StandardDeviation(vals)
	assert.NoError(t, err)
	assert.True(t, sd > 5.9, "standard deviation of the normal distribution is too small")
	assert.True(t, sd < 6.9, "standard deviation of the normal distribution is too big")
}

func TestSample_NormalErrors(t *testing.T) {
	prng, err := sample.NewKeyedPRNG(nil)
	assert.NoError(t, err)

	_, err = sample.NewNormal(prng, 101, 101)
	assert.True(t, errors.Is(err, data.ErrOutOfRange), "standard deviation should be smaller than the modulus")

	_, err = sample.NewNormal(prng, 101, 0)
	assert.True(t, errors.Is(err, data.ErrOutOfRange), "standard deviation should be positive")

	_, err = sample.NewNormal(prng, 0, 6.4)
	assert.True(t, errors.Is(err, data.ErrOutOfRange), "zero modulus should be rejected")
}
