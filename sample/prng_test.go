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
	"testing"

	"github.com/fentec-project/gopir/sample"
	"github.com/stretchr/testify/assert"
)

func TestKeyedPRNG(t *testing.T) {
	prng1, err := sample.NewKeyedPRNG([]byte("test key"))
	assert.NoError(t, err)
	prng2, err := sample.NewKeyedPRNG([]byte("test key"))
	assert.NoError(t, err)
	prngOther, err := sample.NewKeyedPRNG([]byte("another key"))
	assert.NoError(t, err)

	buf1 := make([]byte, 64)
	buf2 := make([]byte, 64)
	bufOther := make([]byte, 64)

	_, err = prng1.Read(buf1)
	assert.NoError(t, err)
	_, err = prng2.Read(buf2)
	assert.NoError(t, err)
	_, err = prngOther.Read(bufOther)
	assert.NoError(t, err)

	assert.Equal(t, buf1, buf2, "the same key should produce the same sequence")
	assert.NotEqual(t, buf1, bufOther, "different keys should produce different sequences")

	// a reset PRNG replays its sequence from the beginning
	prng1.Reset()
	replay := make([]byte, 64)
	_, err = prng1.Read(replay)
	assert.NoError(t, err)
	assert.Equal(t, buf1, replay, "reset should rewind the sequence")
}

func TestThreadSafePRNG(t *testing.T) {
	prng := sample.NewPRNG()

	buf1 := make([]byte, 128)
	buf2 := make([]byte, 128)

	n, err := prng.Read(buf1)
	assert.NoError(t, err)
	assert.Equal(t, 128, n)

	_, err = prng.Read(buf2)
	assert.NoError(t, err)
	assert.NotEqual(t, buf1, buf2)
}
