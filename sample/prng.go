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
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for generation of random bytes. It is the
// single source of randomness for all samplers in this package.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG generates cryptographically secure random bytes.
// It is safe for concurrent use.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() *ThreadSafePRNG {
	return &ThreadSafePRNG{}
}

// Read reads random bytes into sum.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically generates a sequence of random bytes
// from a key using the blake2b hash function. Two instances with the
// same key produce the same sequence.
//
// KeyedPRNG should not be shared among multiple goroutines, as the
// resulting sequence would no longer be deterministic for a given
// key.
type KeyedPRNG struct {
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG. It accepts an
// optional key; a nil key is treated as an empty one.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, errors.Wrap(err, "cannot initialize keyed prng")
	}

	return &KeyedPRNG{xof: xof}, nil
}

// Read reads bytes of the deterministic sequence into sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the beginning of its sequence.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}

// randUint64 reads 8 bytes from the PRNG and interprets them as an
// unsigned integer in big endian order.
func randUint64(prng PRNG) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(prng, buf[:]); err != nil {
		return 0, errors.Wrap(err, "cannot read randomness")
	}

	return binary.BigEndian.Uint64(buf[:]), nil
}

// prngSource adapts a PRNG to the math/rand Source64 interface, so
// that the standard library's normal distribution can be driven by
// an injected PRNG.
type prngSource struct {
	prng PRNG
}

func (s *prngSource) Uint64() uint64 {
	r, err := randUint64(s.prng)
	if err != nil {
		panic(err)
	}

	return r
}

func (s *prngSource) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed is a no-op, the stream is determined by the underlying PRNG.
func (s *prngSource) Seed(seed int64) {}
