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

package regev

import (
	"math"
	"math/bits"

	"github.com/fentec-project/gopir/data"
	"github.com/fentec-project/gopir/sample"
	"github.com/pkg/errors"
)

// Params represents public parameters of the scheme.
type Params struct {
	N int // Length of the secret vector
	M int // Number of samples

	P uint64 // Modulus for plaintexts
	Q uint64 // Modulus for ciphertext and keys

	StdDev float64 // Standard deviation for sampling noise

	// Matrix A of dimensions m*n is a public parameter
	// of the scheme
	A data.Matrix
}

// NewParams configures new public parameters of the scheme.
// It accepts a PRNG, the main security parameters n and m, modulus
// for ciphertext and keys q, modulus for plaintexts p, and the
// standard deviation for sampling noise. The public matrix A is
// sampled uniformly at random mod q.
//
// It returns an error in case the parameters are out of range or
// public parameters of the scheme could not be generated.
func NewParams(prng sample.PRNG, n, m int, q, p uint64, stdDev float64) (*Params, error) {
	if n < 1 || m < 1 {
		return nil, errors.Wrap(data.ErrDimensionMismatch, "dimensions n and m should be positive")
	}
	if p < 2 || q < p {
		return nil, errors.Wrap(data.ErrOutOfRange, "moduli should satisfy 2 <= p <= q")
	}
	if q >= math.MaxUint64 {
		return nil, errors.Wrapf(data.ErrOutOfRange, "modulus %d exceeds the supported range", q)
	}
	if stdDev <= 0 || stdDev >= float64(q) {
		return nil, errors.Wrapf(data.ErrOutOfRange, "standard deviation %f should be positive and smaller than the modulus", stdDev)
	}

	A, err := data.NewRandomMatrix(m, n, sample.NewUniform(prng, q))
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate public parameters")
	}

	return &Params{
		N:      n,
		M:      m,
		P:      p,
		Q:      q,
		StdDev: stdDev,
		A:      A,
	}, nil
}

// SimpleParams configures a small demonstration parameter set with
// n = 4, m = 1, q = 3329, p = 2 and standard deviation 6.4. The set
// keeps all values easy to inspect; it offers no security.
func SimpleParams(prng sample.PRNG) (*Params, error) {
	return NewParams(prng, 4, 1, 3329, 2, 6.4)
}

// NoiseBudget returns q / (2 * p), the bound on the accumulated
// noise magnitude under which decryption still recovers the
// plaintext. Operations on ciphertexts do not track their noise;
// staying within the budget is the caller's responsibility.
func (p *Params) NoiseBudget() uint64 {
	return p.Q / (2 * p.P)
}

// GenSecret generates a secret key for the scheme: a vector of n
// uniform random elements mod q.
//
// In case the secret key could not be generated, it returns an error.
func GenSecret(prng sample.PRNG, params *Params) (data.Vector, error) {
	secret, err := data.NewRandomVector(params.N, sample.NewUniform(prng, params.Q))
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate secret key")
	}

	return secret, nil
}

// GenErrorVec generates a fresh noise vector of m elements mod q
// drawn from the zero-centered normal distribution with the
// parameters' standard deviation.
//
// In case the noise could not be generated, it returns an error.
func GenErrorVec(prng sample.PRNG, params *Params) (data.Vector, error) {
	sampler, err := sample.NewNormalCentered(prng, params.Q, params.StdDev)
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate error vector")
	}

	e, err := data.NewRandomVector(params.M, sampler)
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate error vector")
	}

	return e, nil
}

// GenBoundedErrorVec generates a fresh noise vector of m elements
// mod q drawn uniformly from the symmetric interval [-bound, bound].
// Unlike GenErrorVec it guarantees a hard per-sample magnitude bound,
// which makes noise growth across homomorphic additions easy to
// account for.
//
// It returns an error if the interval does not fit the ring or the
// noise could not be generated.
func GenBoundedErrorVec(prng sample.PRNG, params *Params, bound int64) (data.Vector, error) {
	if bound < 0 {
		return nil, errors.Wrap(data.ErrOutOfRange, "noise bound should be non-negative")
	}

	sampler, err := sample.NewUniformRange(prng, params.Q, -bound, bound+1)
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate error vector")
	}

	e, err := data.NewRandomVector(params.M, sampler)
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate error vector")
	}

	return e, nil
}

// GenNormalMatrix generates a rows*cols matrix of elements mod q
// drawn from the normal distribution centered at q / 2 with the given
// standard deviation.
//
// In case the matrix could not be generated, it returns an error.
func GenNormalMatrix(prng sample.PRNG, q uint64, stdDev float64, rows, cols int) (data.Matrix, error) {
	sampler, err := sample.NewNormal(prng, q, stdDev)
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate normal matrix")
	}

	return data.NewRandomMatrix(rows, cols, sampler)
}

// Encrypt encrypts a single plaintext element mod p under the given
// secret key and fresh noise vector e. The ciphertext is the ring
// element A*s + e + floor(q / p) * plaintext mod q.
//
// The scheme encrypts one element per ciphertext, so the parameters
// must have m = 1. It returns an error in case of a malformed secret
// key, noise vector or plaintext.
func Encrypt(params *Params, secret, e data.Vector, plaintext data.Element) (data.Element, error) {
	if params.M != 1 {
		return data.Element{}, errors.Wrap(data.ErrDimensionMismatch, "the scheme encrypts a single element, m should be 1")
	}
	if len(secret) != params.N {
		return data.Element{}, errors.Wrap(data.ErrDimensionMismatch, "secret key of wrong length")
	}
	if len(e) != params.M {
		return data.Element{}, errors.Wrap(data.ErrDimensionMismatch, "error vector of wrong length")
	}
	if plaintext.Modulus() != params.P {
		return data.Element{}, errors.Wrap(data.ErrModulusMismatch, "plaintext should be an element mod p")
	}

	// Compute As + e
	As, err := params.A.MulVec(secret)
	if err != nil {
		return data.Element{}, errors.Wrap(err, "cannot encrypt")
	}
	b, err := As.Add(e)
	if err != nil {
		return data.Element{}, errors.Wrap(err, "cannot encrypt")
	}

	// Scale the plaintext by floor(q / p), with both factors
	// embedded into 1x1 matrices mod q
	floor, err := data.NewElement(params.Q, params.Q/params.P)
	if err != nil {
		return data.Element{}, errors.Wrap(err, "cannot encrypt")
	}
	lifted, err := data.NewElement(params.Q, plaintext.Uint64())
	if err != nil {
		return data.Element{}, errors.Wrap(err, "cannot encrypt")
	}

	scaled, err := data.NewScalarMatrix(floor).Mul(data.NewScalarMatrix(lifted))
	if err != nil {
		return data.Element{}, errors.Wrap(err, "cannot encrypt")
	}

	ct, err := data.NewScalarMatrix(b[0]).Add(scaled)
	if err != nil {
		return data.Element{}, errors.Wrap(err, "cannot encrypt")
	}

	return ct[0][0], nil
}

// Decrypt recovers the plaintext from a ciphertext using the secret
// key. It subtracts A*s from the ciphertext and rounds the residual
// to the nearest multiple of q / p, which recovers the plaintext as
// long as the accumulated noise magnitude is below q / (2 * p).
//
// It returns an error in case of a malformed secret key or
// ciphertext.
func Decrypt(params *Params, secret data.Vector, ciphertext data.Element) (data.Element, error) {
	if params.M != 1 {
		return data.Element{}, errors.Wrap(data.ErrDimensionMismatch, "the scheme decrypts a single element, m should be 1")
	}
	if len(secret) != params.N {
		return data.Element{}, errors.Wrap(data.ErrDimensionMismatch, "secret key of wrong length")
	}
	if ciphertext.Modulus() != params.Q {
		return data.Element{}, errors.Wrap(data.ErrModulusMismatch, "ciphertext should be an element mod q")
	}

	As, err := params.A.MulVec(secret)
	if err != nil {
		return data.Element{}, errors.Wrap(err, "cannot decrypt")
	}

	residual, err := ciphertext.Sub(As[0])
	if err != nil {
		return data.Element{}, errors.Wrap(err, "cannot decrypt")
	}

	// Round residual * p / q to the nearest integer mod p, with
	// 128-bit intermediate values
	hi, lo := bits.Mul64(residual.Uint64(), params.P)
	lo, carry := bits.Add64(lo, params.Q/2, 0)
	hi += carry
	quo, _ := bits.Div64(hi, lo, params.Q)

	return data.NewElement(params.P, quo%params.P)
}
