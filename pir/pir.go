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

package pir

import (
	"github.com/fentec-project/gopir/data"
	"github.com/fentec-project/gopir/regev"
	"github.com/fentec-project/gopir/sample"
	"github.com/pkg/errors"
)

// Database is the server's data: a vector of bits represented as
// ring elements mod 2.
type Database data.Vector

// Query is the client's encrypted one-hot selector: one ciphertext
// mod q per database entry.
type Query data.Vector

// Answer is the server's aggregated response. C is the sum of the
// query ciphertexts at the set database positions and A is the sum of
// the matching public matrices. The client needs both to decode.
type Answer struct {
	A data.Matrix
	C data.Element
}

// GenerateDatabase generates a database of the given size filled
// with uniform random bits.
//
// In case the database could not be generated, it returns an error.
func GenerateDatabase(prng sample.PRNG, size int) (Database, error) {
	if size < 0 {
		return nil, errors.Wrapf(data.ErrOutOfRange, "database size %d should be non-negative", size)
	}

	db, err := data.NewRandomVector(size, sample.NewBit(prng))
	if err != nil {
		return nil, errors.Wrap(err, "cannot generate database")
	}

	return Database(db), nil
}

// NewQuery builds a query for the database entry at index idx. It
// encrypts a selector of dbSize plaintext bits, a 1 at idx and 0
// everywhere else, each under the given secret key with fresh noise.
//
// It returns an error if idx does not address a database of dbSize
// entries or the encryptions fail.
func NewQuery(prng sample.PRNG, params *regev.Params, secret data.Vector, idx, dbSize int) (Query, error) {
	if idx < 0 || idx >= dbSize {
		return nil, errors.Wrapf(data.ErrIndexOutOfBounds, "index %d should address a database of %d entries", idx, dbSize)
	}

	query := make(Query, dbSize)
	for i := 0; i < dbSize; i++ {
		var bit uint64
		if i == idx {
			bit = 1
		}

		plaintext, err := data.NewElement(params.P, bit)
		if err != nil {
			return nil, errors.Wrap(err, "cannot build query")
		}

		e, err := regev.GenErrorVec(prng, params)
		if err != nil {
			return nil, errors.Wrap(err, "cannot build query")
		}

		query[i], err = regev.Encrypt(params, secret, e, plaintext)
		if err != nil {
			return nil, errors.Wrap(err, "cannot build query")
		}
	}

	return query, nil
}

// Answer processes a query against the database. For every set
// database bit the matching query ciphertext is added into a running
// ciphertext sum and the public matrix is added into a running matrix
// sum. The server only ever works on ciphertexts and never learns
// the queried index.
//
// It returns an error if the query and the database differ in size.
func (q Query) Answer(params *regev.Params, db Database) (*Answer, error) {
	if len(q) != len(db) {
		return nil, errors.Wrap(data.ErrDimensionMismatch, "query and database should be of same size")
	}

	ct := data.Zero(params.Q)
	sumA := data.NewConstantMatrix(params.M, params.N, data.Zero(params.Q))
	var err error

	for i, bit := range db {
		if bit.IsZero() {
			continue
		}

		ct, err = ct.Add(q[i])
		if err != nil {
			return nil, errors.Wrap(err, "cannot process query")
		}
		sumA, err = sumA.Add(params.A)
		if err != nil {
			return nil, errors.Wrap(err, "cannot process query")
		}
	}

	return &Answer{A: sumA, C: ct}, nil
}

// Decode recovers the database bit at the queried index from the
// server's answer. It substitutes the summed matrix for the public
// matrix of the parameters and decrypts the summed ciphertext with
// the secret key the query was built with.
//
// The result is correct as long as the noise accumulated in the
// answer stays below the noise budget of the parameters.
func (a *Answer) Decode(params *regev.Params, secret data.Vector) (data.Element, error) {
	decodeParams := *params
	decodeParams.A = a.A

	bit, err := regev.Decrypt(&decodeParams, secret, a.C)
	if err != nil {
		return data.Element{}, errors.Wrap(err, "cannot decode answer")
	}

	return bit, nil
}
