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

// Package pir implements a single-server private information
// retrieval protocol on top of the regev encryption scheme. It lets
// a client fetch one bit of a server's database without the server
// learning which bit was requested.
//
// The client encrypts a one-hot selector: one ciphertext per database
// entry, an encryption of 1 at the queried index and encryptions of 0
// everywhere else, each with fresh noise. Because the ciphertexts are
// semantically secure, the server cannot tell the position of the 1.
// The server adds up the ciphertexts at positions where its database
// bit is set, together with the matching public matrices, and returns
// both sums. Substituting the summed matrix for the public matrix of
// the scheme, the client decrypts the summed ciphertext and obtains
// exactly the database bit at the queried index.
//
// The protocol is the textbook construction: the query grows linearly
// with the database and the server scans every entry. Noise from the
// selected ciphertexts accumulates in the answer, so the database
// size and the noise standard deviation together must respect the
// noise budget of the parameters.
package pir
