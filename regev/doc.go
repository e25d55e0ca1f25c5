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

// Package regev implements Regev's public key encryption scheme based
// on the learning with errors (LWE) problem, as introduced in the
// paper "On lattices, learning with errors, random linear codes, and
// cryptography" by Regev (see https://dl.acm.org/doi/10.1145/1568318.1568324).
//
// A ciphertext hides a single plaintext element mod p inside a ring
// element mod q. Encryption scales the plaintext by floor(q / p) and
// masks it with an inner product of the public matrix A and the
// secret, plus a small random noise term. Decryption removes the mask
// and rounds the noise away, which succeeds as long as the
// accumulated noise magnitude stays below q / (2 * p).
//
// Ciphertexts are additively homomorphic: the sum of two ciphertexts
// decrypts to the sum of the plaintexts, provided the public matrix
// used for decryption is summed in the same way and the noise stays
// within budget.
//
// The implementation is meant for studying the scheme and for
// building higher level protocols on top of it, such as private
// information retrieval. The parameters it accepts are not vetted
// for cryptographic security.
package regev
