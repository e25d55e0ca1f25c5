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

package data

import "errors"

// Errors returned by operations on ring elements, vectors and matrices.
// Callers can test for them with errors.Is, also when they come back
// wrapped with additional context.
var (
	// ErrModulusMismatch signals an operation on ring elements that
	// live in rings with different moduli.
	ErrModulusMismatch = errors.New("elements have different moduli")

	// ErrDimensionMismatch signals an operation on vectors or matrices
	// whose dimensions do not fit together.
	ErrDimensionMismatch = errors.New("dimensions do not match")

	// ErrOutOfRange signals a value that does not fit the ring or the
	// requested representation.
	ErrOutOfRange = errors.New("value out of range")

	// ErrIndexOutOfBounds signals an index outside a valid range.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)
