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

// Package sample includes samplers for sampling random ring elements
// from different probability distributions.
//
// The samplers implement the data.Sampler interface and can be used,
// for instance, to fill vector or matrix structures with the desired
// random data.
//
// All samplers draw their raw randomness from an explicitly provided
// PRNG. Sampling with a KeyedPRNG instance reproduces the same
// sequence of samples for the same key, which makes randomized
// computations replayable.
package sample
