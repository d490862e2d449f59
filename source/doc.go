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

// Package source defines the raw uniform generator that every sampler
// in this module draws from.
//
// Package source provides the Source interface along with a few
// implementations of this interface: a Mersenne Twister generator for
// general use, and a Salsa20 keystream generator for fully reproducible
// draws. Anything exposing a raw 64-bit draw and a reseed operation
// satisfies Source; in particular every generator from
// gonum.org/v1/gonum/mathext/prng can be passed to the samplers directly.
//
// A Source is the only mutable state the samplers touch. None of them
// synchronize access to it, so a Source shared between goroutines must be
// serialized externally, for instance with Locked.
package source
