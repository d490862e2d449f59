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
	"math"

	"golang.org/x/exp/constraints"

	"github.com/xlab-si/gorand/source"
)

// Uint64Inclusive returns a uniformly distributed value from [0, n].
// A bare modulus over the raw range would skew the draw toward the low
// end whenever n+1 does not divide 2^64, so raw words are masked or
// rejected instead.
func Uint64Inclusive(s source.Source, n uint64) uint64 {
	switch {
	// n+1 is a power of two and masking is exact. This covers
	// n == MaxUint64 as well, where n+1 wraps to zero.
	case n&(n+1) == 0:
		return s.Uint64() & n

	// n covers more than half of the raw range; rejection on full
	// words needs fewer than two draws on average.
	case n > math.MaxInt64:
		v := s.Uint64()
		for v > n {
			v = s.Uint64()
		}

		return v

	// Draw 63-bit words from [0, k*(n+1)) for the largest k that keeps
	// the bound under 2^63, then reduce. The bound itself stays
	// computable without overflow only because the words are one bit
	// short of the raw width.
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := s.Uint64() & math.MaxInt64
		for v > maximum {
			v = s.Uint64() & math.MaxInt64
		}

		return v % (n + 1)
	}
}

// Uint64n returns a uniformly distributed value from [0, n). For n == 0
// the interval is empty and 0 is returned.
func Uint64n(s source.Source, n uint64) uint64 {
	if n == 0 {
		return 0
	}

	return Uint64Inclusive(s, n-1)
}

// IntRange returns a uniformly distributed value from the half-open
// interval [min, max). Any integer type, signed or unsigned, can be
// drawn. An empty interval (max <= min) yields min.
//
// The width of the interval is computed in uint64 arithmetic, which is
// exact for every integer type under Go's wrap-around conversion rules,
// so the full span of the widest types remains reachable.
func IntRange[T constraints.Integer](s source.Source, min, max T) T {
	if max <= min {
		return min
	}
	span := uint64(max) - uint64(min)

	return min + T(Uint64n(s, span))
}

// ByteRange returns a uniformly distributed byte from [min, max),
// deferring to IntRange. An empty interval yields min.
func ByteRange(s source.Source, min, max byte) byte {
	return IntRange(s, min, max)
}

// Byte returns a uniformly distributed byte from [0, max).
func Byte(s source.Source, max byte) byte {
	return ByteRange(s, 0, max)
}
