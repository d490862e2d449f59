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

package seq

import (
	"golang.org/x/exp/slices"

	"github.com/xlab-si/gorand/sample"
	"github.com/xlab-si/gorand/source"
)

// Pick returns one uniformly chosen element of xs. An empty xs yields
// the zero value of T.
func Pick[T any](s source.Source, xs []T) T {
	if len(xs) == 0 {
		var zero T
		return zero
	}

	return xs[sample.Uint64n(s, uint64(len(xs)))]
}

// SampleReplace returns count elements drawn independently from xs.
// Every draw sees the full population, so the same element may appear
// more than once; with count near or above len(xs) repeats are
// statistically expected. count <= 0 or an empty xs yields an empty
// result. The result never shares storage with xs.
func SampleReplace[T any](s source.Source, xs []T, count int) []T {
	if count <= 0 || len(xs) == 0 {
		return []T{}
	}

	out := make([]T, count)
	for i := range out {
		out[i] = xs[sample.Uint64n(s, uint64(len(xs)))]
	}

	return out
}

// Sample returns count distinct elements of xs, chosen uniformly, in
// uniformly random order. When xs holds no more than count elements the
// whole population comes back as a shuffled clone; this degenerate case
// is documented policy, not an error. count <= 0 or an empty xs yields
// an empty result.
//
// The input is never rearranged: all work happens on a clone, and the
// result shares no storage with xs.
func Sample[T any](s source.Source, xs []T, count int) []T {
	if count <= 0 || len(xs) == 0 {
		return []T{}
	}

	work := slices.Clone(xs)
	if len(work) <= count {
		ShuffleSlice(s, work)
		return work
	}

	PartialShuffle(s, len(work), count, func(i, j int) {
		work[i], work[j] = work[j], work[i]
	})

	return work[len(work)-count:]
}
