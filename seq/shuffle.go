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
	"github.com/xlab-si/gorand/sample"
	"github.com/xlab-si/gorand/source"
)

// Interface is the capability the shuffling algorithm needs from a
// collection: a known length and index-based swapping. Any
// sort.Interface implementation satisfies it.
type Interface interface {
	Len() int
	Swap(i, j int)
}

// Shuffle permutes n elements in place through swap, reaching every
// permutation with equal probability. It walks Fisher-Yates from the
// last index down to the second: at step i an unbiased index is drawn
// from [0, i] and the two positions are swapped. Exactly n-1 swaps are
// performed, none when n <= 1.
func Shuffle(s source.Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		k := int(sample.Uint64n(s, uint64(i)+1))
		swap(k, i)
	}
}

// ShuffleData shuffles a collection through its Interface capability.
func ShuffleData(s source.Source, data Interface) {
	Shuffle(s, data.Len(), data.Swap)
}

// ShuffleSlice shuffles a slice of any element type in place.
func ShuffleSlice[T any](s source.Source, xs []T) {
	Shuffle(s, len(xs), func(i, j int) {
		xs[i], xs[j] = xs[j], xs[i]
	})
}

// PartialShuffle runs only the trailing k steps of the full shuffle,
// after which positions [n-k, n) hold k distinct elements drawn
// uniformly from the whole collection, in uniformly random order. The
// prefix is left partially disturbed. Values of k outside [0, n] act
// like the nearer bound.
func PartialShuffle(s source.Source, n, k int, swap func(i, j int)) {
	if k > n {
		k = n
	}
	for i := n - 1; i >= n-k && i > 0; i-- {
		j := int(sample.Uint64n(s, uint64(i)+1))
		swap(j, i)
	}
}

// Perm returns a uniformly random permutation of the integers [0, n).
func Perm(s source.Source, n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	ShuffleSlice(s, p)

	return p
}
