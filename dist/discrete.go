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

package dist

import (
	"math"

	"github.com/pkg/errors"

	"github.com/xlab-si/gorand/sample"
	"github.com/xlab-si/gorand/source"
)

// Discrete samples indices with probability proportional to the
// weights it was built from.
type Discrete struct {
	cum []float64
}

// NewDiscrete returns a Discrete distribution over the given weights.
// Weights need not be normalized; they must be finite, non-negative and
// sum to something positive.
func NewDiscrete(weights []float64) (*Discrete, error) {
	if len(weights) == 0 {
		return nil, errors.New("error while building a discrete distribution: no weights")
	}

	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, errors.Errorf(
				"error while building a discrete distribution: invalid weight %v at index %d", w, i)
		}
		total += w
		cum[i] = total
	}
	if total <= 0 {
		return nil, errors.New("error while building a discrete distribution: total weight is zero")
	}

	return &Discrete{cum: cum}, nil
}

// Index returns an index in [0, len(weights)), drawn with probability
// proportional to its weight.
func (d *Discrete) Index(s source.Source) int {
	u := sample.Float64(s) * d.cum[len(d.cum)-1]
	for i, c := range d.cum {
		if u < c {
			return i
		}
	}

	// rounding at the very top of the range can push u onto the total;
	// that lands on the last cell carrying any weight
	for i := len(d.cum) - 1; i > 0; i-- {
		if d.cum[i] > d.cum[i-1] {
			return i
		}
	}

	return 0
}

// Sample returns Index as a float64, making Discrete usable wherever a
// Sampler is expected.
func (d *Discrete) Sample(s source.Source) float64 {
	return float64(d.Index(s))
}
