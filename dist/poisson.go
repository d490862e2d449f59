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

	"github.com/xlab-si/gorand/sample"
	"github.com/xlab-si/gorand/source"
)

// Poisson samples the Poisson distribution with mean Lambda. Lambda
// must be non-negative; the count comes out as a float64 like every
// other sampler, always carrying a whole number.
//
// Sampling multiplies uniform draws until their product falls under
// e^-Lambda, so the cost of one sample grows with Lambda.
type Poisson struct {
	Lambda float64
}

func (p Poisson) Sample(s source.Source) float64 {
	limit := math.Exp(-p.Lambda)

	k := 0
	prod := 1.0
	for {
		prod *= sample.Float64(s)
		if prod <= limit {
			return float64(k)
		}
		k++
	}
}
