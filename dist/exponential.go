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

// Exponential samples the exponential distribution with rate parameter
// Rate, i.e. mean 1/Rate. Rate must be positive.
type Exponential struct {
	Rate float64
}

// Sample returns one exponentially distributed value by inverting the
// distribution's CDF over a single uniform draw.
func (e Exponential) Sample(s source.Source) float64 {
	return -math.Log(1-sample.Float64(s)) / e.Rate
}
