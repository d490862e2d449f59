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

// Normal samples the normal distribution with mean Mu and standard
// deviation Sigma.
type Normal struct {
	Mu    float64
	Sigma float64
}

// Sample returns one normally distributed value. It applies the
// Box-Muller transform to two uniform draws; the first draw is flipped
// to (0, 1] so its logarithm stays finite.
func (n Normal) Sample(s source.Source) float64 {
	u := 1 - sample.Float64(s)
	v := sample.Float64(s)
	z := math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)

	return n.Mu + n.Sigma*z
}
