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

import "github.com/xlab-si/gorand/source"

// Sampler draws float64 values from some probability distribution,
// spending raw draws from the source it is handed.
type Sampler interface {
	Sample(s source.Source) float64
}

// Fill populates out with independent draws from d.
func Fill(s source.Source, d Sampler, out []float64) {
	for i := range out {
		out[i] = d.Sample(s)
	}
}

// Slice returns n independent draws from d. n <= 0 yields an empty
// result.
func Slice(s source.Source, d Sampler, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	out := make([]float64, n)
	Fill(s, d, out)

	return out
}
