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

import "github.com/xlab-si/gorand/source"

// Bool returns true or false with equal probability.
func Bool(s source.Source) bool {
	return s.Uint64()&1 == 1
}

// BoolP returns true with probability p. Probabilities at or below 0
// always give false, at or above 1 always true.
func BoolP(s source.Source, p float64) bool {
	return Float64(s) < p
}
