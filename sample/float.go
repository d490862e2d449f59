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
	"golang.org/x/exp/constraints"

	"github.com/xlab-si/gorand/source"
)

// FloatRange returns the value u*(max-min)+min for a single uniform
// draw u from [0, 1). For min <= max the result is uniform over
// [min, max]; max itself shows up only when rounding lands on it.
//
// Inverted bounds are not guarded: the formula extrapolates linearly,
// so a caller passing max < min receives a value outside the interval
// in its natural order. Callers who consider that an error must check
// their bounds before the call.
func FloatRange[T constraints.Float](s source.Source, min, max T) T {
	return T(Float64(s))*(max-min) + min
}
