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
	"time"

	"github.com/xlab-si/gorand/source"
)

// DurationRange returns a duration drawn with the linear formula
// u*(max-min)+min over the duration's magnitude. Like FloatRange it
// leaves inverted bounds unguarded and extrapolates.
func DurationRange(s source.Source, min, max time.Duration) time.Duration {
	return time.Duration(Float64(s)*float64(max-min)) + min
}

// Duration returns a duration from [0, max], shorthand for
// DurationRange with a zero lower bound.
func Duration(s source.Source, max time.Duration) time.Duration {
	return DurationRange(s, 0, max)
}
