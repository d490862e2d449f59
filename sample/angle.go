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
	"math"

	"github.com/xlab-si/gorand/source"
)

// AngleRange returns an angle in radians drawn with the linear formula
// over [min, max), with the same unguarded behavior on inverted bounds
// as FloatRange.
func AngleRange(s source.Source, min, max float64) float64 {
	return FloatRange(s, min, max)
}

// Angle returns an angle in radians uniform over a full turn, [0, 2π).
func Angle(s source.Source) float64 {
	return AngleRange(s, 0, 2*math.Pi)
}
