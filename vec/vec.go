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

package vec

import "math"

// Vec is a plain two-dimensional vector, carrying just enough geometry
// for the random vector samplers in this package.
type Vec struct {
	X, Y float64
}

// FromAngle returns the vector (length, 0) rotated by angle radians.
func FromAngle(angle, length float64) Vec {
	return Vec{
		X: length * math.Cos(angle),
		Y: length * math.Sin(angle),
	}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the angle of v in radians, in (-π, π].
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
