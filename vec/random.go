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

import (
	"github.com/xlab-si/gorand/sample"
	"github.com/xlab-si/gorand/source"
)

// ByMagnitude returns a vector with a uniform angle over the full turn
// and a magnitude drawn uniformly from [minMag, maxMag].
//
// The result is NOT uniform over the ring's area. Magnitudes are
// uniform along the radius, which concentrates samples toward the
// center relative to an area-uniform draw; an area-uniform draw would
// need sqrt-scaled magnitudes instead. Keeping the magnitude uniform is
// the intended contract of this sampler, not an oversight.
func ByMagnitude(s source.Source, minMag, maxMag float64) Vec {
	angle := sample.Angle(s)
	magnitude := sample.FloatRange(s, minMag, maxMag)

	return FromAngle(angle, magnitude)
}

// InBox returns a vector uniformly distributed over the axis-aligned
// box [minX, maxX] x [minY, maxY]. The two coordinates are drawn
// independently, so unlike ByMagnitude this sampler IS uniform over
// the covered area.
func InBox(s source.Source, minX, minY, maxX, maxY float64) Vec {
	return Vec{
		X: sample.FloatRange(s, minX, maxX),
		Y: sample.FloatRange(s, minY, maxY),
	}
}

// InSymmetricBox returns a vector uniformly distributed over the box
// [-maxAbsX, maxAbsX] x [-maxAbsY, maxAbsY].
func InSymmetricBox(s source.Source, maxAbsX, maxAbsY float64) Vec {
	return InBox(s, -maxAbsX, -maxAbsY, maxAbsX, maxAbsY)
}
