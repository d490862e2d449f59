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

package vec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xlab-si/gorand/vec"
)

func TestFromAngle(t *testing.T) {
	v := vec.FromAngle(0, 2)
	assert.Equal(t, 2.0, v.X)
	assert.Equal(t, 0.0, v.Y)

	v = vec.FromAngle(math.Pi/2, 1)
	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 1, v.Y, 1e-12)

	v = vec.FromAngle(math.Pi, 3)
	assert.InDelta(t, -3, v.X, 1e-12)
	assert.InDelta(t, 0, v.Y, 1e-12)
}

func TestLen(t *testing.T) {
	assert.Equal(t, 5.0, vec.Vec{X: 3, Y: 4}.Len())
	assert.Equal(t, 0.0, vec.Vec{}.Len())
}

func TestAngle(t *testing.T) {
	assert.Equal(t, 0.0, vec.Vec{X: 1}.Angle())
	assert.InDelta(t, math.Pi/2, vec.Vec{Y: 1}.Angle(), 1e-12)
	assert.InDelta(t, math.Pi, vec.Vec{X: -1}.Angle(), 1e-12)
}

func TestFromAngle_RoundTrip(t *testing.T) {
	for _, angle := range []float64{-3, -1.5, -0.1, 0, 0.7, 1.9, 3.1} {
		v := vec.FromAngle(angle, 2.5)
		assert.InDelta(t, angle, v.Angle(), 1e-12)
		assert.InDelta(t, 2.5, v.Len(), 1e-12)
	}
}
