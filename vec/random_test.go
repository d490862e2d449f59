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
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/xlab-si/gorand/sample"
	"github.com/xlab-si/gorand/source"
	"github.com/xlab-si/gorand/vec"
)

// chiSquareUniform checks that the observed cell counts are consistent
// with a uniform distribution, at the 0.999 quantile of the chi-squared
// distribution with len(obs)-1 degrees of freedom.
func chiSquareUniform(t *testing.T, obs []float64, draws int) {
	t.Helper()

	exp := make([]float64, len(obs))
	for i := range exp {
		exp[i] = float64(draws) / float64(len(obs))
	}

	limit := distuv.ChiSquared{K: float64(len(obs) - 1)}.Quantile(0.999)
	assert.True(t, stat.ChiSquare(obs, exp) < limit,
		"observed frequencies are too far from uniform")
}

func TestInBox(t *testing.T) {
	s := source.NewSeeded(197)

	const draws = 60000
	xs := make([]float64, draws)
	ys := make([]float64, draws)
	xCells := make([]float64, 8)
	yCells := make([]float64, 8)
	for i := 0; i < draws; i++ {
		v := vec.InBox(s, -1, -1, 1, 1)
		assert.True(t, v.X >= -1 && v.X <= 1, "X outside the box")
		assert.True(t, v.Y >= -1 && v.Y <= 1, "Y outside the box")
		xs[i] = v.X
		ys[i] = v.Y

		xCells[cellIndex(v.X, -1, 1, 8)]++
		yCells[cellIndex(v.Y, -1, 1, 8)]++
	}

	// each coordinate should be uniform over its side on its own
	chiSquareUniform(t, xCells, draws)
	chiSquareUniform(t, yCells, draws)

	// and the two coordinates should not be correlated
	r := stat.Correlation(xs, ys, nil)
	assert.True(t, math.Abs(r) < 0.02, "box coordinates look correlated")
}

// cellIndex buckets v from [min, max] into n equally wide cells.
func cellIndex(v, min, max float64, n int) int {
	i := int((v - min) / (max - min) * float64(n))
	if i == n {
		i = n - 1
	}
	return i
}

func TestInSymmetricBox(t *testing.T) {
	s1 := source.NewSeeded(199)
	s2 := source.NewSeeded(199)

	for i := 0; i < 10000; i++ {
		v := vec.InSymmetricBox(s1, 2, 3)
		assert.True(t, v.X >= -2 && v.X <= 2)
		assert.True(t, v.Y >= -3 && v.Y <= 3)
		assert.Equal(t, vec.InBox(s2, -2, -3, 2, 3), v,
			"the symmetric box should mirror its bounds around zero")
	}
}

func TestByMagnitude(t *testing.T) {
	s := source.NewSeeded(211)

	const draws = 60000
	magCells := make([]float64, 8)
	angleCells := make([]float64, 8)
	for i := 0; i < draws; i++ {
		v := vec.ByMagnitude(s, 0, 1)

		m := v.Len()
		assert.True(t, m >= 0 && m <= 1+1e-12, "magnitude outside its bounds")
		magCells[cellIndex(m, 0, 1, 8)]++

		// Angle reports (-π, π]; fold the negative half up
		a := v.Angle()
		if a < 0 {
			a += 2 * math.Pi
		}
		angleCells[cellIndex(a, 0, 2*math.Pi, 8)]++
	}

	chiSquareUniform(t, magCells, draws)
	chiSquareUniform(t, angleCells, draws)
}

func TestByMagnitude_NotAreaUniform(t *testing.T) {
	s := source.NewSeeded(223)

	// Magnitudes are uniform along the radius, so half of the samples
	// land inside half the radius. An area-uniform draw over the disk
	// puts only a quarter of its samples there; sqrt-scaled magnitudes
	// reproduce that for comparison.
	const draws = 60000
	inner := 0
	innerSqrt := 0
	for i := 0; i < draws; i++ {
		if vec.ByMagnitude(s, 0, 1).Len() < 0.5 {
			inner++
		}
		if math.Sqrt(sample.Float64(s)) < 0.5 {
			innerSqrt++
		}
	}

	frac := float64(inner) / draws
	fracSqrt := float64(innerSqrt) / draws
	assert.True(t, frac > 0.47 && frac < 0.53,
		"radius-uniform samples should put about half their mass inside half the radius")
	assert.True(t, fracSqrt > 0.22 && fracSqrt < 0.28,
		"area-uniform samples should put about a quarter of their mass inside half the radius")
	assert.True(t, frac-fracSqrt > 0.15,
		"the radial density bias of the magnitude sampler should be visible")
}

func TestByMagnitude_Ring(t *testing.T) {
	s := source.NewSeeded(227)

	for i := 0; i < 10000; i++ {
		m := vec.ByMagnitude(s, 2, 5).Len()
		assert.True(t, m >= 2-1e-9 && m <= 5+1e-9)
	}
}

func TestByMagnitude_Determinism(t *testing.T) {
	v1 := vec.ByMagnitude(source.NewSeeded(229), 0, 1)
	v2 := vec.ByMagnitude(source.NewSeeded(229), 0, 1)
	assert.Equal(t, v1, v2)
}
