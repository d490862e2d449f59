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

package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/xlab-si/gorand/dist"
	"github.com/xlab-si/gorand/source"
)

func TestExponential(t *testing.T) {
	s := source.NewSeeded(269)

	vals := dist.Slice(s, dist.Exponential{Rate: 2}, 10000)

	for _, v := range vals {
		assert.True(t, v >= 0, "exponential draws cannot be negative")
	}

	// me should be around 1/2 and v around 1/4
	me := stat.Mean(vals, nil)
	v := stat.Variance(vals, nil)
	assert.True(t, me > 0.45 && me < 0.55, "mean value is away from 1/Rate")
	assert.True(t, v > 0.2 && v < 0.3, "variance is away from 1/Rate squared")
}

func TestBernoulli(t *testing.T) {
	s := source.NewSeeded(271)

	ones := 0
	for i := 0; i < 10000; i++ {
		v := dist.Bernoulli{P: 0.25}.Sample(s)
		assert.True(t, v == 0 || v == 1, "a Bernoulli draw can only be 0 or 1")
		if v == 1 {
			ones++
		}
	}

	assert.True(t, ones > 2200, "frequency of ones is too small")
	assert.True(t, ones < 2800, "frequency of ones is too big")
}

func TestPoisson(t *testing.T) {
	s := source.NewSeeded(277)

	vals := dist.Slice(s, dist.Poisson{Lambda: 4}, 10000)

	for _, v := range vals {
		assert.True(t, v >= 0 && v == float64(int(v)),
			"a Poisson draw should be a whole non-negative number")
	}

	// both me and v should be around Lambda
	me := stat.Mean(vals, nil)
	v := stat.Variance(vals, nil)
	assert.True(t, me > 3.8 && me < 4.2, "mean value is away from Lambda")
	assert.True(t, v > 3.5 && v < 4.5, "variance is away from Lambda")
}

func TestPoisson_ZeroLambda(t *testing.T) {
	s := source.NewSeeded(1)

	for i := 0; i < 100; i++ {
		assert.Zero(t, dist.Poisson{}.Sample(s))
	}
}

func TestFill(t *testing.T) {
	out := make([]float64, 50)
	dist.Fill(source.NewSeeded(281), dist.Exponential{Rate: 1}, out)

	want := dist.Slice(source.NewSeeded(281), dist.Exponential{Rate: 1}, 50)
	assert.Equal(t, want, out, "Fill and Slice should draw identically")
}

func TestSlice_Empty(t *testing.T) {
	s := source.NewSeeded(1)

	assert.Empty(t, dist.Slice(s, dist.Normal{Sigma: 1}, 0))
	assert.Empty(t, dist.Slice(s, dist.Normal{Sigma: 1}, -3))
}
