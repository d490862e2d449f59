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

// Package dist includes samplers for drawing random values from
// non-uniform probability distributions.
//
// Package dist provides the Sampler interface along with
// implementations for the normal, exponential, Bernoulli and Poisson
// distributions, and a discrete distribution over arbitrary weights.
// Every sampler is a pure transform of uniform draws taken from the
// source it is handed, so a seeded source reproduces identical values.
//
// Implementations of the Sampler interface can be used, for instance,
// to fill slices with the desired random data through Fill and Slice.
package dist
