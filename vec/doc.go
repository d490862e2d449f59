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

// Package vec includes samplers for drawing random two-dimensional
// vectors.
//
// Package vec provides a minimal vector type together with samplers
// over boxes and rings. The box samplers draw each coordinate
// independently and are uniform over the covered area; the magnitude
// sampler draws an angle and a radius instead, which gives uniform
// magnitudes but, deliberately, not a uniform density over the area.
package vec
