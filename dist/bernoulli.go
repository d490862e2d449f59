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

package dist

import (
	"github.com/xlab-si/gorand/sample"
	"github.com/xlab-si/gorand/source"
)

// Bernoulli samples 1 with probability P and 0 otherwise. P at or
// below 0 never yields 1, P at or above 1 always does.
type Bernoulli struct {
	P float64
}

func (b Bernoulli) Sample(s source.Source) float64 {
	if sample.BoolP(s, b.P) {
		return 1
	}

	return 0
}
