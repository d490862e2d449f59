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
	"math/big"

	"github.com/pkg/errors"

	"github.com/xlab-si/gorand/source"
)

// ErrEmptyInterval is returned by the big integer samplers when
// max <= min leaves nothing to draw from.
var ErrEmptyInterval = errors.New("empty interval [min, max)")

// BigIntRange returns a uniformly distributed integer from [min, max).
// Candidates of the interval's bit length are drawn and rejected until
// one falls inside, so no value is favored. Unlike the scalar samplers
// this one can fail: an empty interval has no value to fall back to and
// is reported as an error.
func BigIntRange(s source.Source, min, max *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(max, min)
	if span.Sign() <= 0 {
		return nil, errors.Wrap(ErrEmptyInterval, "error while sampling")
	}

	bitLen := span.BitLen()
	byteLen := (bitLen + 7) / 8
	// spare bits in the leading byte are cleared so that candidates stay
	// within one bit length of the span, keeping rejection cheap
	shift := uint(byteLen*8 - bitLen)
	buf := make([]byte, byteLen)

	v := new(big.Int)
	for {
		Bytes(s, buf)
		buf[0] >>= shift
		v.SetBytes(buf)
		if v.Cmp(span) < 0 {
			break
		}
	}

	return v.Add(v, min), nil
}

// BigInt returns a uniformly distributed integer from [0, max).
func BigInt(s source.Source, max *big.Int) (*big.Int, error) {
	return BigIntRange(s, big.NewInt(0), max)
}
