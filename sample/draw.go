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
	"encoding/binary"

	"github.com/xlab-si/gorand/source"
)

// Float64 returns a uniformly distributed value from [0, 1). It keeps
// the top 53 bits of a single draw, so every returned value is an exact
// multiple of 2^-53 and 1 is never reached.
func Float64(s source.Source) float64 {
	return float64(s.Uint64()>>11) * 0x1.0p-53
}

// Uint32 returns a uniformly distributed 32-bit value, taken from the
// high half of a single draw.
func Uint32(s source.Source) uint32 {
	return uint32(s.Uint64() >> 32)
}

// Bytes fills p with independent uniform bytes, consuming one draw per
// eight bytes. No correlation structure exists between the bytes.
func Bytes(s source.Source, p []byte) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, s.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], s.Uint64())
		copy(p, tail[:])
	}
}
