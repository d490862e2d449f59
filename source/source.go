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

package source

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mathext/prng"
)

// Source is a stream of uniformly distributed 64-bit words. All samplers
// in this module reduce their draws to Uint64 calls, so the quality of
// every derived value is exactly the quality of the underlying Source.
type Source interface {
	// Uint64 returns a uniformly distributed value from the full 64-bit
	// range and advances the generator state.
	Uint64() uint64
	// Seed resets the generator to a state determined entirely by seed.
	// After two sources of the same kind are seeded with the same value
	// they produce identical streams.
	Seed(seed uint64)
}

// New returns a Mersenne Twister source seeded unpredictably. The seed is
// read from the operating system entropy pool; if that fails the wall
// clock is used instead, so New never returns an error.
func New() Source {
	seed, err := CryptoSeed()
	if err != nil {
		seed = uint64(time.Now().UnixNano())
	}

	return NewSeeded(seed)
}

// NewSeeded returns a Mersenne Twister source in the state determined by
// seed. Two sources created with the same seed produce identical streams.
func NewSeeded(seed uint64) Source {
	src := prng.NewMT19937()
	src.Seed(seed)

	return src
}

// CryptoSeed draws a single 64-bit seed from the operating system entropy
// pool. It is meant for seeding a deterministic Source at a point where
// predictability matters, not as a general random value generator.
func CryptoSeed() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "error while reading system entropy")
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}
