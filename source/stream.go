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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
	"gonum.org/v1/gonum/mathext/prng"
)

// streamBlock is the number of keystream bytes produced per cipher call.
const streamBlock = 64

var zeroBlock [streamBlock]byte

// Stream is a deterministic Source reading the Salsa20 keystream under a
// fixed 32-byte key. The stream depends only on the key, never on the
// platform or the runtime, which makes Stream the source of choice when
// draws must be reproducible bit for bit, e.g. in tests and replays.
//
// Stream is not safe for concurrent use; wrap it with Locked when shared.
type Stream struct {
	key   [32]byte
	block uint64
	buf   [streamBlock]byte
	off   int
}

// NewStream returns a Stream reading the keystream under the given key.
func NewStream(key *[32]byte) *Stream {
	s := &Stream{
		key: *key,
		off: streamBlock,
	}

	return s
}

// NewStreamSeeded returns a Stream whose key is expanded from seed.
// It is shorthand for new(Stream) followed by Seed(seed).
func NewStreamSeeded(seed uint64) *Stream {
	s := new(Stream)
	s.Seed(seed)

	return s
}

// Seed derives a fresh 32-byte key from seed and rewinds the stream to
// its beginning. The key is expanded from the single seed word with a
// Mersenne Twister, so distinct seeds give unrelated keystreams.
func (s *Stream) Seed(seed uint64) {
	exp := prng.NewMT19937()
	exp.Seed(seed)
	for i := 0; i < len(s.key); i += 8 {
		binary.LittleEndian.PutUint64(s.key[i:], exp.Uint64())
	}

	s.block = 0
	s.off = streamBlock
}

// Uint64 returns the next 8 keystream bytes as a little-endian word.
func (s *Stream) Uint64() uint64 {
	if s.off == streamBlock {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8

	return v
}

// refill encrypts a block of zeros with the next block counter, leaving
// the raw keystream in s.buf.
func (s *Stream) refill() {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.block)
	s.block++

	salsa20.XORKeyStream(s.buf[:], zeroBlock[:], nonce[:], &s.key)
	s.off = 0
}
