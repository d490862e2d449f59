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

import "sync"

// Locked wraps src so that every draw and every reseed holds a mutex,
// making the wrapped source safe to share between goroutines.
func Locked(src Source) Source {
	return &locked{src: src}
}

type locked struct {
	mu  sync.Mutex
	src Source
}

func (l *locked) Uint64() uint64 {
	l.mu.Lock()
	v := l.src.Uint64()
	l.mu.Unlock()

	return v
}

func (l *locked) Seed(seed uint64) {
	l.mu.Lock()
	l.src.Seed(seed)
	l.mu.Unlock()
}
