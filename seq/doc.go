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

// Package seq includes shuffling and random selection over ordered
// collections.
//
// Package seq provides an unbiased Fisher-Yates shuffle written once
// against a minimal swap capability, together with thin adapters for
// slices and for sort.Interface style collections, and selection of a
// fixed number of elements from a population with or without repetition.
//
// Shuffling rearranges the caller's collection in place. Selection never
// does: it works on a clone, so the returned sequence shares no storage
// with the input.
package seq
