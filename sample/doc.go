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

// Package sample includes samplers for drawing uniform random values
// of different scalar types from a raw generator.
//
// Package sample provides free functions that map raw draws from a
// source.Source into bounded values: integers, floats, bytes, durations,
// angles and big integers. Bounded integers are drawn without modulo
// bias, and bounded floats follow the linear formula
// u*(max-min)+min with its documented edge behavior.
//
// The functions here are the index generators for the shuffling and
// selection algorithms in the seq package and the building blocks for
// the derived samplers in the vec and dist packages.
package sample
