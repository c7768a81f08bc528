// Copyright 2026 go-dispatch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dispatch selects, at runtime, the best implementation of a
// function among several variants compiled (or written) for different CPU
// instruction-set capability levels.
//
// A dispatched function declares one variant per capability level it was
// built for, in ascending order. On the first call the package probes the
// host CPU once, binds the highest variant the processor supports, and
// forwards every later call straight through the binding with no further
// detection or selection.
//
// Basic usage:
//
//	var sumFunc = dispatch.New(
//		dispatch.At(dispatch.Generic, sumGeneric),
//		dispatch.At(dispatch.SSE41, sumSSE41),
//		dispatch.At(dispatch.AVX2, sumAVX2),
//	)
//
//	// Exported wrapper; safe to call from anywhere, any number of times.
//	func Sum(x []float32) float32 { return sumFunc.Get()(x) }
//
// If the host supports none of the declared levels, the lowest variant is
// bound anyway: selection is total, and it is the baseline variant's job
// to report ErrUnsupportedProcessor if it genuinely cannot run.
package dispatch
