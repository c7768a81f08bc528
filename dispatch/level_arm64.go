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

package dispatch

// The AArch64 capability ladder. NEON (ASIMD) is part of the ARMv8-A base
// architecture, so it is the effective hardware baseline; Generic remains
// below it for pure-Go variants.
const (
	// NEON indicates ARM Advanced SIMD (128-bit vectors).
	NEON Level = 1

	// NEONFP16 indicates NEON with half-precision arithmetic
	// (ARMv8.2-A FEAT_FP16).
	NEONFP16 Level = 2

	// SVE indicates the Scalable Vector Extension.
	SVE Level = 3

	// SVE2 indicates SVE2 (ARMv9-A).
	SVE2 Level = 4
)

var levelNames = map[Level]string{
	Generic:  "generic",
	NEON:     "neon",
	NEONFP16: "neonfp16",
	SVE:      "sve",
	SVE2:     "sve2",
}

var levelOrder = []Level{Generic, NEON, NEONFP16, SVE, SVE2}
