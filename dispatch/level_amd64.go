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

// The x86-64 capability ladder. The numeric values are stable and part of
// the registration contract: a variant tagged SSE41 requires SSE4.1 and
// everything below it, never anything above.
const (
	// SSE indicates the original Streaming SIMD Extensions.
	SSE Level = 1

	// SSE2 indicates SSE2, the amd64 baseline. Every amd64 processor
	// supports it, but Generic remains the universal fallback tier.
	SSE2 Level = 2

	// SSE3 indicates SSE3.
	SSE3 Level = 3

	// SSSE3 indicates Supplemental SSE3.
	SSSE3 Level = 4

	// SSE41 indicates SSE4.1.
	SSE41 Level = 5

	// SSE42 indicates SSE4.2.
	SSE42 Level = 6

	// AVX indicates Advanced Vector Extensions (256-bit float SIMD).
	AVX Level = 7

	// AVX2 indicates AVX2 (256-bit integer SIMD and FMA-era cores).
	AVX2 Level = 8

	// AVX512F indicates the AVX-512 Foundation subset only.
	AVX512F Level = 9

	// AVX512VL indicates AVX-512 with the VL, BW, and DQ subsets, the
	// tier most 512-bit kernels actually require.
	AVX512VL Level = 10
)

var levelNames = map[Level]string{
	Generic:  "generic",
	SSE:      "sse",
	SSE2:     "sse2",
	SSE3:     "sse3",
	SSSE3:    "ssse3",
	SSE41:    "sse41",
	SSE42:    "sse42",
	AVX:      "avx",
	AVX2:     "avx2",
	AVX512F:  "avx512f",
	AVX512VL: "avx512vl",
}

var levelOrder = []Level{
	Generic, SSE, SSE2, SSE3, SSSE3, SSE41, SSE42, AVX, AVX2, AVX512F, AVX512VL,
}
