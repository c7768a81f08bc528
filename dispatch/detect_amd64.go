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

import "github.com/klauspost/cpuid/v2"

// archLevel walks the x86-64 ladder from the top down and returns the
// highest tier the processor fully supports. AVX512VL additionally
// requires the BW and DQ subsets because that is what 512-bit kernels
// built for that tier assume.
func archLevel() Level {
	c := cpuid.CPU
	switch {
	case c.Supports(cpuid.AVX512F, cpuid.AVX512VL, cpuid.AVX512BW, cpuid.AVX512DQ):
		return AVX512VL
	case c.Supports(cpuid.AVX512F):
		return AVX512F
	case c.Supports(cpuid.AVX2):
		return AVX2
	case c.Supports(cpuid.AVX):
		return AVX
	case c.Supports(cpuid.SSE42):
		return SSE42
	case c.Supports(cpuid.SSE4):
		return SSE41
	case c.Supports(cpuid.SSSE3):
		return SSSE3
	case c.Supports(cpuid.SSE3):
		return SSE3
	case c.Supports(cpuid.SSE2):
		return SSE2
	case c.Supports(cpuid.SSE):
		return SSE
	default:
		return Generic
	}
}
