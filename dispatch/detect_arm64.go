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

import "golang.org/x/sys/cpu"

// archLevel walks the AArch64 ladder from the top down. ASIMD (NEON) is
// mandatory in ARMv8-A, but the flag is still checked: on some OSes the
// feature registers are not readable and x/sys/cpu reports everything
// false, in which case Generic is the only honest answer.
func archLevel() Level {
	switch {
	case cpu.ARM64.HasSVE2:
		return SVE2
	case cpu.ARM64.HasSVE:
		return SVE
	case cpu.ARM64.HasASIMDHP:
		return NEONFP16
	case cpu.ARM64.HasASIMD:
		return NEON
	default:
		return Generic
	}
}
