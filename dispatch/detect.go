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

import (
	"os"
	"strconv"
)

// detectedLevel is the capability level of the running processor, probed
// exactly once at package init and immutable afterwards. Every Func in
// the process resolves against this value.
var detectedLevel = clampLevel(archLevel())

// Detected returns the capability level of the running processor, after
// any environment overrides. The result never changes for the lifetime of
// the process.
func Detected() Level {
	return detectedLevel
}

// clampLevel applies the environment overrides to the probed level.
// Overrides can only lower the level, never raise it: claiming a
// capability the hardware lacks would defeat the whole point.
func clampLevel(l Level) Level {
	if NoSimdEnv() {
		return Generic
	}
	if s := os.Getenv("DISPATCH_MAX_LEVEL"); s != "" {
		if max, ok := ParseLevel(s); ok && max < l {
			return max
		}
	}
	return l
}

// NoSimdEnv checks if the DISPATCH_NO_SIMD environment variable is set.
// When set, detection reports Generic regardless of CPU capabilities, so
// every dispatched function binds its universal fallback. This is useful
// for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("DISPATCH_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
