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

import "fmt"

// Variant pairs one implementation of a function with the minimum
// capability level it requires. F is the function's signature type, e.g.
// func([]float32) float32.
type Variant[F any] struct {
	// Level is the lowest capability tier this implementation runs on.
	Level Level

	// Fn is the implementation itself. Must not be nil.
	Fn F
}

// At builds a Variant without spelling out the signature type at every
// registration site.
func At[F any](level Level, fn F) Variant[F] {
	return Variant[F]{Level: level, Fn: fn}
}

// validateTable checks the registration contract: at least one variant,
// levels strictly ascending. A violation is a programming error in the
// table declaration, so callers panic rather than return it.
func validateTable[F any](variants []Variant[F]) error {
	if len(variants) == 0 {
		return fmt.Errorf("dispatch: empty variant table")
	}
	for i := 1; i < len(variants); i++ {
		if variants[i].Level <= variants[i-1].Level {
			return fmt.Errorf("dispatch: variant table not strictly ascending: %s at index %d after %s",
				variants[i].Level, i, variants[i-1].Level)
		}
	}
	return nil
}

// selectVariant returns the highest variant whose level the detected
// level covers, or the lowest variant when none qualifies. The table is
// ascending, so the scan runs from the last entry toward the first and
// stops at the first match.
//
// Falling back to the lowest entry instead of failing is deliberate:
// selection is total and always yields something callable. Whether the
// host can truly run the baseline is only observable when the baseline
// executes, and reporting that is the baseline's job (see Require).
func selectVariant[F any](variants []Variant[F], detected Level) Variant[F] {
	for i := len(variants) - 1; i > 0; i-- {
		if variants[i].Level <= detected {
			return variants[i]
		}
	}
	return variants[0]
}
