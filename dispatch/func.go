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
	"sync"
	"sync/atomic"
)

// Func is the binding for one dispatched function: an immutable variant
// table plus a slot that resolves, on the first call, to the best variant
// the host supports. The resolution is guarded by sync.Once, so
// concurrent first calls from any number of goroutines observe exactly
// one selection and the same bound implementation. Once resolved, a
// binding never changes for the lifetime of the process.
//
// Declare one Func per dispatched function identity, as a package-level
// var, and export a plain wrapper that forwards through Get. The wrapper
// may be duplicated freely; the Func var is the single shared binding.
type Func[F any] struct {
	variants []Variant[F]

	once  sync.Once
	bound Variant[F]

	// selections counts how many times the selection algorithm ran.
	// It stays at 1 forever after the first call; tests rely on this.
	selections atomic.Uint32

	// detect is Detected except in tests, which inject fixed levels.
	detect func() Level
}

// New builds the binding for one dispatched function from its variant
// table. Variants must be given in strictly ascending level order and
// there must be at least one; the first is the universal fallback and
// must be runnable on any deployment target. New panics if the table
// violates the contract, since that is a registration bug, not a runtime
// condition.
func New[F any](variants ...Variant[F]) *Func[F] {
	if err := validateTable(variants); err != nil {
		panic(err)
	}
	return &Func[F]{variants: variants, detect: Detected}
}

// Get returns the bound implementation, resolving it on the first call.
// After resolution Get is one Once fast-path check plus a field read, so
// hot loops may also hoist the result into a local.
func (f *Func[F]) Get() F {
	f.once.Do(f.resolve)
	return f.bound.Fn
}

// Level reports the capability level of the bound variant, resolving the
// binding first if needed.
func (f *Func[F]) Level() Level {
	f.once.Do(f.resolve)
	return f.bound.Level
}

// Resolved reports whether the binding has been resolved. It does not
// trigger resolution.
func (f *Func[F]) Resolved() bool {
	return f.selections.Load() != 0
}

func (f *Func[F]) resolve() {
	f.bound = selectVariant(f.variants, f.detect())
	f.selections.Add(1)
}
