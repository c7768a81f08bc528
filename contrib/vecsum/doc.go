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

// Package vecsum provides float32 summation and dot-product kernels
// dispatched over CPU capability levels.
//
// It is the worked example for the dispatch package: each operation ships
// several pure-Go kernels whose unrolling matches what the corresponding
// instruction-set tier would execute, registered in per-architecture
// variant tables. The first call of each operation binds the best kernel
// for the host; later calls go straight through the binding.
package vecsum
