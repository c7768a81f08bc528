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

package main

import (
	"fmt"
	"strings"
)

// Target is one capability level the generator knows how to register.
// Ident is the dispatch package constant, Suffix the kernel-name suffix.
type Target struct {
	Name   string
	Ident  string
	Suffix string
	Family string // "any", "x86", or "arm"
	Rank   int
}

// The ladders mirror dispatch/level_{amd64,arm64}.go. Ranks only order
// levels within one family; ParseLadder rejects mixed families because a
// single variant table is always built for one architecture.
var targets = []Target{
	{"generic", "Generic", "Generic", "any", 0},
	{"sse", "SSE", "SSE", "x86", 1},
	{"sse2", "SSE2", "SSE2", "x86", 2},
	{"sse3", "SSE3", "SSE3", "x86", 3},
	{"ssse3", "SSSE3", "SSSE3", "x86", 4},
	{"sse41", "SSE41", "SSE41", "x86", 5},
	{"sse42", "SSE42", "SSE42", "x86", 6},
	{"avx", "AVX", "AVX", "x86", 7},
	{"avx2", "AVX2", "AVX2", "x86", 8},
	{"avx512f", "AVX512F", "AVX512F", "x86", 9},
	{"avx512vl", "AVX512VL", "AVX512VL", "x86", 10},
	{"neon", "NEON", "NEON", "arm", 1},
	{"neonfp16", "NEONFP16", "NEONFP16", "arm", 2},
	{"sve", "SVE", "SVE", "arm", 3},
	{"sve2", "SVE2", "SVE2", "arm", 4},
}

// TargetNames returns every level name the generator accepts.
func TargetNames() []string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}
	return names
}

func lookupTarget(name string) (Target, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// ParseLadder parses a comma-separated level list and checks the variant
// table contract: non-empty, strictly ascending, one architecture family.
func ParseLadder(s string) ([]Target, error) {
	parts := strings.Split(s, ",")
	ladder := make([]Target, 0, len(parts))
	family := ""
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		t, ok := lookupTarget(p)
		if !ok {
			return nil, fmt.Errorf("unknown level %q (known: %s)", p, strings.Join(TargetNames(), ","))
		}
		if t.Family != "any" {
			if family == "" {
				family = t.Family
			} else if family != t.Family {
				return nil, fmt.Errorf("level %q mixes architecture families in one table", t.Name)
			}
		}
		if len(ladder) > 0 && t.Rank <= ladder[len(ladder)-1].Rank {
			return nil, fmt.Errorf("levels must be strictly ascending: %q after %q", t.Name, ladder[len(ladder)-1].Name)
		}
		ladder = append(ladder, t)
	}
	if len(ladder) == 0 {
		return nil, fmt.Errorf("no levels given")
	}
	return ladder, nil
}
