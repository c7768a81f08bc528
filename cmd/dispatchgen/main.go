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

// Command dispatchgen generates the registration boilerplate for a
// dispatched function: the variant table and the exported forwarding
// wrapper.
//
// Usage:
//
//	dispatchgen -func sum -sig "func([]float32) float32" -levels generic,sse41,avx2 -pkg vecsum
//
// Or via go:generate:
//
//	//go:generate go run github.com/ajroetker/go-dispatch/cmd/dispatchgen -func sum -sig "func([]float32) float32" -levels generic,sse41,avx2 -pkg vecsum
//
// The generator emits <func>_dispatch.go containing a dispatch.Func table
// referencing one kernel per level, named <func><LevelSuffix> (sumGeneric,
// sumSSE41, sumAVX2, ...), plus an exported wrapper whose name is the
// title-cased function name. The kernels themselves are yours to write;
// the file does not compile until they all exist, which is exactly the
// point: a level listed in the table without an implementation is a
// link-time error, not a silent gap.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	funcName  = flag.String("func", "", "Kernel base name, e.g. sum (required)")
	signature = flag.String("sig", "", "Go signature of the dispatched function, e.g. \"func([]float32) float32\" (required)")
	levels    = flag.String("levels", "generic", "Comma-separated ascending capability levels ("+strings.Join(TargetNames(), ",")+")")
	pkgName   = flag.String("pkg", "", "Output package name (required)")
	outputDir = flag.String("output", ".", "Output directory")
)

func main() {
	flag.Parse()

	if *funcName == "" || *signature == "" || *pkgName == "" {
		fmt.Fprintf(os.Stderr, "Error: -func, -sig, and -pkg are required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	ladder, err := ParseLadder(*levels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, err := Generate(Spec{
		Func:    *funcName,
		Sig:     *signature,
		Package: *pkgName,
		Ladder:  ladder,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(*outputDir, *funcName+"_dispatch.go")
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s\n", outPath)
}
