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

// Package main provides a diagnostic tool to print the detected capability
// level and the CPU features behind it.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-dispatch/dispatch"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("CPU: %s\n", cpuid.CPU.BrandName)
	fmt.Println()

	fmt.Printf("Detected level: %s (%d)\n", dispatch.Detected(), dispatch.Detected())
	fmt.Printf("Capability ladder:")
	for _, l := range dispatch.Levels() {
		fmt.Printf(" %s", l)
	}
	fmt.Println()
	fmt.Println()

	switch runtime.GOARCH {
	case "amd64":
		printAMD64Features()
	case "arm64":
		printARM64Features()
	}

	fmt.Println()
	printOverrides()
}

func printAMD64Features() {
	fmt.Println("=== github.com/klauspost/cpuid/v2 ===")
	features := []struct {
		name string
		id   cpuid.FeatureID
	}{
		{"SSE", cpuid.SSE},
		{"SSE2", cpuid.SSE2},
		{"SSE3", cpuid.SSE3},
		{"SSSE3", cpuid.SSSE3},
		{"SSE4.1", cpuid.SSE4},
		{"SSE4.2", cpuid.SSE42},
		{"AVX", cpuid.AVX},
		{"AVX2", cpuid.AVX2},
		{"FMA3", cpuid.FMA3},
		{"AVX512F", cpuid.AVX512F},
		{"AVX512VL", cpuid.AVX512VL},
		{"AVX512BW", cpuid.AVX512BW},
		{"AVX512DQ", cpuid.AVX512DQ},
	}
	for _, f := range features {
		fmt.Printf("  %-10s %v\n", f.name+":", cpuid.CPU.Supports(f.id))
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFPHP:    %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasASIMDHP: %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:     %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:    %v (SVE2, ARMv9-A)\n", cpu.ARM64.HasSVE2)
}

func printOverrides() {
	fmt.Println("=== environment overrides ===")
	for _, key := range []string{"DISPATCH_NO_SIMD", "DISPATCH_MAX_LEVEL"} {
		if val, ok := os.LookupEnv(key); ok {
			fmt.Printf("  %s=%q\n", key, val)
		} else {
			fmt.Printf("  %s unset\n", key)
		}
	}
}
