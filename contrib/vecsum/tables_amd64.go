package vecsum

import "github.com/ajroetker/go-dispatch/dispatch"

// Variant tables for x86-64, ascending by level. SSE2 is the amd64
// deployment baseline, so the sum16 table starts there; its lowest kernel
// is still pure Go, so the fallback rule keeps it runnable even when
// detection is forced below SSE2 via DISPATCH_NO_SIMD.
var (
	sumFunc = dispatch.New(
		dispatch.At(dispatch.Generic, sumKernel(sumScalar)),
		dispatch.At(dispatch.SSE41, sumUnroll4),
		dispatch.At(dispatch.AVX2, sumUnroll8),
	)

	sum16Func = dispatch.New(
		dispatch.At(dispatch.SSE2, sum16Kernel(sum16Scalar)),
		dispatch.At(dispatch.SSE41, sum16Unroll4),
		dispatch.At(dispatch.AVX2, sum16Unroll8),
		dispatch.At(dispatch.AVX512VL, sum16Tree),
	)

	dotFunc = dispatch.New(
		dispatch.At(dispatch.Generic, dotKernel(dotScalar)),
		dispatch.At(dispatch.SSE41, dotUnroll4),
		dispatch.At(dispatch.AVX2, dotUnroll8),
	)
)
