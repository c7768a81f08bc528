package vecsum

import "github.com/ajroetker/go-dispatch/dispatch"

// Variant tables for AArch64. NEON takes the 4-lane kernels; the 8-lane
// shapes pay off again once an SVE tier with wider registers exists.
var (
	sumFunc = dispatch.New(
		dispatch.At(dispatch.Generic, sumKernel(sumScalar)),
		dispatch.At(dispatch.NEON, sumUnroll4),
		dispatch.At(dispatch.SVE, sumUnroll8),
	)

	sum16Func = dispatch.New(
		dispatch.At(dispatch.Generic, sum16Kernel(sum16Scalar)),
		dispatch.At(dispatch.NEON, sum16Unroll4),
		dispatch.At(dispatch.SVE, sum16Tree),
	)

	dotFunc = dispatch.New(
		dispatch.At(dispatch.Generic, dotKernel(dotScalar)),
		dispatch.At(dispatch.NEON, dotUnroll4),
		dispatch.At(dispatch.SVE, dotUnroll8),
	)
)
