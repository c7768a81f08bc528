//go:build !amd64 && !arm64

package vecsum

import "github.com/ajroetker/go-dispatch/dispatch"

// Generic variants only.
var (
	sumFunc   = dispatch.New(dispatch.At(dispatch.Generic, sumKernel(sumScalar)))
	sum16Func = dispatch.New(dispatch.At(dispatch.Generic, sum16Kernel(sum16Scalar)))
	dotFunc   = dispatch.New(dispatch.At(dispatch.Generic, dotKernel(dotScalar)))
)
