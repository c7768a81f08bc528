package vecsum

import "github.com/ajroetker/go-dispatch/dispatch"

// Sum returns the sum of all elements of x. Returns 0 for an empty slice.
//
// Accumulation order depends on the kernel bound for this host, so the
// result may differ from a sequential sum in the last bits, as with any
// vectorized reduction.
func Sum(x []float32) float32 {
	return sumFunc.Get()(x)
}

// Sum16 returns the sum of a fixed block of 16 floats. This is the
// fixed-size shape a single wide vector register holds.
func Sum16(x *[16]float32) float32 {
	return sum16Func.Get()(x)
}

// Dot returns the dot product of a and b. If the slices have different
// lengths, the computation uses the minimum length. Returns 0 if either
// slice is empty.
func Dot(a, b []float32) float32 {
	return dotFunc.Get()(a, b)
}

// SumLevel reports which capability tier the Sum kernel is bound to,
// resolving the binding if this is the first touch.
func SumLevel() dispatch.Level {
	return sumFunc.Level()
}
