package vecsum

// Kernel signatures shared by every variant table.
type (
	sumKernel   = func([]float32) float32
	sum16Kernel = func(*[16]float32) float32
	dotKernel   = func(a, b []float32) float32
)

func sumScalar(x []float32) float32 {
	var acc float32
	for _, v := range x {
		acc += v
	}
	return acc
}

// sumUnroll4 accumulates into four independent chains, the shape a
// 128-bit 4-lane kernel reduces to.
func sumUnroll4(x []float32) float32 {
	var a0, a1, a2, a3 float32
	i := 0
	for ; i+4 <= len(x); i += 4 {
		a0 += x[i]
		a1 += x[i+1]
		a2 += x[i+2]
		a3 += x[i+3]
	}
	acc := (a0 + a1) + (a2 + a3)
	for ; i < len(x); i++ {
		acc += x[i]
	}
	return acc
}

// sumUnroll8 is the 256-bit 8-lane shape.
func sumUnroll8(x []float32) float32 {
	var a0, a1, a2, a3, a4, a5, a6, a7 float32
	i := 0
	for ; i+8 <= len(x); i += 8 {
		a0 += x[i]
		a1 += x[i+1]
		a2 += x[i+2]
		a3 += x[i+3]
		a4 += x[i+4]
		a5 += x[i+5]
		a6 += x[i+6]
		a7 += x[i+7]
	}
	acc := ((a0 + a1) + (a2 + a3)) + ((a4 + a5) + (a6 + a7))
	for ; i < len(x); i++ {
		acc += x[i]
	}
	return acc
}

func sum16Scalar(x *[16]float32) float32 {
	var acc float32
	for _, v := range x {
		acc += v
	}
	return acc
}

func sum16Unroll4(x *[16]float32) float32 {
	return sumUnroll4(x[:])
}

func sum16Unroll8(x *[16]float32) float32 {
	return sumUnroll8(x[:])
}

// sum16Tree is the horizontal-add tree of a single 16-lane vector.
func sum16Tree(x *[16]float32) float32 {
	var t [8]float32
	for i := range t {
		t[i] = x[i] + x[i+8]
	}
	s01 := (t[0] + t[4]) + (t[2] + t[6])
	s23 := (t[1] + t[5]) + (t[3] + t[7])
	return s01 + s23
}

func dotScalar(a, b []float32) float32 {
	n := min(len(a), len(b))
	var acc float32
	for i := 0; i < n; i++ {
		acc += a[i] * b[i]
	}
	return acc
}

func dotUnroll4(a, b []float32) float32 {
	n := min(len(a), len(b))
	var a0, a1, a2, a3 float32
	i := 0
	for ; i+4 <= n; i += 4 {
		a0 += a[i] * b[i]
		a1 += a[i+1] * b[i+1]
		a2 += a[i+2] * b[i+2]
		a3 += a[i+3] * b[i+3]
	}
	acc := (a0 + a1) + (a2 + a3)
	for ; i < n; i++ {
		acc += a[i] * b[i]
	}
	return acc
}

func dotUnroll8(a, b []float32) float32 {
	n := min(len(a), len(b))
	var a0, a1, a2, a3, a4, a5, a6, a7 float32
	i := 0
	for ; i+8 <= n; i += 8 {
		a0 += a[i] * b[i]
		a1 += a[i+1] * b[i+1]
		a2 += a[i+2] * b[i+2]
		a3 += a[i+3] * b[i+3]
		a4 += a[i+4] * b[i+4]
		a5 += a[i+5] * b[i+5]
		a6 += a[i+6] * b[i+6]
		a7 += a[i+7] * b[i+7]
	}
	acc := ((a0 + a1) + (a2 + a3)) + ((a4 + a5) + (a6 + a7))
	for ; i < n; i++ {
		acc += a[i] * b[i]
	}
	return acc
}
