//go:build !amd64 && !arm64

package dispatch

// Architectures without a wired capability ladder run everything at the
// Generic tier. Future ladders: wasm SIMD128, riscv64 vector extension.

var levelNames = map[Level]string{
	Generic: "generic",
}

var levelOrder = []Level{Generic}
