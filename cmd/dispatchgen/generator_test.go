package main

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLadder(t *testing.T, s string) []Target {
	t.Helper()
	ladder, err := ParseLadder(s)
	require.NoError(t, err)
	return ladder
}

func TestGenerate(t *testing.T) {
	src, err := Generate(Spec{
		Func:    "sum",
		Sig:     "func([]float32) float32",
		Package: "vecsum",
		Ladder:  mustLadder(t, "generic,sse41,avx2"),
	})
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "package vecsum")
	assert.Contains(t, out, "func Sum(x0 []float32) float32 {")
	assert.Contains(t, out, "return sumFunc.Get()(x0)")
	assert.Contains(t, out, "var sumFunc = dispatch.New(")
	assert.Contains(t, out, "dispatch.At(dispatch.Generic, sumGeneric),")
	assert.Contains(t, out, "dispatch.At(dispatch.SSE41, sumSSE41),")
	assert.Contains(t, out, "dispatch.At(dispatch.AVX2, sumAVX2),")

	// The output must be valid Go.
	_, err = parser.ParseFile(token.NewFileSet(), "sum_dispatch.go", src, 0)
	require.NoError(t, err)
}

func TestGenerateMultiParamMultiResult(t *testing.T) {
	src, err := Generate(Spec{
		Func:    "scale",
		Sig:     "func(dst, src []float32, factor float32) (int, error)",
		Package: "kernels",
		Ladder:  mustLadder(t, "generic,neon"),
	})
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "func Scale(x0 []float32, x1 []float32, x2 float32) (int, error) {")
	assert.Contains(t, out, "return scaleFunc.Get()(x0, x1, x2)")
	assert.Contains(t, out, "dispatch.At(dispatch.NEON, scaleNEON),")
}

func TestGenerateVoidAndVariadic(t *testing.T) {
	src, err := Generate(Spec{
		Func:    "fill",
		Sig:     "func([]byte, ...byte)",
		Package: "kernels",
		Ladder:  mustLadder(t, "generic"),
	})
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "func Fill(x0 []byte, x1 ...byte) {")
	assert.Contains(t, out, "fillFunc.Get()(x0, x1...)")
	assert.NotContains(t, out, "return fillFunc")
}

func TestGenerateBadSignature(t *testing.T) {
	_, err := Generate(Spec{
		Func:    "sum",
		Sig:     "[]float32",
		Package: "p",
		Ladder:  mustLadder(t, "generic"),
	})
	require.Error(t, err)

	_, err = Generate(Spec{
		Func:    "sum",
		Sig:     "func(",
		Package: "p",
		Ladder:  mustLadder(t, "generic"),
	})
	require.Error(t, err)
}

func TestParseLadder(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"single", "generic", ""},
		{"x86 ladder", "generic,sse2,avx2,avx512vl", ""},
		{"arm ladder", "generic,neon,sve2", ""},
		{"case and spaces", " Generic , AVX2 ", ""},
		{"empty", "", "no levels"},
		{"unknown", "generic,mmx", "unknown level"},
		{"not ascending", "avx2,sse2", "strictly ascending"},
		{"duplicate", "avx2,avx2", "strictly ascending"},
		{"mixed families", "sse2,neon", "mixes architecture families"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLadder(tt.in)
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
