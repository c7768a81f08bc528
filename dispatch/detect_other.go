//go:build !amd64 && !arm64

package dispatch

// Other architectures fall back to the Generic tier for now.
func archLevel() Level {
	return Generic
}
