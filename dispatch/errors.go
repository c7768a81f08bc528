package dispatch

import (
	"errors"
	"fmt"
)

// ErrUnsupportedProcessor reports that the host CPU supports none of the
// instruction sets a function was built for, discovered when its lowest
// variant ran its entry check. The dispatcher itself never returns this:
// selection always binds something, and only the executing variant can
// know it cannot actually run.
var ErrUnsupportedProcessor = errors.New("processor does not support least required instruction set")

// Require is the entry check a baseline variant should run when it is not
// truly universal: it returns an ErrUnsupportedProcessor-wrapping error
// when the detected level is below min, and nil otherwise.
func Require(min Level) error {
	if detectedLevel < min {
		return fmt.Errorf("%w: need %s, detected %s", ErrUnsupportedProcessor, min, detectedLevel)
	}
	return nil
}
