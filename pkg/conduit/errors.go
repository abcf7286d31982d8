package conduit

import "fmt"

// PanicError wraps a value recovered from a panicking transformer so it can
// travel the same path as an ordinary stage error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("stage panic: %v", e.Value)
}
