package startup

import (
	"errors"
	"fmt"
)

// ErrIO is matched by every failure to write a report to its sink.
var ErrIO = errors.New("startup report: io failure")

// EmitError reports a sink write failure. Written is the number of lines
// that reached the sink before it failed.
type EmitError struct {
	Written int
	Err     error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("startup report: write line %d: %v", e.Written+1, e.Err)
}

func (e *EmitError) Unwrap() error { return e.Err }

func (e *EmitError) Is(target error) bool { return target == ErrIO }
