package tracker

import (
	"errors"
	"fmt"
)

// ErrDestroyed is returned by Get on a derived computation whose Destroy
// has been called.
var ErrDestroyed = errors.New("tracker: node destroyed")

// CycleError reports a derived computation that, directly or transitively,
// read its own output while evaluating. It is fatal to that evaluation
// only: the node caches it and replays it to every reader until an
// upstream write invalidates the node.
type CycleError struct {
	Name string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("tracker: dependency cycle detected at %s", e.Name)
}

// IsCycle reports whether err is (or wraps) a CycleError.
func IsCycle(err error) bool {
	var c *CycleError
	return errors.As(err, &c)
}

// HaltError is the silent-halt produced by the require gate. It unwinds the
// current consumer body early and is never treated as a failure.
// CancelOutput tells an output consumer to discard its published value
// instead of keeping the last one.
type HaltError struct {
	CancelOutput bool
}

func (e *HaltError) Error() string {
	return "tracker: consumer halted"
}

// IsHalt reports whether err is (or wraps) a HaltError.
func IsHalt(err error) bool {
	var h *HaltError
	return errors.As(err, &h)
}
