package playback

import (
	"errors"
	"fmt"
)

// ErrAlgorithmPanic indicates the algorithm goroutine panicked.
var ErrAlgorithmPanic = errors.New("playback: algorithm panicked")

// AlgorithmError wraps a failure of the algorithm goroutine with the point in
// the history where it happened.
type AlgorithmError struct {
	Name    string
	Step    int
	Value   any
	Wrapped error
}

func (e *AlgorithmError) Error() string {
	return fmt.Sprintf("%s at step %d: %v: %v", e.Name, e.Step, e.Wrapped, e.Value)
}

func (e *AlgorithmError) Unwrap() error {
	return e.Wrapped
}
