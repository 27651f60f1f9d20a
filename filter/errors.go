package filter

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolStopped is returned when work is submitted to a stopped pool
	ErrPoolStopped = errors.New("worker pool is stopped")
	// ErrFilterNotFound is returned for an unknown filter or preset name
	ErrFilterNotFound = errors.New("filter not found")
)

// Error types for filter operations
type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a filter could not be evaluated for a coin
	EvaluationError struct {
		Expression string
		CoinID     string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("compilation error in '%s': %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error for '%s' on coin '%s': %v", e.Expression, e.CoinID, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
