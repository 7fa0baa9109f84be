package router

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	ErrNilFactory     = errors.New("nil configuration factory")
	ErrNilApp         = errors.New("configuration factory returned no app")
	ErrConfigure      = errors.New("failed to configure app")
	ErrReload         = errors.New("failed to reload app")
	ErrChainProceeded = errors.New("interceptor chain already proceeded")
)

// statusCoder can be implemented by errors that carry an HTTP status code.
type statusCoder interface {
	StatusCode() int
}

// PanicError wraps a value recovered from a panicking handler, interceptor,
// asset loader or fallback handler, so it can flow through the regular
// exception path.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func newPanicError(value any) *panicError {
	return &panicError{value: value, stack: debug.Stack()}
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to reach a panicked error value.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

// guard runs fn and turns a panic into a PanicError.
func guard(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = newPanicError(p)
		}
	}()
	return fn()
}
