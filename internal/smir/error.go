package smir

import (
	"fmt"
)

// ErrorKind separates the two non-recoverable conversion failures.
type ErrorKind uint8

const (
	// NotYetImplemented marks internal shapes that are real and reachable
	// but have no stable counterpart defined yet. The input must not be fed
	// to this layer; the gap is a development-time one, never approximated.
	NotYetImplemented ErrorKind = iota
	// InvariantViolated marks internal shapes the producing layer promises
	// cannot appear at this stage. Reaching one is an upstream defect.
	InvariantViolated
)

func (k ErrorKind) String() string {
	switch k {
	case NotYetImplemented:
		return "not yet implemented"
	case InvariantViolated:
		return "invariant violated"
	}
	return "unknown"
}

// Error terminates the current query. It never describes a partial result:
// conversion either produces a complete stable value or fails whole.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("smir: %s: %s", e.Kind, e.Msg)
}

// unsupported aborts the current conversion for a shape without a stable
// counterpart. The engine panics internally; the query surface recovers
// the typed value and returns it as an error.
func unsupported(format string, args ...any) {
	panic(&Error{Kind: NotYetImplemented, Msg: fmt.Sprintf(format, args...)})
}

// violated aborts the current conversion for a shape promised unreachable.
func violated(format string, args ...any) {
	panic(&Error{Kind: InvariantViolated, Msg: fmt.Sprintf(format, args...)})
}

// catch runs fn, converting an engine panic back into the typed error.
// Foreign panics propagate untouched.
func catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}
