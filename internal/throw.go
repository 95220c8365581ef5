package internal

import "github.com/pkg/errors"

// A quadrilateral that fits none of the cases is a logic or data error, not a
// point that happens to be outside. Threading that through every geometric
// helper would obscure the case analysis, so the classifier panics with an
// *InvariantViolation and the public API recovers it into an error.

type InvariantViolation struct {
	Quadrilateral Quadrilateral
	err           error
}

func (e *InvariantViolation) Error() string {
	return e.err.Error()
}

func (e *InvariantViolation) Cause() error {
	return e.err
}

func (e *InvariantViolation) Unwrap() error {
	return e.err
}

func invariantViolationf(q Quadrilateral, format string, args ...interface{}) *InvariantViolation {
	return &InvariantViolation{Quadrilateral: q, err: errors.Errorf(format, args...)}
}

// Panic with an *InvariantViolation.
func fatalf(q Quadrilateral, format string, args ...interface{}) {
	panic(invariantViolationf(q, format, args...))
}

// Convert a recovered *InvariantViolation into an error. Any other panic is a
// genuine bug and is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if violation, ok := r.(*InvariantViolation); ok {
			return violation
		}
		panic(r)
	}
	return nil
}
