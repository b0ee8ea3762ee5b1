package mc

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/optimize"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrCalibration  = errors.New("calibration failed")
	ErrDomain       = errors.New("numerical domain error")
)

// InputError reports an argument that violates a precondition.
type InputError struct {
	Op    string
	Field string
	Value float64
	Msg   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: invalid %s (%v): %s", e.Op, e.Field, e.Value, e.Msg)
}

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

// DomainError reports a log or square root of a non-positive quantity.
type DomainError struct {
	Op    string
	Value float64
	Msg   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (%v)", e.Op, e.Msg, e.Value)
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// CalibrationError is returned when the optimizer does not reach a
// converged state. X holds the last point visited, for diagnostics only.
type CalibrationError struct {
	Status optimize.Status
	X      []float64
	Err    error
}

func (e *CalibrationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vasicek calibration failed (status %v): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("vasicek calibration failed: optimizer stopped with status %v", e.Status)
}

func (e *CalibrationError) Is(target error) bool { return target == ErrCalibration }

func (e *CalibrationError) Unwrap() error { return e.Err }

func invalid(op, field string, v float64, msg string) error {
	return &InputError{Op: op, Field: field, Value: v, Msg: msg}
}
