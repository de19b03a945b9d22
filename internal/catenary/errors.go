package catenary

import "errors"

// ErrInvalidCoefficient is returned when the shape coefficient would be set
// to zero. It is a warning: the curve falls back to [DefaultCoefficient] and
// stays usable.
var ErrInvalidCoefficient = errors.New("catenary: invalid coefficient (must be non-zero)")

// CoefficientError records a rejected coefficient together with the value
// that replaced it.
type CoefficientError struct {
	Rejected   float64
	Substitute float64
}

func (e *CoefficientError) Error() string {
	return ErrInvalidCoefficient.Error()
}

func (e *CoefficientError) Unwrap() error {
	return ErrInvalidCoefficient
}
