package ph

import (
	"errors"
	"fmt"
)

// ErrDomain is the sentinel wrapped by every *DomainError.
var ErrDomain = errors.New("input outside valid domain")

// ErrOpposingClasses is returned by Combine when both liquids have a
// nonzero volume and sit on opposite sides of neutral. The weighted
// average formulas only describe acid+acid and base+base mixing;
// neutralization is not modeled.
var ErrOpposingClasses = fmt.Errorf("acid/base combination is not modeled: %w", ErrDomain)

// DomainError reports an input that violates a precondition of one of
// the model functions.
type DomainError struct {
	Quantity   string
	Value      float64
	Constraint string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %g must be %s", e.Quantity, e.Value, e.Constraint)
}

func (e *DomainError) Unwrap() error { return ErrDomain }
