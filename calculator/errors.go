package calculator

import "fmt"

// InvalidInputError reports an input quantity that violates its physical
// constraint (e.g. a non-positive length, or a growth rate <= 1).
type InvalidInputError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s = %v (%s)", e.Quantity, e.Value, e.Reason)
}

// DegenerateInputError reports a computed denominator that is numerically
// indistinguishable from zero, which would blow up a division.
type DegenerateInputError struct {
	Quantity string
	Reason   string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input: %s (%s)", e.Quantity, e.Reason)
}

func invalid(quantity string, value float64, reason string) error {
	return &InvalidInputError{Quantity: quantity, Value: value, Reason: reason}
}
