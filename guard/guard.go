// Package guard holds precondition checks that fail fast instead of retrying.
package guard

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is matched by every *OutOfRangeError.
var ErrOutOfRange = errors.New("parameter out of range")

// Bound names the side of a Range that was violated.
type Bound int

const (
	BoundLower Bound = iota + 1
	BoundUpper
)

func (b Bound) String() string {
	switch b {
	case BoundLower:
		return "lower"
	case BoundUpper:
		return "upper"
	default:
		return "unknown"
	}
}

// Range is an inclusive [Min, Max] constraint.
type Range struct {
	Min int32
	Max int32
}

// DefaultRange accepts positive 32-bit values.
func DefaultRange() Range {
	return Range{Min: 1, Max: math.MaxInt32}
}

// OutOfRangeError identifies the parameter, its value and the violated bound.
type OutOfRangeError struct {
	Param string
	Value int32
	Min   int32
	Max   int32
	Bound Bound
}

func (e *OutOfRangeError) Error() string {
	if e.Bound == BoundUpper {
		return fmt.Sprintf("The %s parameter must be less than or equal to %d.", e.Param, e.Max)
	}
	return fmt.Sprintf("The %s parameter must be greater than or equal to %d.", e.Param, e.Min)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// ValidateRange returns an *OutOfRangeError when number falls outside r.
// The lower bound is checked first.
func ValidateRange(number int32, paramName string, r Range) error {
	if number < r.Min {
		return &OutOfRangeError{Param: paramName, Value: number, Min: r.Min, Max: r.Max, Bound: BoundLower}
	}
	if number > r.Max {
		return &OutOfRangeError{Param: paramName, Value: number, Min: r.Min, Max: r.Max, Bound: BoundUpper}
	}
	return nil
}
