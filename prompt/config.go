package prompt

import (
	"math"

	"github.com/shopspring/decimal"
)

// IntegerConfig constrains an integer prompt. Min and Max are inclusive.
// An inverted range is not rejected; it makes every response unacceptable.
type IntegerConfig struct {
	Min     int32
	Max     int32
	Verbose bool
}

// DefaultIntegerConfig accepts any 32-bit value and shows the advisory.
func DefaultIntegerConfig() IntegerConfig {
	return IntegerConfig{
		Min:     math.MinInt32,
		Max:     math.MaxInt32,
		Verbose: true,
	}
}

// DecimalConfig constrains a decimal prompt. Min and Max are inclusive.
type DecimalConfig struct {
	Min     decimal.Decimal
	Max     decimal.Decimal
	Verbose bool
}

// DefaultDecimalConfig accepts any value in [DecimalMin, DecimalMax] and shows
// the advisory.
func DefaultDecimalConfig() DecimalConfig {
	return DecimalConfig{
		Min:     DecimalMin,
		Max:     DecimalMax,
		Verbose: true,
	}
}
