package prompt

// Kind selects the parser and the unit name used in advisory messages.
type Kind int

const (
	// KindInteger accepts 32-bit signed whole numbers.
	KindInteger Kind = iota + 1
	// KindDecimal accepts fixed-point decimals bounded by DecimalMin and DecimalMax.
	KindDecimal
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	default:
		return "unknown"
	}
}

// Unit is the noun shown to the operator in the advisory message.
func (k Kind) Unit() string {
	switch k {
	case KindInteger:
		return "whole number"
	case KindDecimal:
		return "decimal value"
	default:
		return "number"
	}
}
