package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// DecimalMax is the largest value KindDecimal accepts: a 96-bit mantissa
	// with no fractional digits.
	DecimalMax = decimal.RequireFromString("79228162514264337593543950335")
	// DecimalMin is the smallest value KindDecimal accepts.
	DecimalMin = DecimalMax.Neg()
)

// ParseReason classifies why a response could not be parsed.
type ParseReason int

const (
	ReasonSyntax ParseReason = iota + 1
	ReasonFractional
	ReasonOverflow
)

func (r ParseReason) String() string {
	switch r {
	case ReasonSyntax:
		return "not a number"
	case ReasonFractional:
		return "has a fractional part"
	case ReasonOverflow:
		return "outside the supported magnitude"
	default:
		return "unknown"
	}
}

// ParseError reports a response that is not a valid literal of Kind.
type ParseError struct {
	Kind   Kind
	Input  string
	Reason ParseReason
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %s", e.Kind, e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidNumber
}

// ParseInteger parses a signed whole number that fits in 32 bits.
// Surrounding whitespace is ignored. Literals containing a decimal point are
// rejected even when the fractional digits are zero.
func ParseInteger(text string) (int32, error) {
	lit, ok := scanLiteral(text)
	if !ok {
		return 0, &ParseError{Kind: KindInteger, Input: text, Reason: ReasonSyntax}
	}
	if lit.point {
		return 0, &ParseError{Kind: KindInteger, Input: text, Reason: ReasonFractional}
	}

	value, err := strconv.ParseInt(lit.sign+lit.whole, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ParseError{Kind: KindInteger, Input: text, Reason: ReasonOverflow}
		}
		return 0, &ParseError{Kind: KindInteger, Input: text, Reason: ReasonSyntax}
	}
	return int32(value), nil
}

// ParseDecimal parses a plain decimal literal within [DecimalMin, DecimalMax].
// Exponents, suffixes and group separators are rejected.
func ParseDecimal(text string) (decimal.Decimal, error) {
	lit, ok := scanLiteral(text)
	if !ok {
		return decimal.Decimal{}, &ParseError{Kind: KindDecimal, Input: text, Reason: ReasonSyntax}
	}

	value, err := decimal.NewFromString(lit.normalized())
	if err != nil {
		return decimal.Decimal{}, &ParseError{Kind: KindDecimal, Input: text, Reason: ReasonSyntax}
	}
	if value.Abs().GreaterThan(DecimalMax) {
		return decimal.Decimal{}, &ParseError{Kind: KindDecimal, Input: text, Reason: ReasonOverflow}
	}
	return value, nil
}

type literal struct {
	sign     string
	whole    string
	fraction string
	point    bool
}

func (l literal) normalized() string {
	whole := l.whole
	if whole == "" {
		whole = "0"
	}
	if l.fraction == "" {
		return l.sign + whole
	}
	return l.sign + whole + "." + l.fraction
}

// scanLiteral accepts [+-]digits[.digits] with at least one digit overall.
func scanLiteral(text string) (literal, bool) {
	s := strings.TrimSpace(text)
	var lit literal

	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			lit.sign = "-"
		}
		s = s[1:]
	}

	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	lit.whole = s[:i]
	s = s[i:]

	if s != "" && s[0] == '.' {
		lit.point = true
		s = s[1:]
		i = 0
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		lit.fraction = s[:i]
		s = s[i:]
	}

	if s != "" || (lit.whole == "" && lit.fraction == "") {
		return literal{}, false
	}
	return lit, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
