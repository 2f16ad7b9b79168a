// Package integer implements signed arbitrary-precision arithmetic as a sign
// tag paired with a natural.Natural magnitude.
//
// Zero is always non-negative. Values are immutable; every operation returns
// a new Integer. Division follows a fixed convention that is not floor or
// truncating division when the signs differ; see Div.
package integer

import (
	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/natural"
)

// SignClass classifies an Integer for arithmetic dispatch.
type SignClass int

const (
	// SignZero is reported for zero regardless of the stored sign tag.
	SignZero SignClass = iota
	// SignNegative is reported for values below zero.
	SignNegative
	// SignPositive is reported for values above zero.
	SignPositive
)

func (s SignClass) String() string {
	switch s {
	case SignZero:
		return "ZERO"
	case SignNegative:
		return "NEGATIVE"
	case SignPositive:
		return "POSITIVE"
	}
	return "SignClass(?)"
}

// Integer is a signed whole number.
type Integer struct {
	negative  bool
	magnitude natural.Natural
}

// New builds an Integer from a sign tag and a magnitude. A zero magnitude
// always yields a non-negative Integer.
func New(negative bool, magnitude natural.Natural) Integer {
	if magnitude.IsZero() {
		return Integer{}
	}
	return Integer{negative: negative, magnitude: magnitude}
}

// Zero returns the Integer 0.
func Zero() Integer { return Integer{} }

// One returns the Integer 1.
func One() Integer { return Integer{magnitude: natural.One()} }

// FromNatural promotes n to a non-negative Integer.
func FromNatural(n natural.Natural) Integer { return Integer{magnitude: n} }

// FromInt64 converts a machine integer.
func FromInt64(v int64) Integer {
	if v >= 0 {
		return FromNatural(natural.FromUint64(uint64(v)))
	}
	// -(v+1)+1 avoids overflow on the minimum int64.
	return New(true, natural.FromUint64(uint64(-(v+1))+1))
}

// Parse reads an optional leading '-' followed by a canonical natural.
// "-0" is rejected because zero carries no sign.
func Parse(s string) (Integer, error) {
	digits, negative := s, false
	if len(s) > 0 && s[0] == '-' {
		digits, negative = s[1:], true
	}
	m, err := natural.Parse(digits)
	if err != nil || (negative && m.IsZero()) {
		return Integer{}, apperrors.NewParseError(apperrors.KindStrToInteger, s)
	}
	return New(negative, m), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Integer {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// String returns the canonical decimal form with a leading '-' for
// negative values.
func (x Integer) String() string {
	if x.IsNegative() {
		return "-" + x.magnitude.String()
	}
	return x.magnitude.String()
}

// Abs returns the magnitude of x.
func (x Integer) Abs() natural.Natural { return x.magnitude }

// Sign returns the sign class of x. Zero takes priority over the tag.
func (x Integer) Sign() SignClass {
	switch {
	case x.magnitude.IsZero():
		return SignZero
	case x.negative:
		return SignNegative
	default:
		return SignPositive
	}
}

// IsZero reports whether x is 0.
func (x Integer) IsZero() bool { return x.magnitude.IsZero() }

// IsNegative reports whether x < 0.
func (x Integer) IsNegative() bool { return x.Sign() == SignNegative }

// Neg returns -x.
func (x Integer) Neg() Integer { return New(!x.negative, x.magnitude) }

// ToNatural demotes x to a Natural. It fails with ConvertNegativeToNatural
// when x is negative.
func (x Integer) ToNatural() (natural.Natural, error) {
	if x.IsNegative() {
		return natural.Natural{}, apperrors.NewArithmeticError(apperrors.KindConvertNegativeToNatural,
			"integer.ToNatural", x.String())
	}
	return x.magnitude, nil
}

// Equal reports whether x and y hold the same value.
func (x Integer) Equal(y Integer) bool {
	return x.Sign() == y.Sign() && x.magnitude.Equal(y.magnitude)
}

// Compare orders x and y.
func Compare(x, y Integer) natural.Ordering {
	sx, sy := x.Sign(), y.Sign()
	rank := func(s SignClass) int {
		switch s {
		case SignNegative:
			return -1
		case SignPositive:
			return 1
		}
		return 0
	}
	if rx, ry := rank(sx), rank(sy); rx != ry {
		if rx < ry {
			return natural.Less
		}
		return natural.Greater
	}
	c := natural.Compare(x.magnitude, y.magnitude)
	if sx == SignNegative {
		return -c
	}
	return c
}
