// Package rational implements fractions with an integer.Integer numerator and
// a natural.Natural denominator.
//
// A Rational is not kept in lowest terms. Reduce produces the lowest-terms
// form and the arithmetic operations reduce their results. The denominator
// is never zero for values built by New or Parse; the zero value Rational{}
// has a zero denominator and every reducing operation on it fails with
// DivisionByZero.
package rational

import (
	"strings"

	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/integer"
	"github.com/agbru/digitcalc/internal/natural"
)

// Rational is a fraction num/den.
type Rational struct {
	num integer.Integer
	den natural.Natural
}

// New builds num/den. It fails with DivisionByZero when den is 0.
func New(num integer.Integer, den natural.Natural) (Rational, error) {
	if den.IsZero() {
		return Rational{}, apperrors.NewArithmeticError(apperrors.KindDivisionByZero,
			"rational.New", num.String(), den.String())
	}
	return Rational{num: num, den: den}, nil
}

// MustNew is like New but panics on a zero denominator.
func MustNew(num integer.Integer, den natural.Natural) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Zero returns 0/1.
func Zero() Rational { return FromInteger(integer.Zero()) }

// One returns 1/1.
func One() Rational { return FromInteger(integer.One()) }

// FromInteger returns x/1.
func FromInteger(x integer.Integer) Rational {
	return Rational{num: x, den: natural.One()}
}

// Parse reads "num/den" where num is an integer and den a natural. Exactly
// one '/' is required. A zero denominator fails with DivisionByZero.
func Parse(s string) (Rational, error) {
	numStr, denStr, ok := strings.Cut(s, "/")
	if !ok || strings.Contains(denStr, "/") {
		return Rational{}, apperrors.NewParseError(apperrors.KindStrToRational, s)
	}
	num, err := integer.Parse(numStr)
	if err != nil {
		return Rational{}, apperrors.NewParseError(apperrors.KindStrToRational, s)
	}
	den, err := natural.Parse(denStr)
	if err != nil {
		return Rational{}, apperrors.NewParseError(apperrors.KindStrToRational, s)
	}
	return New(num, den)
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String formats the fraction as stored, without reducing it.
func (r Rational) String() string {
	return r.num.String() + "/" + r.den.String()
}

// Numerator returns the stored numerator.
func (r Rational) Numerator() integer.Integer { return r.num }

// Denominator returns the stored denominator.
func (r Rational) Denominator() natural.Natural { return r.den }

// IsZero reports whether the numerator is 0.
func (r Rational) IsZero() bool { return r.num.IsZero() }

// Neg negates the numerator.
func (r Rational) Neg() Rational { return Rational{num: r.num.Neg(), den: r.den} }

func zeroDenominator(op string, r Rational) error {
	return apperrors.NewArithmeticError(apperrors.KindDivisionByZero, op, r.String())
}

// Reduce returns r in lowest terms. Both parts are divided by
// g = gcd(|num|, den) with integer.Div; since that division is exact, a
// negative nonzero numerator gets +1 to cancel the adjustment Div applies
// when the signs differ. It fails with DivisionByZero when den is 0.
func (r Rational) Reduce() (Rational, error) {
	if r.den.IsZero() {
		return Rational{}, zeroDenominator("rational.Reduce", r)
	}
	g, err := natural.GCD(r.num.Abs(), r.den)
	if err != nil {
		return Rational{}, err
	}
	gi := integer.FromNatural(g)
	num, err := r.num.Div(gi)
	if err != nil {
		return Rational{}, err
	}
	if r.num.IsNegative() {
		num = num.Add(integer.One())
	}
	den, err := r.den.Div(g)
	if err != nil {
		return Rational{}, err
	}
	return Rational{num: num, den: den}, nil
}

// IsInteger reports whether the reduced form of r has denominator 1.
func (r Rational) IsInteger() (bool, error) {
	red, err := r.Reduce()
	if err != nil {
		return false, err
	}
	return red.den.Equal(natural.One()), nil
}

// ToInteger returns the reduced numerator when r is integral and fails with
// RationalIsNotInteger otherwise.
func (r Rational) ToInteger() (integer.Integer, error) {
	red, err := r.Reduce()
	if err != nil {
		return integer.Integer{}, err
	}
	if !red.den.Equal(natural.One()) {
		return integer.Integer{}, apperrors.NewArithmeticError(apperrors.KindRationalIsNotInteger,
			"rational.ToInteger", r.String())
	}
	return red.num, nil
}

// Equal reports whether r and s reduce to the same fraction. Values with a
// zero denominator are equal only to each other's exact stored form.
func (r Rational) Equal(s Rational) bool {
	a, errA := r.Reduce()
	b, errB := s.Reduce()
	if errA != nil || errB != nil {
		return errA != nil && errB != nil && r.num.Equal(s.num)
	}
	return a.num.Equal(b.num) && a.den.Equal(b.den)
}
