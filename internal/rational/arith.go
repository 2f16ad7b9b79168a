package rational

import (
	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/integer"
	"github.com/agbru/digitcalc/internal/natural"
)

func reduceBoth(r, s Rational) (Rational, Rational, error) {
	a, err := r.Reduce()
	if err != nil {
		return Rational{}, Rational{}, err
	}
	b, err := s.Reduce()
	if err != nil {
		return Rational{}, Rational{}, err
	}
	return a, b, nil
}

// Add returns r+s over the least common multiple of the reduced
// denominators, reduced.
func (r Rational) Add(s Rational) (Rational, error) {
	a, b, err := reduceBoth(r, s)
	if err != nil {
		return Rational{}, err
	}
	l, err := natural.LCM(a.den, b.den)
	if err != nil {
		return Rational{}, err
	}
	fa, _ := l.Div(a.den)
	fb, _ := l.Div(b.den)
	num := a.num.Mul(integer.FromNatural(fa)).Add(b.num.Mul(integer.FromNatural(fb)))
	return Rational{num: num, den: l}.Reduce()
}

// Sub returns r-s as r + (-s).
func (r Rational) Sub(s Rational) (Rational, error) { return r.Add(s.Neg()) }

// Mul returns the reduced product of r and s.
func (r Rational) Mul(s Rational) (Rational, error) {
	a, b, err := reduceBoth(r, s)
	if err != nil {
		return Rational{}, err
	}
	return Rational{num: a.num.Mul(b.num), den: a.den.Mul(b.den)}.Reduce()
}

// Inverse swaps the numerator magnitude and the denominator, carrying the
// sign onto the new numerator. It fails with DivisionByZero when r is 0.
func (r Rational) Inverse() (Rational, error) {
	if r.num.IsZero() {
		return Rational{}, apperrors.NewArithmeticError(apperrors.KindDivisionByZero,
			"rational.Inverse", r.String())
	}
	if r.den.IsZero() {
		return Rational{}, zeroDenominator("rational.Inverse", r)
	}
	return Rational{num: integer.New(r.num.IsNegative(), r.den), den: r.num.Abs()}, nil
}

// Div returns r/s as r times the inverse of s. It fails with DivisionByZero
// when s is 0.
func (r Rational) Div(s Rational) (Rational, error) {
	if s.num.IsZero() {
		return Rational{}, apperrors.NewArithmeticError(apperrors.KindDivisionByZero,
			"rational.Div", r.String(), s.String())
	}
	inv, err := s.Inverse()
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(inv)
}
