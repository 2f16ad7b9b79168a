package polynomial

import (
	apperrors "github.com/agbru/digitcalc/internal/errors"
)

func divisionByZero(op string, p, q Polynomial) error {
	return apperrors.NewArithmeticError(apperrors.KindDivisionByZero, op, p.String(), q.String())
}

// quoRem runs polynomial long division. It requires q to be nonzero.
func quoRem(p, q Polynomial) (quo, rem Polynomial) {
	rem = p.Normalize()
	d := q.Normalize()
	lead := d.view()[0]
	for !rem.IsZero() && rem.Degree() >= d.Degree() {
		c := must(rem.view()[0].Div(lead))
		term := constant(c).shift(rem.Degree() - d.Degree())
		quo = quo.Add(term)
		rem = rem.Sub(term.Mul(d))
	}
	return quo, rem
}

// DivMod returns the quotient of p by q and the remainder p - quo*q.
// It fails with DivisionByZero when q is the zero polynomial.
func (p Polynomial) DivMod(q Polynomial) (quo, rem Polynomial, err error) {
	if q.IsZero() {
		return Polynomial{}, Polynomial{}, divisionByZero("polynomial.DivMod", p, q)
	}
	quo, _ = quoRem(p, q)
	return quo, p.Sub(quo.Mul(q)), nil
}

// Div returns the quotient of p by q.
func (p Polynomial) Div(q Polynomial) (Polynomial, error) {
	if q.IsZero() {
		return Polynomial{}, divisionByZero("polynomial.Div", p, q)
	}
	quo, _ := quoRem(p, q)
	return quo, nil
}

// Mod returns p - Div(p, q)*q.
func (p Polynomial) Mod(q Polynomial) (Polynomial, error) {
	if q.IsZero() {
		return Polynomial{}, divisionByZero("polynomial.Mod", p, q)
	}
	quo, _ := quoRem(p, q)
	return p.Sub(quo.Mul(q)), nil
}

// GCD runs the Euclidean algorithm, replacing (a, b) with (b, a mod b)
// until b collapses to zero. GCD(p, 0) is p, and GCD(0, 0) fails with
// DivisionByZero. The result is not made monic.
func GCD(p, q Polynomial) (Polynomial, error) {
	a, b := p.Normalize(), q.Normalize()
	if a.IsZero() && b.IsZero() {
		return Polynomial{}, divisionByZero("polynomial.GCD", p, q)
	}
	for !b.IsZero() {
		quo, _ := quoRem(a, b)
		a, b = b, a.Sub(quo.Mul(b))
	}
	return a, nil
}

// SquareFree removes repeated roots by dividing p by gcd(p, p') and scales
// the quotient by the inverse of its leading coefficient so the result is
// monic. It fails with DivisionByZero for the zero polynomial.
func (p Polynomial) SquareFree() (Polynomial, error) {
	n := p.Normalize()
	g, err := GCD(n, n.Derivative())
	if err != nil {
		return Polynomial{}, err
	}
	quo, _ := quoRem(n, g)
	inv, err := quo.LeadingCoefficient().Inverse()
	if err != nil {
		return Polynomial{}, err
	}
	return quo.scale(inv), nil
}
