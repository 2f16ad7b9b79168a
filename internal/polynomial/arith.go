package polynomial

import (
	"strconv"

	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/integer"
	"github.com/agbru/digitcalc/internal/natural"
	"github.com/agbru/digitcalc/internal/rational"
)

// must unwraps coefficient arithmetic. Coefficients reaching it always carry
// nonzero denominators, so a failure is a broken invariant.
func must(r rational.Rational, err error) rational.Rational {
	if err != nil {
		panic(err)
	}
	return r
}

func constant(c rational.Rational) Polynomial {
	return Polynomial{coeffs: []rational.Rational{c}}
}

func checkScalar(op string, r rational.Rational) error {
	if r.Denominator().IsZero() {
		return apperrors.NewArithmeticError(apperrors.KindDivisionByZero, op, r.String())
	}
	return nil
}

// combine aligns p and q at the constant term and applies f to the
// overlapping coefficients. A missing coefficient counts as 0/1.
func combine(p, q Polynomial, f func(a, b rational.Rational) (rational.Rational, error)) Polynomial {
	a, b := p.Normalize().view(), q.Normalize().view()
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]rational.Rational, n)
	for i := 1; i <= n; i++ {
		x, y := rational.Zero(), rational.Zero()
		if i <= len(a) {
			x = a[len(a)-i]
		}
		if i <= len(b) {
			y = b[len(b)-i]
		}
		out[n-i] = must(f(x, y))
	}
	return Polynomial{coeffs: out}.Normalize()
}

// Add returns p+q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return combine(p, q, rational.Rational.Add)
}

// Sub returns p-q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return combine(p, q, rational.Rational.Sub)
}

// Scale multiplies every coefficient by r. A zero r yields the zero
// polynomial. It fails with DivisionByZero when r has a zero denominator.
func (p Polynomial) Scale(r rational.Rational) (Polynomial, error) {
	if err := checkScalar("polynomial.Scale", r); err != nil {
		return Polynomial{}, err
	}
	return p.scale(r), nil
}

func (p Polynomial) scale(r rational.Rational) Polynomial {
	if r.IsZero() {
		return Polynomial{}
	}
	src := p.Normalize().view()
	out := make([]rational.Rational, len(src))
	for i, c := range src {
		out[i] = must(c.Mul(r))
	}
	return Polynomial{coeffs: out}.Normalize()
}

// Shift multiplies p by x^k. It fails with IncorrectDegree when k is
// negative.
func (p Polynomial) Shift(k int) (Polynomial, error) {
	if k < 0 {
		return Polynomial{}, apperrors.NewArithmeticError(apperrors.KindIncorrectDegree,
			"polynomial.Shift", p.String(), strconv.Itoa(k))
	}
	return p.shift(k), nil
}

func (p Polynomial) shift(k int) Polynomial {
	src := p.Normalize()
	if src.IsZero() {
		return Polynomial{}
	}
	out := make([]rational.Rational, len(src.coeffs)+k)
	copy(out, src.coeffs)
	for i := len(src.coeffs); i < len(out); i++ {
		out[i] = rational.Zero()
	}
	return Polynomial{coeffs: out}
}

// Mul returns p*q. Each coefficient of q scales p, is shifted to its degree
// and accumulated.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	a, b := p.Normalize(), q.Normalize()
	if a.IsZero() || b.IsZero() {
		return Polynomial{}
	}
	acc := Polynomial{}
	bc := b.view()
	for i, c := range bc {
		acc = acc.Add(a.scale(c).shift(len(bc) - 1 - i))
	}
	return acc
}

// Content returns the GCD of the coefficient numerator magnitudes over the
// LCM of the coefficient denominators, without reducing the fraction.
func (p Polynomial) Content() rational.Rational {
	var g natural.Natural
	l := natural.One()
	for _, c := range p.Normalize().view() {
		if m := c.Numerator().Abs(); m.NonZero() {
			if g.IsZero() {
				g = m
			} else {
				g, _ = natural.GCD(g, m)
			}
		}
		l, _ = natural.LCM(l, c.Denominator())
	}
	return rational.MustNew(integer.FromNatural(g), l)
}

// Derivative returns dp/dx. The derivative of a constant is the zero
// polynomial.
func (p Polynomial) Derivative() Polynomial {
	src := p.Normalize().view()
	deg := len(src) - 1
	if deg == 0 {
		return Polynomial{}
	}
	out := make([]rational.Rational, deg)
	for i := 0; i < deg; i++ {
		factor := rational.FromInteger(integer.FromInt64(int64(deg - i)))
		out[i] = must(src[i].Mul(factor))
	}
	return Polynomial{coeffs: out}.Normalize()
}

// Evaluate computes p(x) by Horner's rule.
func (p Polynomial) Evaluate(x rational.Rational) (rational.Rational, error) {
	if err := checkScalar("polynomial.Evaluate", x); err != nil {
		return rational.Rational{}, err
	}
	acc := rational.Zero()
	for _, c := range p.view() {
		acc = must(acc.Mul(x))
		acc = must(acc.Add(c))
	}
	return acc, nil
}
