// Package polynomial implements single-variable polynomials with
// rational.Rational coefficients.
//
// Coefficients are stored from the leading term down to the constant term,
// so a polynomial of nominal degree d holds d+1 of them. Parsed values keep
// any leading zero coefficients until Normalize (degree collapse) removes
// them; every arithmetic operation normalizes its operands and its result.
// The zero value Polynomial{} is the zero polynomial.
package polynomial

import (
	"strings"

	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/rational"
)

// Separator joins coefficients in the canonical textual form.
const Separator = "; "

// Polynomial is an immutable sequence of rational coefficients, leading
// term first.
type Polynomial struct {
	coeffs []rational.Rational
}

// New builds a polynomial from coefficients ordered from the leading term
// to the constant term. It fails with StrToPolynomial when the list is
// empty or any coefficient has a zero denominator.
func New(coeffs []rational.Rational) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, apperrors.NewParseError(apperrors.KindStrToPolynomial, "")
	}
	for _, c := range coeffs {
		if c.Denominator().IsZero() {
			return Polynomial{}, apperrors.NewParseError(apperrors.KindStrToPolynomial, joinCoefficients(coeffs))
		}
	}
	return Polynomial{coeffs: append([]rational.Rational(nil), coeffs...)}, nil
}

// Zero returns the zero polynomial.
func Zero() Polynomial { return Polynomial{} }

// One returns the constant polynomial 1.
func One() Polynomial { return constant(rational.One()) }

// Parse reads ';'-separated rational coefficients, highest degree first.
// Whitespace around each coefficient is ignored. The result is not
// normalized.
func Parse(s string) (Polynomial, error) {
	parts := strings.Split(s, ";")
	coeffs := make([]rational.Rational, 0, len(parts))
	for _, part := range parts {
		c, err := rational.Parse(strings.TrimSpace(part))
		if err != nil {
			return Polynomial{}, apperrors.NewParseError(apperrors.KindStrToPolynomial, s)
		}
		coeffs = append(coeffs, c)
	}
	return Polynomial{coeffs: coeffs}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Polynomial {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String joins the stored coefficients with "; ".
func (p Polynomial) String() string { return joinCoefficients(p.view()) }

func joinCoefficients(coeffs []rational.Rational) string {
	parts := make([]string, len(coeffs))
	for i, c := range coeffs {
		parts[i] = c.String()
	}
	return strings.Join(parts, Separator)
}

// view returns the coefficient storage with the zero polynomial
// materialised as [0/1]. Callers must treat the result as read-only.
func (p Polynomial) view() []rational.Rational {
	if len(p.coeffs) == 0 {
		return []rational.Rational{rational.Zero()}
	}
	return p.coeffs
}

// Coefficients returns a copy of the stored coefficients, leading first.
func (p Polynomial) Coefficients() []rational.Rational {
	return append([]rational.Rational(nil), p.view()...)
}

// Normalize drops leading zero coefficients while the degree is positive.
func (p Polynomial) Normalize() Polynomial {
	c := p.view()
	i := 0
	for i < len(c)-1 && c[i].IsZero() {
		i++
	}
	return Polynomial{coeffs: c[i:]}
}

// Degree returns the degree of the normalized polynomial. The zero
// polynomial has degree 0.
func (p Polynomial) Degree() int { return len(p.Normalize().view()) - 1 }

// LeadingCoefficient returns the leading coefficient of the normalized
// polynomial.
func (p Polynomial) LeadingCoefficient() rational.Rational { return p.Normalize().view()[0] }

// Coefficient returns the coefficient of x^i in the normalized polynomial,
// or 0/1 when i is beyond the degree.
func (p Polynomial) Coefficient(i int) rational.Rational {
	c := p.Normalize().view()
	if i < 0 || i >= len(c) {
		return rational.Zero()
	}
	return c[len(c)-1-i]
}

// IsZero reports whether every coefficient is zero.
func (p Polynomial) IsZero() bool {
	for _, c := range p.view() {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Equal reports whether p and q have the same normalized degree and equal
// coefficients after reduction.
func (p Polynomial) Equal(q Polynomial) bool {
	a, b := p.Normalize().view(), q.Normalize().view()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
