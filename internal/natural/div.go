package natural

import (
	apperrors "github.com/agbru/digitcalc/internal/errors"
)

func divisionByZero(op string, n, m Natural) error {
	return apperrors.NewArithmeticError(apperrors.KindDivisionByZero, op, n.String(), m.String())
}

// LeadingQuotientTerm returns the most significant term of n/m, that is the
// leading quotient digit multiplied by its power of ten. It returns 0 when
// n < m and fails with DivisionByZero when m is 0.
func (n Natural) LeadingQuotientTerm(m Natural) (Natural, error) {
	if m.IsZero() {
		return Natural{}, divisionByZero("natural.LeadingQuotientTerm", n, m)
	}
	return leadingTerm(n, m), nil
}

// leadingTerm scales m by ten until it exceeds n, backs off one step, and
// counts how many times the scaled divisor fits into n (at most nine).
func leadingTerm(n, m Natural) Natural {
	k := 0
	scaled := m
	for Compare(n, scaled) != Less {
		k++
		scaled = scaled.shift(1)
	}
	if k == 0 {
		return Natural{}
	}
	k--
	scaled = Natural{digits: scaled.digits[:len(scaled.digits)-1]}

	rem := n
	var digit uint8
	for Compare(rem, scaled) != Less {
		rem = sub(rem, scaled)
		digit++
	}
	return Natural{digits: []uint8{digit}}.shift(k)
}

// quoRem runs long division by repeated extraction of the leading quotient
// term. It requires m != 0.
func quoRem(n, m Natural) (q, r Natural) {
	r = n
	for Compare(r, m) != Less {
		t := leadingTerm(r, m)
		r = sub(r, t.Mul(m))
		q = q.Add(t)
	}
	return q, r
}

// DivMod returns the quotient floor(n/m) and the remainder n - q*m.
// It fails with DivisionByZero when m is 0.
func (n Natural) DivMod(m Natural) (q, r Natural, err error) {
	if m.IsZero() {
		return Natural{}, Natural{}, divisionByZero("natural.DivMod", n, m)
	}
	q, r = quoRem(n, m)
	return q, r, nil
}

// Div returns floor(n/m). It fails with DivisionByZero when m is 0.
func (n Natural) Div(m Natural) (Natural, error) {
	if m.IsZero() {
		return Natural{}, divisionByZero("natural.Div", n, m)
	}
	q, _ := quoRem(n, m)
	return q, nil
}

// Mod returns n - Div(n, m)*m. It fails with DivisionByZero when m is 0.
func (n Natural) Mod(m Natural) (Natural, error) {
	if m.IsZero() {
		return Natural{}, divisionByZero("natural.Mod", n, m)
	}
	q, _ := quoRem(n, m)
	return sub(n, q.Mul(m)), nil
}

// GCD returns the greatest common divisor of a and b using the Euclidean
// algorithm. GCD(0, 0) is undefined and fails with DivisionByZero.
func GCD(a, b Natural) (Natural, error) {
	if a.IsZero() && b.IsZero() {
		return Natural{}, divisionByZero("natural.GCD", a, b)
	}
	for a.NonZero() && b.NonZero() {
		if Compare(a, b) == Greater {
			_, a = quoRem(a, b)
		} else {
			_, b = quoRem(b, a)
		}
	}
	return a.Add(b), nil
}

// LCM returns gcd(a,b) * (a/gcd) * (b/gcd). It fails with DivisionByZero if
// either operand is 0.
func LCM(a, b Natural) (Natural, error) {
	if a.IsZero() || b.IsZero() {
		return Natural{}, divisionByZero("natural.LCM", a, b)
	}
	g, err := GCD(a, b)
	if err != nil {
		return Natural{}, err
	}
	qa, _ := quoRem(a, g)
	qb, _ := quoRem(b, g)
	return g.Mul(qa.Mul(qb)), nil
}
