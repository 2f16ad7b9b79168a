package integer

import (
	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/natural"
)

// Add returns x+y. The operand with the larger magnitude is arranged
// first; equal sign classes add magnitudes, a zero operand yields the other,
// and opposite signs subtract the smaller magnitude from the larger one
// keeping the larger operand's sign.
func (x Integer) Add(y Integer) Integer {
	if natural.Compare(x.magnitude, y.magnitude) == natural.Less {
		x, y = y, x
	}
	sx, sy := x.Sign(), y.Sign()
	switch {
	case sy == SignZero:
		return x
	case sx == SignZero:
		return y
	case sx == sy:
		return New(x.negative, x.magnitude.Add(y.magnitude))
	}
	// |x| >= |y| here so the subtraction cannot fail.
	diff, _ := x.magnitude.Sub(y.magnitude)
	return New(x.negative, diff)
}

// Sub returns x-y as x + (-y).
func (x Integer) Sub(y Integer) Integer { return x.Add(y.Neg()) }

// Mul returns x*y. The product is negative only when exactly one operand is
// negative and neither is zero.
func (x Integer) Mul(y Integer) Integer {
	return New(x.IsNegative() != y.IsNegative(), x.magnitude.Mul(y.magnitude))
}

// Div divides x by y using q = floor(|x| / |y|). A zero q yields 0. When the
// sign classes of x and y differ the result is -(q+1), otherwise q. The
// adjustment is applied whether or not the division is exact, so
// Div(-6, 2) is -4. It fails with DivisionByZero when y is 0.
func (x Integer) Div(y Integer) (Integer, error) {
	if y.IsZero() {
		return Integer{}, apperrors.NewArithmeticError(apperrors.KindDivisionByZero,
			"integer.Div", x.String(), y.String())
	}
	return div(x, y), nil
}

func div(x, y Integer) Integer {
	q, _ := x.magnitude.Div(y.magnitude)
	if q.IsZero() {
		return Integer{}
	}
	if x.Sign() != y.Sign() {
		return New(true, q.Increment())
	}
	return FromNatural(q)
}

// Mod returns x - Div(x, y)*y. It fails with DivisionByZero when y is 0.
func (x Integer) Mod(y Integer) (Integer, error) {
	if y.IsZero() {
		return Integer{}, apperrors.NewArithmeticError(apperrors.KindDivisionByZero,
			"integer.Mod", x.String(), y.String())
	}
	return x.Sub(div(x, y).Mul(y)), nil
}
