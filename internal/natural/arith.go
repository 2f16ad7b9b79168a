package natural

import (
	"strconv"

	apperrors "github.com/agbru/digitcalc/internal/errors"
)

// Increment returns n+1. A carry out of the most significant digit grows
// the digit count by one.
func (n Natural) Increment() Natural {
	d := n.view()
	out := make([]uint8, len(d)+1)
	copy(out[1:], d)
	i := len(out) - 1
	for out[i] == 9 {
		out[i] = 0
		i--
	}
	out[i]++
	return normalize(out)
}

// Add returns n+m using grade-school addition aligned at the least
// significant digit.
func (n Natural) Add(m Natural) Natural {
	x, y := n.view(), m.view()
	if len(x) < len(y) {
		x, y = y, x
	}
	out := make([]uint8, len(x)+1)
	var carry uint8
	for i := 0; i < len(x); i++ {
		s := x[len(x)-1-i] + carry
		if i < len(y) {
			s += y[len(y)-1-i]
		}
		out[len(out)-1-i] = s % 10
		carry = s / 10
	}
	out[0] = carry
	return normalize(out)
}

// Sub returns n-m. It fails with FirstLessThanSecond when n < m.
func (n Natural) Sub(m Natural) (Natural, error) {
	if Compare(n, m) == Less {
		return Natural{}, apperrors.NewArithmeticError(apperrors.KindFirstLessThanSecond,
			"natural.Sub", n.String(), m.String())
	}
	return sub(n, m), nil
}

// sub performs borrow propagation. It requires n >= m.
func sub(n, m Natural) Natural {
	x, y := n.view(), m.view()
	out := make([]uint8, len(x))
	borrow := 0
	for i := 0; i < len(x); i++ {
		v := int(x[len(x)-1-i]) - borrow
		if i < len(y) {
			v -= int(y[len(y)-1-i])
		}
		if v < 0 {
			v += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[len(out)-1-i] = uint8(v)
	}
	return normalize(out)
}

// MulDigit returns n*d for a single decimal digit d. It fails with
// IncorrectDigit when d is outside [0, 9].
func (n Natural) MulDigit(d int) (Natural, error) {
	if d < 0 || d > 9 {
		return Natural{}, apperrors.NewArithmeticError(apperrors.KindIncorrectDigit,
			"natural.MulDigit", strconv.Itoa(d))
	}
	return n.mulDigit(uint8(d)), nil
}

func (n Natural) mulDigit(d uint8) Natural {
	if d == 0 || n.IsZero() {
		return Natural{}
	}
	x := n.view()
	out := make([]uint8, len(x)+1)
	var carry uint8
	for i := len(x) - 1; i >= 0; i-- {
		p := x[i]*d + carry
		out[i+1] = p % 10
		carry = p / 10
	}
	out[0] = carry
	return normalize(out)
}

// MulPow10 returns n*10^k by appending k zero digits. Zero stays zero.
// It fails with IncorrectDegree when k is negative.
func (n Natural) MulPow10(k int) (Natural, error) {
	if k < 0 {
		return Natural{}, apperrors.NewArithmeticError(apperrors.KindIncorrectDegree,
			"natural.MulPow10", strconv.Itoa(k))
	}
	return n.shift(k), nil
}

func (n Natural) shift(k int) Natural {
	if n.IsZero() {
		return Natural{}
	}
	x := n.view()
	out := make([]uint8, len(x)+k)
	copy(out, x)
	return Natural{digits: out}
}

// Mul returns n*m. The shorter operand drives the outer loop: each of its
// digits multiplies the longer operand, the partial product is shifted into
// position and accumulated.
func (n Natural) Mul(m Natural) Natural {
	long, short := n, m
	if long.Len() < short.Len() {
		long, short = short, long
	}
	if short.IsZero() || long.IsZero() {
		return Natural{}
	}
	s := short.view()
	acc := Natural{}
	for i := 0; i < len(s); i++ {
		d := s[len(s)-1-i]
		if d == 0 {
			continue
		}
		acc = acc.Add(long.mulDigit(d).shift(i))
	}
	return acc
}

// SubMulDigit returns n - m*d, failing like MulDigit for a bad digit and
// like Sub when the product exceeds n.
func (n Natural) SubMulDigit(m Natural, d int) (Natural, error) {
	p, err := m.MulDigit(d)
	if err != nil {
		return Natural{}, err
	}
	return n.Sub(p)
}
