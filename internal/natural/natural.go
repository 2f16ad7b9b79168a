// Package natural implements unsigned arbitrary-precision arithmetic on
// sequences of decimal digits.
//
// A Natural is an immutable value: every operation returns a fresh instance
// and never writes into the digit storage of its operands. The digit
// sequence is kept most-significant first and without leading zeros; the
// value zero is the single digit 0. The zero value of Natural is a valid 0.
package natural

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/digitcalc/internal/errors"
)

// Ordering is the result of comparing two Naturals.
type Ordering int

// Possible comparison outcomes.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "LESS"
	case Equal:
		return "EQUAL"
	case Greater:
		return "GREATER"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// Natural is a non-negative integer stored as decimal digits.
type Natural struct {
	// digits holds the value most-significant first. nil stands for zero.
	digits []uint8
}

var zeroDigits = []uint8{0}

// Zero returns the Natural 0.
func Zero() Natural { return Natural{} }

// One returns the Natural 1.
func One() Natural { return Natural{digits: []uint8{1}} }

// FromUint64 converts a machine integer into a Natural.
func FromUint64(v uint64) Natural {
	if v == 0 {
		return Natural{}
	}
	var buf [20]uint8
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = uint8(v % 10)
		v /= 10
	}
	return Natural{digits: append([]uint8(nil), buf[i:]...)}
}

// FromDigits builds a Natural from digits ordered most-significant first.
// It applies the same validation as Parse: the sequence must be non-empty,
// every element must be in [0, 9], and only the value zero may start with 0.
func FromDigits(digits []int) (Natural, error) {
	invalid := func() (Natural, error) {
		return Natural{}, apperrors.NewParseError(apperrors.KindStrToNatural, fmt.Sprint(digits))
	}
	if len(digits) == 0 || (len(digits) > 1 && digits[0] == 0) {
		return invalid()
	}
	out := make([]uint8, len(digits))
	for i, d := range digits {
		if d < 0 || d > 9 {
			return invalid()
		}
		out[i] = uint8(d)
	}
	return normalize(out), nil
}

// Parse reads the canonical decimal form of a Natural: "0" or a non-empty
// run of digits without a leading zero.
func Parse(s string) (Natural, error) {
	if !isCanonical(s) {
		return Natural{}, apperrors.NewParseError(apperrors.KindStrToNatural, s)
	}
	out := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i] - '0'
	}
	return normalize(out), nil
}

// MustParse is like Parse but panics on malformed input.
// It is intended for constants and tests.
func MustParse(s string) Natural {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func isCanonical(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the canonical decimal form.
func (n Natural) String() string {
	d := n.view()
	var b strings.Builder
	b.Grow(len(d))
	for _, digit := range d {
		b.WriteByte('0' + digit)
	}
	return b.String()
}

// Len returns the number of decimal digits; zero has one digit.
func (n Natural) Len() int { return len(n.view()) }

// Digits returns a copy of the digits, most-significant first.
func (n Natural) Digits() []int {
	d := n.view()
	out := make([]int, len(d))
	for i, digit := range d {
		out[i] = int(digit)
	}
	return out
}

// IsZero reports whether n is 0.
func (n Natural) IsZero() bool { return n.view()[0] == 0 }

// NonZero reports whether n is not 0.
func (n Natural) NonZero() bool { return !n.IsZero() }

// view returns the digit storage with zero materialised as [0].
// Callers must treat the result as read-only.
func (n Natural) view() []uint8 {
	if len(n.digits) == 0 {
		return zeroDigits
	}
	return n.digits
}

// normalize strips leading zeros from freshly allocated storage and takes
// ownership of it.
func normalize(d []uint8) Natural {
	i := 0
	for i < len(d) && d[i] == 0 {
		i++
	}
	if i == len(d) {
		return Natural{}
	}
	return Natural{digits: d[i:]}
}

// Compare orders a and b by digit count first, then digit by digit from the
// most significant end.
func Compare(a, b Natural) Ordering {
	x, y := a.view(), b.view()
	if len(x) != len(y) {
		if len(x) > len(y) {
			return Greater
		}
		return Less
	}
	for i := range x {
		if x[i] != y[i] {
			if x[i] > y[i] {
				return Greater
			}
			return Less
		}
	}
	return Equal
}

// Cmp returns -1, 0 or +1 like big.Int.Cmp.
func (n Natural) Cmp(m Natural) int { return int(Compare(n, m)) }

// Equal reports whether n and m hold the same value.
func (n Natural) Equal(m Natural) bool { return Compare(n, m) == Equal }
