package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestArithmeticError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expectedMsg string
		sentinel    error
		kind        Kind
	}{
		{
			name:        "FirstLessThanSecond carries operands",
			err:         NewArithmeticError(KindFirstLessThanSecond, "natural.Sub", "12", "345"),
			expectedMsg: "natural.Sub: first operand is less than second (12, 345)",
			sentinel:    ErrFirstLessThanSecond,
			kind:        KindFirstLessThanSecond,
		},
		{
			name:        "IncorrectDigit",
			err:         NewArithmeticError(KindIncorrectDigit, "natural.MulDigit", "10"),
			expectedMsg: "natural.MulDigit: value is not a decimal digit (10)",
			sentinel:    ErrIncorrectDigit,
			kind:        KindIncorrectDigit,
		},
		{
			name:        "No operation and no operands",
			err:         NewArithmeticError(KindDivisionByZero, ""),
			expectedMsg: "division by zero",
			sentinel:    ErrDivisionByZero,
			kind:        KindDivisionByZero,
		},
		{
			name:        "Wrapped error keeps kind",
			err:         fmt.Errorf("reduce: %w", NewArithmeticError(KindRationalIsNotInteger, "rational.ToInteger", "3/2")),
			expectedMsg: "reduce: rational.ToInteger: rational is not an integer (3/2)",
			sentinel:    ErrRationalIsNotInteger,
			kind:        KindRationalIsNotInteger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, tt.err.Error())
			}
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
			kind, ok := KindOf(tt.err)
			if !ok || kind != tt.kind {
				t.Errorf("KindOf() = %v, %v; want %v", kind, ok, tt.kind)
			}
			if kind.IsParse() {
				t.Errorf("%v should not be a parse kind", kind)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	err := NewParseError(KindStrToRational, "1//2")
	if got, want := err.Error(), `string is not a rational fraction: "1//2"`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !errors.Is(err, ErrStrToRational) {
		t.Error("ParseError should unwrap to its sentinel")
	}
	if errors.Is(err, ErrStrToNatural) {
		t.Error("ParseError should not match another kind")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Input != "1//2" {
		t.Errorf("errors.As failed or wrong input: %+v", parseErr)
	}
	kind, ok := KindOf(err)
	if !ok || !kind.IsParse() {
		t.Errorf("KindOf() = %v, %v; want a parse kind", kind, ok)
	}
}

func TestKindNames(t *testing.T) {
	t.Parallel()
	seen := make(map[string]Kind)
	for k := KindFirstLessThanSecond; k <= KindStrToPolynomial; k++ {
		name := k.String()
		if prev, dup := seen[name]; dup {
			t.Errorf("duplicate kind name %q for %d and %d", name, prev, k)
		}
		seen[name] = k
		if k.Sentinel() == nil {
			t.Errorf("kind %s has no sentinel", name)
		}
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("unknown kind String() = %q", got)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf should not classify plain errors")
	}
}
