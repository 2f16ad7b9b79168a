package natural

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/digitcalc/internal/errors"
)

func TestParseAndString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		wantErr bool
		wantLen int
	}{
		{"0", false, 1},
		{"7", false, 1},
		{"10", false, 2},
		{"123456789012345678901234567890", false, 30},
		{"", true, 0},
		{"00", true, 0},
		{"0123", true, 0},
		{"-1", true, 0},
		{"12a", true, 0},
		{" 12", true, 0},
		{"1.5", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			n, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrStrToNatural) {
					t.Fatalf("Parse(%q) error = %v, want ErrStrToNatural", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got := n.String(); got != tt.input {
				t.Errorf("round trip: expected %q, got %q", tt.input, got)
			}
			if n.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", n.Len(), tt.wantLen)
			}
		})
	}
}

func TestFromDigits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		digits  []int
		want    string
		wantErr bool
	}{
		{"single zero", []int{0}, "0", false},
		{"several digits", []int{4, 0, 2}, "402", false},
		{"empty", nil, "", true},
		{"leading zero", []int{0, 1}, "", true},
		{"digit too large", []int{1, 10}, "", true},
		{"negative digit", []int{-1}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, err := FromDigits(tt.digits)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrStrToNatural) {
					t.Errorf("expected ErrStrToNatural, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.String() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, n)
			}
		})
	}
}

func TestZeroValue(t *testing.T) {
	t.Parallel()
	var n Natural
	if !n.IsZero() || n.NonZero() {
		t.Error("zero value should be zero")
	}
	if n.String() != "0" || n.Len() != 1 {
		t.Errorf("zero value renders as %q with length %d", n.String(), n.Len())
	}
	if !n.Equal(MustParse("0")) {
		t.Error("zero value should equal parsed 0")
	}
	if got := n.Increment().String(); got != "1" {
		t.Errorf("0+1 = %s", got)
	}
}

func TestFromUint64(t *testing.T) {
	t.Parallel()
	for _, v := range []uint64{0, 1, 9, 10, 18446744073709551615} {
		n := FromUint64(v)
		if got := n.String(); got != formatUint(v) {
			t.Errorf("FromUint64(%d) = %s", v, got)
		}
	}
}

func formatUint(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf []byte
	for v > 0 {
		buf = append([]byte{byte('0' + v%10)}, buf...)
		v /= 10
	}
	return string(buf)
}

func TestCompare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b string
		want Ordering
	}{
		{"0", "0", Equal},
		{"5", "12", Less},
		{"12", "5", Greater},
		{"123", "124", Less},
		{"999", "999", Equal},
		{"1000", "999", Greater},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()
			got := Compare(MustParse(tt.a), MustParse(tt.b))
			if got != tt.want {
				t.Errorf("Compare(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if MustParse(tt.a).Cmp(MustParse(tt.b)) != int(tt.want) {
				t.Error("Cmp disagrees with Compare")
			}
		})
	}
	if Less.String() != "LESS" || Equal.String() != "EQUAL" || Greater.String() != "GREATER" {
		t.Error("unexpected Ordering names")
	}
}

func TestIncrement(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"0":    "1",
		"8":    "9",
		"9":    "10",
		"199":  "200",
		"999":  "1000",
		"1234": "1235",
	}
	for in, want := range tests {
		if got := MustParse(in).Increment().String(); got != want {
			t.Errorf("Increment(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestAdd(t *testing.T) {
	t.Parallel()
	tests := []struct{ a, b, want string }{
		{"0", "0", "0"},
		{"0", "17", "17"},
		{"5", "5", "10"},
		{"999", "1", "1000"},
		{"1", "999", "1000"},
		{"123456789", "987654321", "1111111110"},
	}
	for _, tt := range tests {
		if got := MustParse(tt.a).Add(MustParse(tt.b)).String(); got != tt.want {
			t.Errorf("%s + %s = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSub(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b    string
		want    string
		wantErr bool
	}{
		{"0", "0", "0", false},
		{"10", "1", "9", false},
		{"1000", "999", "1", false},
		{"1000", "1000", "0", false},
		{"5000", "4001", "999", false},
		{"12", "345", "", true},
		{"0", "1", "", true},
	}
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		got, err := a.Sub(b)
		if tt.wantErr {
			var arithErr *apperrors.ArithmeticError
			if !errors.As(err, &arithErr) || arithErr.Kind != apperrors.KindFirstLessThanSecond {
				t.Errorf("%s - %s: expected FirstLessThanSecond, got %v", tt.a, tt.b, err)
				continue
			}
			if len(arithErr.Operands) != 2 || arithErr.Operands[0] != tt.a || arithErr.Operands[1] != tt.b {
				t.Errorf("operands not carried: %v", arithErr.Operands)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s - %s: unexpected error %v", tt.a, tt.b, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%s - %s = %s, want %s", tt.a, tt.b, got, tt.want)
		}
		if a.String() != tt.a || b.String() != tt.b {
			t.Error("operands were modified")
		}
	}
}

func TestMulDigit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a       string
		d       int
		want    string
		wantErr bool
	}{
		{"123", 0, "0", false},
		{"0", 7, "0", false},
		{"123", 1, "123", false},
		{"99", 9, "891", false},
		{"5", 2, "10", false},
		{"5", 10, "", true},
		{"5", -1, "", true},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.a).MulDigit(tt.d)
		if tt.wantErr {
			if !errors.Is(err, apperrors.ErrIncorrectDigit) {
				t.Errorf("MulDigit(%s, %d): expected ErrIncorrectDigit, got %v", tt.a, tt.d, err)
			}
			continue
		}
		if err != nil || got.String() != tt.want {
			t.Errorf("MulDigit(%s, %d) = %s, %v; want %s", tt.a, tt.d, got, err, tt.want)
		}
	}
}

func TestMulPow10(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a       string
		k       int
		want    string
		wantErr bool
	}{
		{"0", 5, "0", false},
		{"12", 0, "12", false},
		{"12", 3, "12000", false},
		{"12", -1, "", true},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.a).MulPow10(tt.k)
		if tt.wantErr {
			if !errors.Is(err, apperrors.ErrIncorrectDegree) {
				t.Errorf("MulPow10(%s, %d): expected ErrIncorrectDegree, got %v", tt.a, tt.k, err)
			}
			continue
		}
		if err != nil || got.String() != tt.want {
			t.Errorf("MulPow10(%s, %d) = %s, %v; want %s", tt.a, tt.k, got, err, tt.want)
		}
	}
}

func TestMul(t *testing.T) {
	t.Parallel()
	tests := []struct{ a, b, want string }{
		{"0", "123", "0"},
		{"123", "0", "0"},
		{"1", "987", "987"},
		{"12", "12", "144"},
		{"1000", "1000", "1000000"},
		{"99999", "99", "9899901"},
		{"123456789", "987654321", "121932631112635269"},
	}
	for _, tt := range tests {
		if got := MustParse(tt.a).Mul(MustParse(tt.b)).String(); got != tt.want {
			t.Errorf("%s * %s = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSubMulDigit(t *testing.T) {
	t.Parallel()
	got, err := MustParse("100").SubMulDigit(MustParse("12"), 8)
	if err != nil || got.String() != "4" {
		t.Errorf("100 - 12*8 = %s, %v; want 4", got, err)
	}
	if _, err := MustParse("10").SubMulDigit(MustParse("12"), 1); !errors.Is(err, apperrors.ErrFirstLessThanSecond) {
		t.Errorf("expected ErrFirstLessThanSecond, got %v", err)
	}
	if _, err := MustParse("10").SubMulDigit(MustParse("1"), 11); !errors.Is(err, apperrors.ErrIncorrectDigit) {
		t.Errorf("expected ErrIncorrectDigit, got %v", err)
	}
}

func TestLeadingQuotientTerm(t *testing.T) {
	t.Parallel()
	tests := []struct{ a, b, want string }{
		{"5", "7", "0"},
		{"7", "7", "1"},
		{"12345", "12", "1000"},
		{"98765", "12", "8000"},
		{"100", "3", "30"},
		{"999", "1", "900"},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.a).LeadingQuotientTerm(MustParse(tt.b))
		if err != nil || got.String() != tt.want {
			t.Errorf("LeadingQuotientTerm(%s, %s) = %s, %v; want %s", tt.a, tt.b, got, err, tt.want)
		}
	}
	if _, err := MustParse("5").LeadingQuotientTerm(Zero()); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestDivMod(t *testing.T) {
	t.Parallel()
	tests := []struct{ a, b, q, r string }{
		{"0", "5", "0", "0"},
		{"4", "5", "0", "4"},
		{"5", "5", "1", "0"},
		{"100", "7", "14", "2"},
		{"12345", "12", "1028", "9"},
		{"1000000000000", "999999", "1000001", "1"},
		{"121932631112635269", "987654321", "123456789", "0"},
	}
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		q, r, err := a.DivMod(b)
		if err != nil {
			t.Fatalf("DivMod(%s, %s): %v", tt.a, tt.b, err)
		}
		if q.String() != tt.q || r.String() != tt.r {
			t.Errorf("DivMod(%s, %s) = (%s, %s), want (%s, %s)", tt.a, tt.b, q, r, tt.q, tt.r)
		}
		if d, _ := a.Div(b); d.String() != tt.q {
			t.Errorf("Div(%s, %s) = %s, want %s", tt.a, tt.b, d, tt.q)
		}
		if m, _ := a.Mod(b); m.String() != tt.r {
			t.Errorf("Mod(%s, %s) = %s, want %s", tt.a, tt.b, m, tt.r)
		}
	}

	for name, fn := range map[string]func() error{
		"Div":    func() error { _, err := MustParse("5").Div(Zero()); return err },
		"Mod":    func() error { _, err := MustParse("5").Mod(Zero()); return err },
		"DivMod": func() error { _, _, err := MustParse("5").DivMod(Zero()); return err },
	} {
		if err := fn(); !errors.Is(err, apperrors.ErrDivisionByZero) {
			t.Errorf("%s by zero: expected ErrDivisionByZero, got %v", name, err)
		}
	}
}

func TestGCDAndLCM(t *testing.T) {
	t.Parallel()
	tests := []struct{ a, b, gcd, lcm string }{
		{"12", "18", "6", "36"},
		{"18", "12", "6", "36"},
		{"7", "13", "1", "91"},
		{"100", "10", "10", "100"},
		{"1", "1", "1", "1"},
		{"123456", "7890", "6", "162344640"},
	}
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		g, err := GCD(a, b)
		if err != nil || g.String() != tt.gcd {
			t.Errorf("GCD(%s, %s) = %s, %v; want %s", tt.a, tt.b, g, err, tt.gcd)
		}
		l, err := LCM(a, b)
		if err != nil || l.String() != tt.lcm {
			t.Errorf("LCM(%s, %s) = %s, %v; want %s", tt.a, tt.b, l, err, tt.lcm)
		}
	}

	if g, err := GCD(Zero(), MustParse("42")); err != nil || g.String() != "42" {
		t.Errorf("GCD(0, 42) = %s, %v", g, err)
	}
	if _, err := GCD(Zero(), Zero()); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("GCD(0, 0): expected ErrDivisionByZero, got %v", err)
	}
	if _, err := LCM(Zero(), MustParse("3")); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("LCM(0, 3): expected ErrDivisionByZero, got %v", err)
	}
}

func TestDigitsAreCopied(t *testing.T) {
	t.Parallel()
	n := MustParse("123")
	d := n.Digits()
	d[0] = 9
	if n.String() != "123" {
		t.Errorf("mutating Digits() changed the value to %s", n)
	}
}
