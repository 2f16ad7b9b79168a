package rational

import (
	"errors"
	"math/big"
	"testing"

	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/integer"
	"github.com/agbru/digitcalc/internal/natural"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  error
	}{
		{"0/1", nil},
		{"-6/4", nil},
		{"12/34", nil},
		{"5/0", apperrors.ErrDivisionByZero},
		{"5", apperrors.ErrStrToRational},
		{"1//2", apperrors.ErrStrToRational},
		{"1/2/3", apperrors.ErrStrToRational},
		{"1/-2", apperrors.ErrStrToRational},
		{"-0/2", apperrors.ErrStrToRational},
		{"/2", apperrors.ErrStrToRational},
		{"1/", apperrors.ErrStrToRational},
		{" 1/2", apperrors.ErrStrToRational},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			r, err := Parse(tt.input)
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if r.String() != tt.input {
				t.Errorf("round trip: got %q", r.String())
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	if _, err := New(integer.MustParse("3"), natural.Zero()); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("New with zero denominator: %v", err)
	}
	r := MustNew(integer.MustParse("-3"), natural.MustParse("9"))
	if r.Numerator().String() != "-3" || r.Denominator().String() != "9" {
		t.Errorf("accessors returned %s and %s", r.Numerator(), r.Denominator())
	}
}

func TestReduce(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, want string }{
		{"-6/4", "-3/2"},
		{"6/4", "3/2"},
		{"0/7", "0/1"},
		{"-5/1", "-5/1"},
		{"-10/5", "-2/1"},
		{"7/13", "7/13"},
		{"-7/13", "-7/13"},
		{"100/1000", "1/10"},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.in).Reduce()
		if err != nil || got.String() != tt.want {
			t.Errorf("Reduce(%s) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
	}

	var zero Rational
	if _, err := zero.Reduce(); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("Reduce of zero value: %v", err)
	}
}

func TestIntegerConversion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		isInt   bool
		integer string
	}{
		{"4/2", true, "2"},
		{"-9/3", true, "-3"},
		{"0/5", true, "0"},
		{"3/2", false, ""},
		{"-1/3", false, ""},
	}
	for _, tt := range tests {
		r := MustParse(tt.in)
		ok, err := r.IsInteger()
		if err != nil || ok != tt.isInt {
			t.Errorf("IsInteger(%s) = %v, %v; want %v", tt.in, ok, err, tt.isInt)
		}
		x, err := r.ToInteger()
		if !tt.isInt {
			if !errors.Is(err, apperrors.ErrRationalIsNotInteger) {
				t.Errorf("ToInteger(%s): expected ErrRationalIsNotInteger, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || x.String() != tt.integer {
			t.Errorf("ToInteger(%s) = %s, %v; want %s", tt.in, x, err, tt.integer)
		}
	}
	if got := FromInteger(integer.MustParse("-4")).String(); got != "-4/1" {
		t.Errorf("FromInteger(-4) = %s", got)
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b                 string
		sum, diff, prod, quo string
	}{
		{"1/2", "1/3", "5/6", "1/6", "1/6", "3/2"},
		{"-1/2", "1/3", "-1/6", "-5/6", "-1/6", "-3/2"},
		{"2/4", "2/6", "5/6", "1/6", "1/6", "3/2"},
		{"3/4", "-3/4", "0/1", "3/2", "-9/16", "-1/1"},
		{"-2/3", "-4/9", "-10/9", "-2/9", "8/27", "3/2"},
		{"0/5", "7/3", "7/3", "-7/3", "0/1", "0/1"},
	}
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		check := func(name string, got Rational, err error, want string) {
			t.Helper()
			if err != nil || got.String() != want {
				t.Errorf("%s(%s, %s) = %s, %v; want %s", name, tt.a, tt.b, got, err, want)
			}
		}
		s, err := a.Add(b)
		check("Add", s, err, tt.sum)
		d, err := a.Sub(b)
		check("Sub", d, err, tt.diff)
		p, err := a.Mul(b)
		check("Mul", p, err, tt.prod)
		q, err := a.Div(b)
		check("Div", q, err, tt.quo)
	}

	if _, err := MustParse("1/2").Div(MustParse("0/3")); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("Div by zero: %v", err)
	}
	if _, err := MustParse("1/2").Add(Rational{}); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("Add with zero value: %v", err)
	}
}

func TestInverse(t *testing.T) {
	t.Parallel()
	inv, err := MustParse("-3/5").Inverse()
	if err != nil || inv.String() != "-5/3" {
		t.Errorf("Inverse(-3/5) = %s, %v", inv, err)
	}
	if _, err := Zero().Inverse(); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("Inverse(0): %v", err)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	if !MustParse("2/4").Equal(MustParse("1/2")) {
		t.Error("2/4 should equal 1/2")
	}
	if MustParse("-1/2").Equal(MustParse("1/2")) {
		t.Error("-1/2 should not equal 1/2")
	}
	if !Zero().Equal(MustParse("0/9")) {
		t.Error("0/1 should equal 0/9")
	}
}

// genRational draws small fractions so sums of three stay quick.
func genRational() gopter.Gen {
	return gopter.CombineGens(
		gen.Int64Range(-100000, 100000),
		gen.Int64Range(1, 100000),
	).Map(func(v []interface{}) string {
		return integer.FromInt64(v[0].(int64)).String() + "/" + integer.FromInt64(v[1].(int64)).String()
	})
}

func ratOf(s string) *big.Rat {
	v, _ := new(big.Rat).SetString(s)
	return v
}

func TestRationalProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Reduce matches math/big", prop.ForAll(
		func(s string) bool {
			r, err := MustParse(s).Reduce()
			return err == nil && r.String() == ratOf(s).String()
		},
		genRational(),
	))

	properties.Property("Add matches math/big and commutes", prop.ForAll(
		func(a, b string) bool {
			x, y := MustParse(a), MustParse(b)
			want := new(big.Rat).Add(ratOf(a), ratOf(b)).String()
			s1, err1 := x.Add(y)
			s2, err2 := y.Add(x)
			return err1 == nil && err2 == nil && s1.String() == want && s2.String() == want
		},
		genRational(), genRational(),
	))

	properties.Property("Mul matches math/big and commutes", prop.ForAll(
		func(a, b string) bool {
			x, y := MustParse(a), MustParse(b)
			want := new(big.Rat).Mul(ratOf(a), ratOf(b)).String()
			p1, err1 := x.Mul(y)
			p2, err2 := y.Mul(x)
			return err1 == nil && err2 == nil && p1.String() == want && p2.String() == want
		},
		genRational(), genRational(),
	))

	properties.Property("Add is associative", prop.ForAll(
		func(a, b, c string) bool {
			x, y, z := MustParse(a), MustParse(b), MustParse(c)
			xy, _ := x.Add(y)
			left, _ := xy.Add(z)
			yz, _ := y.Add(z)
			right, _ := x.Add(yz)
			return left.String() == right.String()
		},
		genRational(), genRational(), genRational(),
	))

	properties.Property("Div undoes Mul", prop.ForAll(
		func(a, b string) bool {
			x, y := MustParse(a), MustParse(b)
			p, err := x.Mul(y)
			if err != nil {
				return false
			}
			q, err := p.Div(y)
			return err == nil && q.Equal(x)
		},
		genRational(), genRational().SuchThat(func(s string) bool { return !MustParse(s).IsZero() }),
	))

	properties.TestingRun(t)
}

func FuzzParseRational(f *testing.F) {
	for _, seed := range []string{"1/2", "-6/4", "0/1", "1/0", "1//2", "abc"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		r, err := Parse(s)
		if err != nil {
			return
		}
		if r.String() != s {
			t.Fatalf("Parse(%q).String() = %q", s, r.String())
		}
		if _, err := r.Reduce(); err != nil {
			t.Fatalf("Reduce(%s): %v", s, err)
		}
	})
}
