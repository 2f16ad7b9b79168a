package calculator

import (
	"fmt"
	"strconv"

	"github.com/agbru/digitcalc/internal/integer"
	"github.com/agbru/digitcalc/internal/natural"
	"github.com/agbru/digitcalc/internal/polynomial"
	"github.com/agbru/digitcalc/internal/rational"
)

// registerBuiltins adds every engine operation to r.
func registerBuiltins(r *DefaultRegistry) {
	groups := map[Domain][]Operation{
		DomainNatural:    naturalOps(),
		DomainInteger:    integerOps(),
		DomainRational:   rationalOps(),
		DomainPolynomial: polynomialOps(),
	}
	for domain, ops := range groups {
		for _, op := range ops {
			op.Domain = domain
			mustRegister(r, op)
		}
	}
}

// mustRegister panics when a built-in operation is malformed.
func mustRegister(r *DefaultRegistry, op Operation) {
	if err := r.Register(op); err != nil {
		panic(fmt.Sprintf("calculator: registering built-in %s: %v", op.Name, err))
	}
}

func naturalOps() []Operation {
	nn := func(f func(a, b natural.Natural) (string, error)) ApplyFunc {
		return binary(parseNatural, parseNatural, f)
	}
	return []Operation{
		{Name: "nat.cmp", Operands: "<a> <b>", Description: "Compare: LESS, EQUAL or GREATER",
			Apply: nn(func(a, b natural.Natural) (string, error) { return natural.Compare(a, b).String(), nil })},
		{Name: "nat.nonzero", Operands: "<a>", Description: "Report whether a is not zero",
			Apply: unary(parseNatural, func(a natural.Natural) (string, error) { return strconv.FormatBool(a.NonZero()), nil })},
		{Name: "nat.inc", Operands: "<a>", Description: "Add one",
			Apply: unary(parseNatural, func(a natural.Natural) (string, error) { return str(a.Increment()) })},
		{Name: "nat.add", Operands: "<a> <b>", Description: "Sum",
			Apply: nn(func(a, b natural.Natural) (string, error) { return str(a.Add(b)) })},
		{Name: "nat.sub", Operands: "<a> <b>", Description: "Difference, a must not be less than b",
			Apply: nn(func(a, b natural.Natural) (string, error) { return strErr(a.Sub(b)) })},
		{Name: "nat.muldigit", Operands: "<a> <digit>", Description: "Multiply by a single decimal digit",
			Apply: binary(parseNatural, parseSmall, func(a natural.Natural, d int) (string, error) { return strErr(a.MulDigit(d)) })},
		{Name: "nat.mulpow10", Operands: "<a> <k>", Description: "Multiply by 10^k",
			Apply:       binary(parseNatural, parseSmall, func(a natural.Natural, k int) (string, error) { return strErr(a.MulPow10(k)) }),
			ResultBound: shiftBound(1)},
		{Name: "nat.mul", Operands: "<a> <b>", Description: "Product",
			Apply: nn(func(a, b natural.Natural) (string, error) { return str(a.Mul(b)) })},
		{Name: "nat.submuldigit", Operands: "<a> <b> <digit>", Description: "a - b*digit",
			Apply: func(args []string) (string, error) {
				a, err := parseNatural(args[0])
				if err != nil {
					return "", err
				}
				b, err := parseNatural(args[1])
				if err != nil {
					return "", err
				}
				d, err := parseSmall(args[2])
				if err != nil {
					return "", err
				}
				return strErr(a.SubMulDigit(b, d))
			}},
		{Name: "nat.leadterm", Operands: "<a> <b>", Description: "Leading quotient term digit*10^k of a/b",
			Apply: nn(func(a, b natural.Natural) (string, error) { return strErr(a.LeadingQuotientTerm(b)) })},
		{Name: "nat.div", Operands: "<a> <b>", Description: "Quotient floor(a/b)",
			Apply: nn(func(a, b natural.Natural) (string, error) { return strErr(a.Div(b)) })},
		{Name: "nat.mod", Operands: "<a> <b>", Description: "Remainder a - (a/b)*b",
			Apply: nn(func(a, b natural.Natural) (string, error) { return strErr(a.Mod(b)) })},
		{Name: "nat.divmod", Operands: "<a> <b>", Description: "Quotient and remainder",
			Apply: nn(func(a, b natural.Natural) (string, error) { return pair(a.DivMod(b)) })},
		{Name: "nat.gcd", Operands: "<a> <b>", Description: "Greatest common divisor",
			Apply: nn(func(a, b natural.Natural) (string, error) { return strErr(natural.GCD(a, b)) })},
		{Name: "nat.lcm", Operands: "<a> <b>", Description: "Least common multiple",
			Apply: nn(func(a, b natural.Natural) (string, error) { return strErr(natural.LCM(a, b)) })},
	}
}

func integerOps() []Operation {
	ii := func(f func(x, y integer.Integer) (string, error)) ApplyFunc {
		return binary(parseInteger, parseInteger, f)
	}
	return []Operation{
		{Name: "int.abs", Operands: "<x>", Description: "Magnitude as a natural",
			Apply: unary(parseInteger, func(x integer.Integer) (string, error) { return str(x.Abs()) })},
		{Name: "int.sign", Operands: "<x>", Description: "Sign class: ZERO, NEGATIVE or POSITIVE",
			Apply: unary(parseInteger, func(x integer.Integer) (string, error) { return str(x.Sign()) })},
		{Name: "int.neg", Operands: "<x>", Description: "Negation",
			Apply: unary(parseInteger, func(x integer.Integer) (string, error) { return str(x.Neg()) })},
		{Name: "int.fromnat", Operands: "<n>", Description: "Promote a natural to an integer",
			Apply: unary(parseNatural, func(n natural.Natural) (string, error) { return str(integer.FromNatural(n)) })},
		{Name: "int.tonat", Operands: "<x>", Description: "Demote a non-negative integer to a natural",
			Apply: unary(parseInteger, func(x integer.Integer) (string, error) { return strErr(x.ToNatural()) })},
		{Name: "int.add", Operands: "<x> <y>", Description: "Sum",
			Apply: ii(func(x, y integer.Integer) (string, error) { return str(x.Add(y)) })},
		{Name: "int.sub", Operands: "<x> <y>", Description: "Difference",
			Apply: ii(func(x, y integer.Integer) (string, error) { return str(x.Sub(y)) })},
		{Name: "int.mul", Operands: "<x> <y>", Description: "Product",
			Apply: ii(func(x, y integer.Integer) (string, error) { return str(x.Mul(y)) })},
		{Name: "int.div", Operands: "<x> <y>", Description: "Quotient, -(q+1) when the signs differ",
			Apply: ii(func(x, y integer.Integer) (string, error) { return strErr(x.Div(y)) })},
		{Name: "int.mod", Operands: "<x> <y>", Description: "Remainder x - div(x, y)*y",
			Apply: ii(func(x, y integer.Integer) (string, error) { return strErr(x.Mod(y)) })},
	}
}

func rationalOps() []Operation {
	rr := func(f func(r, s rational.Rational) (string, error)) ApplyFunc {
		return binary(parseRational, parseRational, f)
	}
	return []Operation{
		{Name: "rat.reduce", Operands: "<r>", Description: "Lowest terms",
			Apply: unary(parseRational, func(r rational.Rational) (string, error) { return strErr(r.Reduce()) })},
		{Name: "rat.isint", Operands: "<r>", Description: "Report whether r is an integer",
			Apply: unary(parseRational, func(r rational.Rational) (string, error) {
				ok, err := r.IsInteger()
				if err != nil {
					return "", err
				}
				return strconv.FormatBool(ok), nil
			})},
		{Name: "rat.fromint", Operands: "<x>", Description: "Integer as x/1",
			Apply: unary(parseInteger, func(x integer.Integer) (string, error) { return str(rational.FromInteger(x)) })},
		{Name: "rat.toint", Operands: "<r>", Description: "Integer value of an integral rational",
			Apply: unary(parseRational, func(r rational.Rational) (string, error) { return strErr(r.ToInteger()) })},
		{Name: "rat.neg", Operands: "<r>", Description: "Negation",
			Apply: unary(parseRational, func(r rational.Rational) (string, error) { return str(r.Neg()) })},
		{Name: "rat.inv", Operands: "<r>", Description: "Reciprocal",
			Apply: unary(parseRational, func(r rational.Rational) (string, error) { return strErr(r.Inverse()) })},
		{Name: "rat.add", Operands: "<r> <s>", Description: "Reduced sum",
			Apply: rr(func(r, s rational.Rational) (string, error) { return strErr(r.Add(s)) })},
		{Name: "rat.sub", Operands: "<r> <s>", Description: "Reduced difference",
			Apply: rr(func(r, s rational.Rational) (string, error) { return strErr(r.Sub(s)) })},
		{Name: "rat.mul", Operands: "<r> <s>", Description: "Reduced product",
			Apply: rr(func(r, s rational.Rational) (string, error) { return strErr(r.Mul(s)) })},
		{Name: "rat.div", Operands: "<r> <s>", Description: "Reduced quotient",
			Apply: rr(func(r, s rational.Rational) (string, error) { return strErr(r.Div(s)) })},
	}
}

func polynomialOps() []Operation {
	pp := func(f func(p, q polynomial.Polynomial) (string, error)) ApplyFunc {
		return binary(parsePolynomial, parsePolynomial, f)
	}
	p1 := func(f func(p polynomial.Polynomial) (string, error)) ApplyFunc {
		return unary(parsePolynomial, f)
	}
	return []Operation{
		{Name: "poly.normalize", Operands: "<p>", Description: "Drop leading zero coefficients",
			Apply: p1(func(p polynomial.Polynomial) (string, error) { return str(p.Normalize()) })},
		{Name: "poly.degree", Operands: "<p>", Description: "Degree of the normalized polynomial",
			Apply: p1(func(p polynomial.Polynomial) (string, error) { return strconv.Itoa(p.Degree()), nil })},
		{Name: "poly.lead", Operands: "<p>", Description: "Leading coefficient",
			Apply: p1(func(p polynomial.Polynomial) (string, error) { return str(p.LeadingCoefficient()) })},
		{Name: "poly.content", Operands: "<p>", Description: "GCD of numerators over LCM of denominators",
			Apply: p1(func(p polynomial.Polynomial) (string, error) { return str(p.Content()) })},
		{Name: "poly.deriv", Operands: "<p>", Description: "Derivative",
			Apply: p1(func(p polynomial.Polynomial) (string, error) { return str(p.Derivative()) })},
		{Name: "poly.squarefree", Operands: "<p>", Description: "Monic square-free part",
			Apply: p1(func(p polynomial.Polynomial) (string, error) { return strErr(p.SquareFree()) })},
		{Name: "poly.add", Operands: "<p> <q>", Description: "Sum",
			Apply: pp(func(p, q polynomial.Polynomial) (string, error) { return str(p.Add(q)) })},
		{Name: "poly.sub", Operands: "<p> <q>", Description: "Difference",
			Apply: pp(func(p, q polynomial.Polynomial) (string, error) { return str(p.Sub(q)) })},
		{Name: "poly.mul", Operands: "<p> <q>", Description: "Product",
			Apply: pp(func(p, q polynomial.Polynomial) (string, error) { return str(p.Mul(q)) })},
		{Name: "poly.div", Operands: "<p> <q>", Description: "Quotient of long division",
			Apply: pp(func(p, q polynomial.Polynomial) (string, error) { return strErr(p.Div(q)) })},
		{Name: "poly.mod", Operands: "<p> <q>", Description: "Remainder of long division",
			Apply: pp(func(p, q polynomial.Polynomial) (string, error) { return strErr(p.Mod(q)) })},
		{Name: "poly.divmod", Operands: "<p> <q>", Description: "Quotient and remainder",
			Apply: pp(func(p, q polynomial.Polynomial) (string, error) { return pair(p.DivMod(q)) })},
		{Name: "poly.gcd", Operands: "<p> <q>", Description: "Euclidean GCD",
			Apply: pp(func(p, q polynomial.Polynomial) (string, error) { return strErr(polynomial.GCD(p, q)) })},
		{Name: "poly.scale", Operands: "<p> <r>", Description: "Multiply by a rational",
			Apply: binary(parsePolynomial, parseRational, func(p polynomial.Polynomial, r rational.Rational) (string, error) {
				return strErr(p.Scale(r))
			})},
		{Name: "poly.shift", Operands: "<p> <k>", Description: "Multiply by x^k",
			Apply: binary(parsePolynomial, parseSmall, func(p polynomial.Polynomial, k int) (string, error) {
				return strErr(p.Shift(k))
			}),
			// Each power adds a "; 0/1" term.
			ResultBound: shiftBound(len(polynomial.Separator) + len("0/1"))},
		{Name: "poly.eval", Operands: "<p> <x>", Description: "Value at a rational point",
			Apply: binary(parsePolynomial, parseRational, func(p polynomial.Polynomial, x rational.Rational) (string, error) {
				return strErr(p.Evaluate(x))
			})},
	}
}
