// Package calculator exposes the numeric engines as named operations over
// textual operands. A registry maps names such as "nat.add" or "poly.gcd"
// to an Operation, and the Evaluator runs them with operand limits,
// cancellation, logging and metrics.
package calculator

import (
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/integer"
	"github.com/agbru/digitcalc/internal/natural"
	"github.com/agbru/digitcalc/internal/polynomial"
	"github.com/agbru/digitcalc/internal/rational"
)

// Domain names the numeric engine an operation belongs to.
type Domain string

// Engine domains.
const (
	DomainNatural    Domain = "natural"
	DomainInteger    Domain = "integer"
	DomainRational   Domain = "rational"
	DomainPolynomial Domain = "polynomial"
)

// RemainderSeparator joins a quotient and a remainder in DivMod results.
const RemainderSeparator = " rem "

// ApplyFunc evaluates an operation on already counted operands.
type ApplyFunc func(args []string) (string, error)

// Operation describes one registered computation.
type Operation struct {
	// Name is the registry key, e.g. "int.div".
	Name string
	// Domain is the engine that performs the computation.
	Domain Domain
	// Operands documents the expected operands, e.g. "<a> <b>".
	Operands string
	// Description is a one-line summary shown by -list and /operations.
	Description string
	// Apply performs the computation.
	Apply ApplyFunc
	// ResultBound estimates the length of the result in characters before
	// Apply runs. It is set for operations whose result grows with the
	// value of an operand rather than its length.
	ResultBound func(args []string) int
}

// shiftBound bounds the result of shifting base by the count operand when
// each unit of the count adds perUnit characters. Unparsable or negative
// counts are left to Apply to reject.
func shiftBound(perUnit int) func(args []string) int {
	return func(args []string) int {
		base := len(args[0])
		k, err := strconv.Atoi(args[1])
		if err != nil || k <= 0 {
			return base
		}
		if k > (math.MaxInt-base)/perUnit {
			return math.MaxInt
		}
		return base + k*perUnit
	}
}

// Arity returns the number of operands Apply expects.
func (o Operation) Arity() int { return len(strings.Fields(o.Operands)) }

// parser reads one textual operand.
type parser[T any] func(string) (T, error)

func unary[T any](parse parser[T], f func(T) (string, error)) ApplyFunc {
	return func(args []string) (string, error) {
		a, err := parse(args[0])
		if err != nil {
			return "", err
		}
		return f(a)
	}
}

func binary[A, B any](pa parser[A], pb parser[B], f func(A, B) (string, error)) ApplyFunc {
	return func(args []string) (string, error) {
		a, err := pa(args[0])
		if err != nil {
			return "", err
		}
		b, err := pb(args[1])
		if err != nil {
			return "", err
		}
		return f(a, b)
	}
}

// str formats a value returned without an error.
func str[T interface{ String() string }](v T) (string, error) { return v.String(), nil }

// strErr formats a value returned with an error.
func strErr[T interface{ String() string }](v T, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// pair formats a quotient and remainder.
func pair[T interface{ String() string }](q, r T, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return q.String() + RemainderSeparator + r.String(), nil
}

var (
	parseNatural    parser[natural.Natural]       = natural.Parse
	parseInteger    parser[integer.Integer]       = integer.Parse
	parseRational   parser[rational.Rational]     = rational.Parse
	parsePolynomial parser[polynomial.Polynomial] = polynomial.Parse
)

// parseSmall reads a machine-sized integer operand such as a digit or a
// power of ten.
func parseSmall(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.NewParseError(apperrors.KindStrToInteger, s)
	}
	return v, nil
}
