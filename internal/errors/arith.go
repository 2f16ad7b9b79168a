package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one variant of the closed failure taxonomy shared by the
// numeric engines and the parse/format boundary.
type Kind int

// Arithmetic kinds are raised by the engines; parse kinds by the textual
// boundary and by the checked constructors.
const (
	KindFirstLessThanSecond Kind = iota + 1
	KindIncorrectDigit
	KindIncorrectDegree
	KindConvertNegativeToNatural
	KindDivisionByZero
	KindRationalIsNotInteger

	KindStrToNatural
	KindStrToInteger
	KindStrToRational
	KindStrToPolynomial
)

// Sentinel errors, one per Kind. Every *ArithmeticError and *ParseError
// unwraps to the sentinel of its kind.
var (
	ErrFirstLessThanSecond      = errors.New("first operand is less than second")
	ErrIncorrectDigit           = errors.New("value is not a decimal digit")
	ErrIncorrectDegree          = errors.New("power of ten must not be negative")
	ErrConvertNegativeToNatural = errors.New("negative integer cannot be converted to a natural")
	ErrDivisionByZero           = errors.New("division by zero")
	ErrRationalIsNotInteger     = errors.New("rational is not an integer")

	ErrStrToNatural    = errors.New("string is not a natural number")
	ErrStrToInteger    = errors.New("string is not an integer")
	ErrStrToRational   = errors.New("string is not a rational fraction")
	ErrStrToPolynomial = errors.New("string is not a polynomial")
)

var kindNames = map[Kind]string{
	KindFirstLessThanSecond:      "FirstLessThanSecond",
	KindIncorrectDigit:           "IncorrectDigit",
	KindIncorrectDegree:          "IncorrectDegree",
	KindConvertNegativeToNatural: "ConvertNegativeToNatural",
	KindDivisionByZero:           "DivisionByZero",
	KindRationalIsNotInteger:     "RationalIsNotInteger",
	KindStrToNatural:             "StrToNatural",
	KindStrToInteger:             "StrToInteger",
	KindStrToRational:            "StrToRational",
	KindStrToPolynomial:          "StrToPolynomial",
}

var kindSentinels = map[Kind]error{
	KindFirstLessThanSecond:      ErrFirstLessThanSecond,
	KindIncorrectDigit:           ErrIncorrectDigit,
	KindIncorrectDegree:          ErrIncorrectDegree,
	KindConvertNegativeToNatural: ErrConvertNegativeToNatural,
	KindDivisionByZero:           ErrDivisionByZero,
	KindRationalIsNotInteger:     ErrRationalIsNotInteger,
	KindStrToNatural:             ErrStrToNatural,
	KindStrToInteger:             ErrStrToInteger,
	KindStrToRational:            ErrStrToRational,
	KindStrToPolynomial:          ErrStrToPolynomial,
}

// String returns the stable name of the kind, e.g. "DivisionByZero".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsParse reports whether k belongs to the parse boundary.
func (k Kind) IsParse() bool {
	return k >= KindStrToNatural && k <= KindStrToPolynomial
}

// Sentinel returns the sentinel error matching k, or nil for unknown kinds.
func (k Kind) Sentinel() error { return kindSentinels[k] }

// ArithmeticError is raised by an engine operation. It carries the offending
// operands in their canonical textual form for diagnostics.
type ArithmeticError struct {
	Kind     Kind
	Op       string
	Operands []string
}

// NewArithmeticError builds an *ArithmeticError for the given kind and operation.
func NewArithmeticError(kind Kind, op string, operands ...string) error {
	return &ArithmeticError{Kind: kind, Op: op, Operands: operands}
}

func (e *ArithmeticError) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if s := e.Kind.Sentinel(); s != nil {
		b.WriteString(s.Error())
	} else {
		b.WriteString(e.Kind.String())
	}
	if len(e.Operands) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(e.Operands, ", "))
	}
	return b.String()
}

// Unwrap returns the sentinel of the error kind so errors.Is works.
func (e *ArithmeticError) Unwrap() error { return e.Kind.Sentinel() }

// ParseError reports malformed textual input at the parse boundary.
type ParseError struct {
	Kind  Kind
	Input string
}

// NewParseError builds a *ParseError for the given parse kind.
func NewParseError(kind Kind, input string) error {
	return &ParseError{Kind: kind, Input: input}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind.Sentinel(), e.Input)
}

// Unwrap returns the sentinel of the error kind.
func (e *ParseError) Unwrap() error { return e.Kind.Sentinel() }

// KindOf extracts the taxonomy kind from anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var arithErr *ArithmeticError
	if errors.As(err, &arithErr) {
		return arithErr.Kind, true
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind, true
	}
	return 0, false
}
