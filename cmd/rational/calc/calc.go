// Package calc evaluates fraction expressions for the rational CLI.
//
// An expression is one of:
//
//	A                a fraction or an integer
//	A op B           op is one of + - * / % == != < > <= >=
//	fn A             fn is one of neg, abs, inv, reduce, value, hash
//
// Operators and operands must be separated by spaces, so that the
// division operator can be told apart from the fraction bar: "1/2 / 3".
package calc

import (
	"strconv"
	"strings"

	"github.com/chaisql/rational"
	"github.com/chaisql/rational/integer"
	"github.com/cockroachdb/errors"
)

// ErrSyntax is returned for expressions that don't follow the grammar.
var ErrSyntax = errors.New("syntax error")

// Evaluator evaluates one expression and returns its result as text.
type Evaluator interface {
	Eval(expr string) (string, error)
}

// Options configures an Evaluator.
type Options struct {
	// Int is the integer type of numerators and denominators:
	// int8, int16, int32, int64 or big.
	Int string
	// Reduce prints fraction results in lowest terms.
	Reduce bool
}

// IntTypes lists the values accepted by Options.Int.
var IntTypes = []string{"int8", "int16", "int32", "int64", "big"}

// New returns an Evaluator for the integer type named by opts.Int.
func New(opts Options) (Evaluator, error) {
	switch opts.Int {
	case "int8":
		return &evaluator[integer.Int8]{reduce: opts.Reduce}, nil
	case "int16":
		return &evaluator[integer.Int16]{reduce: opts.Reduce}, nil
	case "int32":
		return &evaluator[integer.Int32]{reduce: opts.Reduce}, nil
	case "", "int64":
		return &evaluator[integer.Int64]{reduce: opts.Reduce}, nil
	case "big":
		return &evaluator[integer.Big]{reduce: opts.Reduce}, nil
	}

	return nil, errors.Errorf("unknown integer type %q, expected one of %s", opts.Int, strings.Join(IntTypes, ", "))
}

type evaluator[T integer.Integer[T]] struct {
	reduce bool
}

func (e *evaluator[T]) Eval(expr string) (string, error) {
	fields := strings.Fields(expr)

	switch len(fields) {
	case 1:
		f, err := e.operand(fields[0])
		if err != nil {
			return "", err
		}
		return e.format(f), nil
	case 2:
		f, err := e.operand(fields[1])
		if err != nil {
			return "", err
		}
		return e.unary(fields[0], f)
	case 3:
		a, err := e.operand(fields[0])
		if err != nil {
			return "", err
		}
		b, err := e.operand(fields[2])
		if err != nil {
			return "", err
		}
		return e.binary(fields[1], a, b)
	}

	return "", errors.Wrapf(ErrSyntax, "cannot evaluate %q", expr)
}

// operand parses a fraction, or an integer n as n/1.
func (e *evaluator[T]) operand(s string) (rational.Fraction[T], error) {
	if strings.Contains(s, "/") {
		return rational.Parse[T](s)
	}

	var zero T
	n, err := zero.Parse(s)
	if err != nil {
		return rational.Fraction[T]{}, errors.Wrapf(ErrSyntax, "invalid operand %q", s)
	}
	return rational.FromInteger(n), nil
}

func (e *evaluator[T]) unary(fn string, f rational.Fraction[T]) (string, error) {
	var (
		r   rational.Fraction[T]
		err error
	)

	switch fn {
	case "neg", "-":
		r, err = f.Neg()
	case "abs":
		r, err = f.Abs()
	case "inv":
		r, err = f.Inverted()
	case "reduce":
		return f.Reduced().String(), nil
	case "value":
		return f.Value().String(), nil
	case "hash":
		return strconv.FormatUint(f.Hash(), 16), nil
	default:
		return "", errors.Wrapf(ErrSyntax, "unknown function %q", fn)
	}
	if err != nil {
		return "", err
	}

	return e.format(r), nil
}

func (e *evaluator[T]) binary(op string, a, b rational.Fraction[T]) (string, error) {
	var arith func(rational.Fraction[T]) (rational.Fraction[T], error)
	var cmp func(rational.Fraction[T]) (bool, error)

	switch op {
	case "+":
		arith = a.Add
	case "-":
		arith = a.Sub
	case "*":
		arith = a.Mul
	case "/":
		arith = a.Div
	case "%":
		arith = a.Mod
	case "==":
		cmp = a.EQ
	case "!=":
		cmp = a.NEQ
	case "<":
		cmp = a.LT
	case ">":
		cmp = a.GT
	case "<=":
		cmp = a.LTE
	case ">=":
		cmp = a.GTE
	default:
		return "", errors.Wrapf(ErrSyntax, "unknown operator %q", op)
	}

	if cmp != nil {
		ok, err := cmp(b)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(ok), nil
	}

	r, err := arith(b)
	if err != nil {
		return "", err
	}
	return e.format(r), nil
}

func (e *evaluator[T]) format(f rational.Fraction[T]) string {
	if e.reduce {
		f = f.Reduced()
	}
	return f.String()
}
