package rational

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chaisql/rational/integer"
)

// String returns f as "<numerator>/<denominator>".
func (f Fraction[T]) String() string {
	g := f.canon()
	return g.num.String() + "/" + g.den.String()
}

// Parse parses a fraction written as "<numerator>/<denominator>".
// Spaces are allowed around each integer. The fraction is not reduced.
func Parse[T integer.Integer[T]](s string) (Fraction[T], error) {
	ns, ds, ok := strings.Cut(s, "/")
	if !ok {
		return Fraction[T]{}, inputError("Parse", nil, "missing '/' in %q", s)
	}

	return parseTerms[T]("Parse", strings.TrimSpace(ns), strings.TrimSpace(ds))
}

// MustParse is like Parse but panics on error.
func MustParse[T integer.Integer[T]](s string) Fraction[T] {
	f, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return f
}

func parseTerms[T integer.Integer[T]](op, ns, ds string) (Fraction[T], error) {
	var zero T

	n, err := zero.Parse(ns)
	if err != nil {
		return Fraction[T]{}, inputError(op, err, "invalid numerator %q", ns)
	}

	d, err := zero.Parse(ds)
	if err != nil {
		return Fraction[T]{}, inputError(op, err, "invalid denominator %q", ds)
	}

	f := Fraction[T]{num: n, den: d}
	if err := f.normalize(op); err != nil {
		return Fraction[T]{}, err
	}

	return f, nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (f Fraction[T]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (f *Fraction[T]) UnmarshalText(text []byte) error {
	g, err := Parse[T](string(text))
	if err != nil {
		return err
	}

	*f = g
	return nil
}

// MarshalJSON encodes f as a JSON string.
func (f Fraction[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON decodes a fraction from a JSON string, or from a JSON integer
// which is used as the numerator of a fraction with denominator 1.
// A JSON null leaves f unchanged.
func (f *Fraction[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] != '"' {
		g, err := parseTerms[T]("UnmarshalJSON", string(data), "1")
		if err != nil {
			return err
		}
		*f = g
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return inputError("UnmarshalJSON", err, "invalid JSON fraction")
	}

	return f.UnmarshalText([]byte(s))
}

// Scan implements the fmt.Scanner interface. It reads an integer, a '/'
// and another integer, skipping spaces between them.
func (f *Fraction[T]) Scan(state fmt.ScanState, verb rune) error {
	if verb != 'v' && verb != 's' {
		return inputError("Scan", nil, "unsupported verb %%%c", verb)
	}

	ns, err := scanInteger(state)
	if err != nil {
		return err
	}

	state.SkipSpace()
	r, _, err := state.ReadRune()
	if err != nil {
		return inputError("Scan", err, "missing '/'")
	}
	if r != '/' {
		return inputError("Scan", nil, "expected '/', got %q", r)
	}

	ds, err := scanInteger(state)
	if err != nil {
		return err
	}

	g, err := parseTerms[T]("Scan", ns, ds)
	if err != nil {
		return err
	}

	*f = g
	return nil
}

func scanInteger(state fmt.ScanState) (string, error) {
	first := true
	tok, err := state.Token(true, func(r rune) bool {
		ok := (r >= '0' && r <= '9') || (first && (r == '-' || r == '+'))
		first = false
		return ok
	})
	if err != nil {
		return "", inputError("Scan", err, "cannot read integer")
	}
	if len(tok) == 0 {
		return "", inputError("Scan", nil, "missing integer")
	}

	return string(tok), nil
}
