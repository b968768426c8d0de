package rational

import (
	"github.com/chaisql/rational/integer"
)

// scaled holds two fractions brought to the same denominator.
type scaled[T integer.Integer[T]] struct {
	den  T
	a, b T
}

// commonDenominator finds a denominator shared by a and b, along with their
// numerators scaled to it. check, if not nil, must accept the scaled
// numerators for a candidate denominator to be used.
//
// Candidates are tried from the cheapest to the most expensive:
// the product of the denominators, the same product after reducing a and
// then b, and finally their least common multiple.
// a and b may be reduced in place.
//
// An overflowing least common multiple is reported as a
// "common_denominator" error, any other overflow is tagged with op.
func commonDenominator[T integer.Integer[T]](a, b *Fraction[T], op string, check func(x, y T) bool) (scaled[T], error) {
	if s, ok := productDenominator(a, b, check); ok {
		return s, nil
	}

	if !a.reduced {
		a.reduce()
		if s, ok := productDenominator(a, b, check); ok {
			return s, nil
		}
	}

	if !b.reduced {
		b.reduce()
		if s, ok := productDenominator(a, b, check); ok {
			return s, nil
		}
	}

	lcm, err := integer.LCM(a.den, b.den)
	if err != nil {
		return scaled[T]{}, newOpError("common_denominator", ErrOverflow)
	}

	fa, fb := lcm.Quo(a.den), lcm.Quo(b.den)
	if !integer.CanMul(a.num, fa) || !integer.CanMul(b.num, fb) {
		return scaled[T]{}, newOpError(op, ErrOverflow)
	}

	s := scaled[T]{den: lcm, a: a.num.Mul(fa), b: b.num.Mul(fb)}
	if check != nil && !check(s.a, s.b) {
		return scaled[T]{}, newOpError(op, ErrOverflow)
	}

	return s, nil
}

func productDenominator[T integer.Integer[T]](a, b *Fraction[T], check func(x, y T) bool) (scaled[T], bool) {
	if !integer.CanMul(a.den, b.den) ||
		!integer.CanMul(a.num, b.den) ||
		!integer.CanMul(b.num, a.den) {
		return scaled[T]{}, false
	}

	s := scaled[T]{den: a.den.Mul(b.den), a: a.num.Mul(b.den), b: b.num.Mul(a.den)}
	if check != nil && !check(s.a, s.b) {
		return scaled[T]{}, false
	}

	return s, true
}
