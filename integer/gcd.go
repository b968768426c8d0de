package integer

import "github.com/cockroachdb/errors"

// GCD returns the greatest common divisor of a and b, using the Euclidean
// algorithm. The result is non-negative, and GCD(0, 0) is 0.
//
// If the divisor is not representable as a positive T, which only happens
// when both values are multiples of the lowest value of a bounded type,
// the lowest value is returned.
func GCD[T Integer[T]](a, b T) T {
	for b.Sign() != 0 {
		a, b = b, a.Rem(b)
	}

	if a.Sign() < 0 && CanNeg(a) {
		return a.Neg()
	}
	return a
}

// LCM returns the least common multiple of a and b, computed as
// (a / GCD(a, b)) * b. It returns ErrOverflow instead of a wrapped value
// if the final multiplication doesn't fit in T.
func LCM[T Integer[T]](a, b T) (T, error) {
	g := GCD(a, b)
	if g.Sign() == 0 {
		return g, nil
	}

	q := a.Quo(g)
	if !CanMul(q, b) {
		return zero[T](), errors.Wrapf(ErrOverflow, "lcm(%s, %s)", a, b)
	}

	return q.Mul(b), nil
}
