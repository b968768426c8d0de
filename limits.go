package rational

import (
	"github.com/chaisql/rational/integer"
)

// Limits describes the fractions at the edges of what a Fraction[T] can
// represent. For unbounded types, only RoundError is meaningful and
// the other fields are zero.
type Limits[T integer.Integer[T]] struct {
	Bounded bool
	// Min is the smallest positive fraction.
	Min Fraction[T]
	// Lowest is the most negative fraction.
	Lowest Fraction[T]
	// Max is the largest fraction.
	Max Fraction[T]
	// Epsilon is the difference between 1 and the next fraction above 1.
	Epsilon Fraction[T]
	// RoundError is the largest error introduced by arithmetic operations,
	// which are exact.
	RoundError Fraction[T]
}

// LimitsOf returns the limits of Fraction[T].
func LimitsOf[T integer.Integer[T]]() Limits[T] {
	var zero T
	l := zero.Limits()
	if !l.Bounded {
		return Limits[T]{}
	}

	one := zero.FromInt64(1)
	return Limits[T]{
		Bounded: true,
		Min:     Fraction[T]{num: one, den: l.Max, reduced: true},
		Lowest:  Fraction[T]{num: l.Min, den: one, reduced: true},
		Max:     Fraction[T]{num: l.Max, den: one, reduced: true},
		Epsilon: Fraction[T]{num: one, den: l.Max.Sub(one), reduced: true},
	}
}
