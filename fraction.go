package rational

import (
	"github.com/chaisql/rational/integer"
)

// Fraction is an exact rational number: a numerator and a denominator of
// type T. The denominator is always positive, the sign is carried by the
// numerator.
//
// Fraction has value semantics and can be freely copied. The zero value is
// the fraction 0/1.
//
// Methods with a value receiver never modify the fraction, even when they
// need to reduce it to avoid an overflow: the reduction happens on a copy.
// Methods with a pointer receiver modify the fraction in place, and leave it
// untouched when they return an error. They must not be called concurrently
// on the same fraction.
type Fraction[T integer.Integer[T]] struct {
	num T
	den T
	// reduced is true if num and den are known to be coprime.
	// It is never required to be set.
	reduced bool
}

// New returns the fraction n/d.
// It returns ErrDenominatorIsZero if d is zero, and ErrOverflow
// if the sign of d cannot be moved to the numerator, which only happens
// for bounded types when both values cannot be negated, even after reduction.
func New[T integer.Integer[T]](n, d T) (Fraction[T], error) {
	f := Fraction[T]{num: n, den: d}
	if err := f.normalize("New"); err != nil {
		return Fraction[T]{}, err
	}

	return f, nil
}

// MustNew is like New but panics on error.
func MustNew[T integer.Integer[T]](n, d T) Fraction[T] {
	f, err := New(n, d)
	if err != nil {
		panic(err)
	}
	return f
}

// FromInteger returns the fraction n/1.
func FromInteger[T integer.Integer[T]](n T) Fraction[T] {
	return Fraction[T]{num: n, den: n.FromInt64(1), reduced: true}
}

// canon returns f with the zero value turned into an explicit 0/1.
func (f Fraction[T]) canon() Fraction[T] {
	if f.den.Sign() == 0 {
		return Fraction[T]{num: f.num, den: f.den.FromInt64(1), reduced: true}
	}
	return f
}

// normalize moves the sign of the denominator to the numerator.
// It reduces the fraction first if negating doesn't fit in T.
func (f *Fraction[T]) normalize(op string) error {
	switch f.den.Sign() {
	case 0:
		return newOpError(op, ErrDenominatorIsZero)
	case 1:
		return nil
	}

	if !integer.CanNeg(f.num) || !integer.CanNeg(f.den) {
		f.reduce()
		// the gcd of two multiples of the lowest value of T
		// is negative, in which case the reduction flipped both signs.
		if f.den.Sign() > 0 {
			return nil
		}
		if !integer.CanNeg(f.num) || !integer.CanNeg(f.den) {
			return newOpError(op, ErrOverflow)
		}
	}

	f.num = f.num.Neg()
	f.den = f.den.Neg()
	return nil
}

// reduce divides both terms by their gcd.
func (f *Fraction[T]) reduce() {
	if f.reduced {
		return
	}

	g := integer.GCD(f.num, f.den)
	if g.Sign() != 0 {
		f.num = f.num.Quo(g)
		f.den = f.den.Quo(g)
	}
	f.reduced = true
}

// Numerator returns the numerator of f.
func (f Fraction[T]) Numerator() T {
	return f.num
}

// Denominator returns the denominator of f. It is always positive.
func (f Fraction[T]) Denominator() T {
	return f.canon().den
}

// SetNumerator replaces the numerator of f.
func (f *Fraction[T]) SetNumerator(n T) {
	g := f.canon()
	g.num = n
	g.reduced = false
	*f = g
}

// SetDenominator replaces the denominator of f and normalizes its sign.
// It returns ErrDenominatorIsZero if d is zero.
func (f *Fraction[T]) SetDenominator(d T) error {
	g := f.canon()
	g.den = d
	g.reduced = false
	if err := g.normalize("SetDenominator"); err != nil {
		return err
	}

	*f = g
	return nil
}

// Reduce divides the numerator and the denominator by their greatest common
// divisor. It does nothing if f is already known to be reduced.
func (f *Fraction[T]) Reduce() {
	g := f.canon()
	g.reduce()
	*f = g
}

// IsReduced reports whether f is known to be in lowest terms.
// It returns the state recorded by the last operation and never computes
// anything: a false result doesn't mean f can be reduced.
func (f Fraction[T]) IsReduced() bool {
	return f.canon().reduced
}

// Reduced returns f in lowest terms.
func (f Fraction[T]) Reduced() Fraction[T] {
	g := f.canon()
	g.reduce()
	return g
}

// Invert swaps the numerator and the denominator of f.
// It returns ErrDenominatorIsZero if the numerator of f is zero.
func (f *Fraction[T]) Invert() error {
	g := f.canon()
	g.num, g.den = g.den, g.num
	if err := g.normalize("Invert"); err != nil {
		return err
	}

	*f = g
	return nil
}

// Inverted returns 1/f.
func (f Fraction[T]) Inverted() (Fraction[T], error) {
	if err := f.Invert(); err != nil {
		return Fraction[T]{}, err
	}
	return f, nil
}

// Value returns the numerator divided by the denominator,
// truncated toward zero.
func (f Fraction[T]) Value() T {
	g := f.canon()
	return g.num.Quo(g.den)
}

// Sign returns -1, 0 or +1 depending on the sign of f.
func (f Fraction[T]) Sign() int {
	return f.num.Sign()
}

// IsZero reports whether f equals zero.
func (f Fraction[T]) IsZero() bool {
	return f.num.Sign() == 0
}

// Swap exchanges the values of f and other, including their reduction state.
func (f *Fraction[T]) Swap(other *Fraction[T]) {
	*f, *other = *other, *f
}
