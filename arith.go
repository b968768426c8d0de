package rational

import (
	"github.com/chaisql/rational/integer"
)

// AddAssign sets f to f + other.
func (f *Fraction[T]) AddAssign(other Fraction[T]) error {
	a, b := f.canon(), other.canon()
	s, err := commonDenominator(&a, &b, "Add", integer.CanAdd[T])
	if err != nil {
		return err
	}

	*f = Fraction[T]{num: s.a.Add(s.b), den: s.den}
	return nil
}

// Add returns f + other.
func (f Fraction[T]) Add(other Fraction[T]) (Fraction[T], error) {
	if err := f.AddAssign(other); err != nil {
		return Fraction[T]{}, err
	}
	return f, nil
}

// SubAssign sets f to f - other.
func (f *Fraction[T]) SubAssign(other Fraction[T]) error {
	a, b := f.canon(), other.canon()
	s, err := commonDenominator(&a, &b, "Sub", integer.CanSub[T])
	if err != nil {
		return err
	}

	*f = Fraction[T]{num: s.a.Sub(s.b), den: s.den}
	return nil
}

// Sub returns f - other.
func (f Fraction[T]) Sub(other Fraction[T]) (Fraction[T], error) {
	if err := f.SubAssign(other); err != nil {
		return Fraction[T]{}, err
	}
	return f, nil
}

// MulAssign sets f to f * other.
//
// The terms are multiplied directly when possible. Otherwise the operands
// are reduced, then the numerator of each operand is cancelled against the
// denominator of the other before multiplying.
func (f *Fraction[T]) MulAssign(other Fraction[T]) error {
	return f.mul(other, "Mul")
}

func (f *Fraction[T]) mul(other Fraction[T], op string) error {
	a, b := f.canon(), other.canon()

	if r, ok := mulTerms(a.num, a.den, b.num, b.den); ok {
		*f = r
		return nil
	}

	if !a.reduced {
		a.reduce()
		if r, ok := mulTerms(a.num, a.den, b.num, b.den); ok {
			*f = r
			return nil
		}
	}

	if !b.reduced {
		b.reduce()
		if r, ok := mulTerms(a.num, a.den, b.num, b.den); ok {
			*f = r
			return nil
		}
	}

	// denominators are positive, so neither gcd can be zero
	g := integer.GCD(a.num, b.den)
	an, bd := a.num.Quo(g), b.den.Quo(g)
	if r, ok := mulTerms(an, a.den, b.num, bd); ok {
		*f = r
		return nil
	}

	g = integer.GCD(a.den, b.num)
	ad, bn := a.den.Quo(g), b.num.Quo(g)
	if r, ok := mulTerms(an, ad, bn, bd); ok {
		// both operands are reduced at this point and every
		// cross factor has been cancelled.
		r.reduced = true
		*f = r
		return nil
	}

	return newOpError(op, ErrOverflow)
}

func mulTerms[T integer.Integer[T]](an, ad, bn, bd T) (Fraction[T], bool) {
	if !integer.CanMul(an, bn) || !integer.CanMul(ad, bd) {
		return Fraction[T]{}, false
	}

	return Fraction[T]{num: an.Mul(bn), den: ad.Mul(bd)}, true
}

// Mul returns f * other.
func (f Fraction[T]) Mul(other Fraction[T]) (Fraction[T], error) {
	if err := f.MulAssign(other); err != nil {
		return Fraction[T]{}, err
	}
	return f, nil
}

// DivAssign sets f to f / other.
// It returns ErrDenominatorIsZero if other is zero.
func (f *Fraction[T]) DivAssign(other Fraction[T]) error {
	inv, err := other.Inverted()
	if err != nil {
		return err
	}

	return f.mul(inv, "Div")
}

// Div returns f / other.
func (f Fraction[T]) Div(other Fraction[T]) (Fraction[T], error) {
	if err := f.DivAssign(other); err != nil {
		return Fraction[T]{}, err
	}
	return f, nil
}

// ModAssign sets f to the remainder of f / other, truncated toward zero.
// The result has the sign of f.
// It returns ErrDivisionByZero if other is zero.
func (f *Fraction[T]) ModAssign(other Fraction[T]) error {
	if other.IsZero() {
		return newOpError("Mod", ErrDivisionByZero)
	}

	a, b := f.canon(), other.canon()
	s, err := commonDenominator(&a, &b, "Mod", nil)
	if err != nil {
		return err
	}

	*f = Fraction[T]{num: s.a.Rem(s.b), den: s.den}
	return nil
}

// Mod returns the remainder of f / other.
func (f Fraction[T]) Mod(other Fraction[T]) (Fraction[T], error) {
	if err := f.ModAssign(other); err != nil {
		return Fraction[T]{}, err
	}
	return f, nil
}

// Neg returns -f.
func (f Fraction[T]) Neg() (Fraction[T], error) {
	g := f.canon()
	if !integer.CanNeg(g.num) {
		g.reduce()
		if !integer.CanNeg(g.num) {
			return Fraction[T]{}, newOpError("Neg", ErrOverflow)
		}
	}

	g.num = g.num.Neg()
	return g, nil
}

// Abs returns the absolute value of f.
func (f Fraction[T]) Abs() (Fraction[T], error) {
	if f.Sign() >= 0 {
		return f.canon(), nil
	}
	return f.Neg()
}

// Inc adds one to f.
func (f *Fraction[T]) Inc() error {
	return f.step("Inc", integer.CanAdd[T], func(a, b T) T { return a.Add(b) })
}

// Dec subtracts one from f.
func (f *Fraction[T]) Dec() error {
	return f.step("Dec", integer.CanSub[T], func(a, b T) T { return a.Sub(b) })
}

// PostInc adds one to f and returns its previous value.
func (f *Fraction[T]) PostInc() (Fraction[T], error) {
	prev := f.canon()
	if err := f.Inc(); err != nil {
		return Fraction[T]{}, err
	}
	return prev, nil
}

// PostDec subtracts one from f and returns its previous value.
func (f *Fraction[T]) PostDec() (Fraction[T], error) {
	prev := f.canon()
	if err := f.Dec(); err != nil {
		return Fraction[T]{}, err
	}
	return prev, nil
}

// step adds or subtracts the denominator to the numerator.
// This doesn't change the gcd of the terms, so the reduction
// state is preserved.
func (f *Fraction[T]) step(op string, can func(a, b T) bool, apply func(a, b T) T) error {
	g := f.canon()
	if !can(g.num, g.den) {
		g.reduce()
		if !can(g.num, g.den) {
			return newOpError(op, ErrOverflow)
		}
	}

	g.num = apply(g.num, g.den)
	*f = g
	return nil
}
