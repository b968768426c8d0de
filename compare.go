package rational

// Cmp compares f and other and returns -1, 0 or +1.
// Both fractions are brought to a common denominator, which may fail with
// ErrOverflow for bounded types.
func (f Fraction[T]) Cmp(other Fraction[T]) (int, error) {
	return f.cmp(other, "Cmp")
}

func (f Fraction[T]) cmp(other Fraction[T], op string) (int, error) {
	a, b := f.canon(), other.canon()
	s, err := commonDenominator(&a, &b, op, nil)
	if err != nil {
		return 0, err
	}

	return s.a.Cmp(s.b), nil
}

// LT returns true if f is lower than other.
func (f Fraction[T]) LT(other Fraction[T]) (bool, error) {
	c, err := f.cmp(other, "LT")
	return c < 0, err
}

// GT returns true if f is greater than other.
func (f Fraction[T]) GT(other Fraction[T]) (bool, error) {
	return other.LT(f)
}

// LTE returns true if f is lower than or equal to other.
func (f Fraction[T]) LTE(other Fraction[T]) (bool, error) {
	ok, err := f.GT(other)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// GTE returns true if f is greater than or equal to other.
func (f Fraction[T]) GTE(other Fraction[T]) (bool, error) {
	ok, err := f.LT(other)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// EQ returns true if f and other represent the same number, whatever their
// representation: 2/4 equals 1/2.
func (f Fraction[T]) EQ(other Fraction[T]) (bool, error) {
	ok, err := f.LTE(other)
	if err != nil || !ok {
		return false, err
	}

	return f.GTE(other)
}

// NEQ returns true if f and other represent different numbers.
func (f Fraction[T]) NEQ(other Fraction[T]) (bool, error) {
	ok, err := f.EQ(other)
	if err != nil {
		return false, err
	}
	return !ok, nil
}
