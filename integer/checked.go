package integer

// CanAdd reports whether a+b is representable by T.
func CanAdd[T Integer[T]](a, b T) bool {
	l := a.Limits()
	if !l.Bounded {
		return true
	}

	// operands of different signs cannot overflow
	if (a.Sign() < 0) != (b.Sign() < 0) {
		return true
	}
	if a.Sign() < 0 {
		return l.Min.Sub(a).Cmp(b) <= 0
	}
	return l.Max.Sub(a).Cmp(b) >= 0
}

// CanSub reports whether a-b is representable by T.
func CanSub[T Integer[T]](a, b T) bool {
	l := a.Limits()
	if !l.Bounded {
		return true
	}

	if b.Sign() < 0 {
		return l.Max.Add(b).Cmp(a) >= 0
	}
	return l.Min.Add(b).Cmp(a) <= 0
}

// CanNeg reports whether -a is representable by T.
// This is false for the lowest value of most bounded types.
func CanNeg[T Integer[T]](a T) bool {
	return CanSub(zero[T](), a)
}

// CanMul reports whether a*b is representable by T.
//
// Quotients are truncated toward zero, so each bound is compared
// inclusively against the quotient of the limit by one of the operands.
func CanMul[T Integer[T]](a, b T) bool {
	l := a.Limits()
	if !l.Bounded {
		return true
	}

	// zero multiplication cannot overflow
	if a.Sign() == 0 || b.Sign() == 0 {
		return true
	}

	if a.Sign() < 0 {
		if b.Sign() < 0 {
			// both negative: product positive. -a and -b must exist
			// for the bound to be computed at all.
			if !CanNeg(a) || !CanNeg(b) {
				return false
			}
			return l.Max.Quo(a.Neg()).Cmp(b.Neg()) >= 0
		}
		// a < 0, b > 0: product negative
		return l.Min.Quo(b).Cmp(a) <= 0
	}

	if b.Sign() < 0 {
		// a > 0, b < 0: product negative
		return l.Min.Quo(a).Cmp(b) <= 0
	}
	// both positive
	return l.Max.Quo(a).Cmp(b) >= 0
}
