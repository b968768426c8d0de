/*
Package rational implements exact fractions over any signed integer type,
with arithmetic that never silently overflows.

# Fractions and integer types

A Fraction[T] is a numerator and a denominator of type T, where T implements
integer.Integer. The integer package provides adapters for the built-in
signed integers (integer.Int8 to integer.Int64) and for big.Int
(integer.Big), and any other type can be used by implementing the interface.

	a := rational.MustNew(integer.NewFixed[int64](1), integer.NewFixed[int64](3))
	b := rational.MustParse[integer.Int64]("1/6")

	c, err := a.Add(b) // 1/2

# Overflow

When T is bounded, every operation checks that intermediate results fit in T
before computing them. If they don't, the operation looks for another way to
compute the same result: reducing the operands, cancelling common factors,
or using the least common multiple of the denominators. Only when every way
has been exhausted does it return an error matching ErrOverflow.

Fractions are only reduced when it is needed, or when Reduce is called.
Use Reduced to get the lowest terms of a fraction without modifying it.

# Errors

Errors returned by this package wrap an *OpError naming the operation that
failed, and match one of ErrDenominatorIsZero, ErrOverflow,
ErrDivisionByZero or ErrInput with errors.Is.
*/
package rational
