// Package integer defines the capability set a signed exact integer type must
// provide to be used as the numerator and denominator of a rational.Fraction,
// along with overflow predicates that answer whether a primitive operation
// would leave the representable range, without performing it.
package integer

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
)

// ErrOverflow is returned when the result of an operation doesn't fit in the
// integer type.
var ErrOverflow = errors.New("integer overflow")

// Limits describes the representable range of an integer type.
// Unbounded types leave Min and Max to their zero value.
type Limits[T any] struct {
	Bounded bool
	Min     T
	Max     T
}

// Integer is implemented by signed exact integer types.
// The zero value of T must be the integer 0.
//
// Arithmetic methods return a new value and never modify the receiver.
// They are not required to detect overflow: callers use CanAdd, CanSub,
// CanNeg and CanMul before calling them.
type Integer[T any] interface {
	fmt.Stringer

	// Cmp returns -1, 0 or +1 depending on whether x is less than, equal to
	// or greater than y.
	Cmp(y T) int
	// Sign returns -1, 0 or +1.
	Sign() int

	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	// Quo returns the quotient x/y truncated toward zero.
	Quo(y T) T
	// Rem returns the remainder x%y, with the sign of x.
	Rem(y T) T
	Neg() T

	// FromInt64 returns x as a T. The receiver is ignored.
	// x is always a small value, in the range [-1, 1].
	FromInt64(x int64) T
	// Parse parses a base 10 integer. The receiver is ignored.
	Parse(s string) (T, error)

	// Big returns the value as a newly allocated big.Int.
	Big() *big.Int
	// FromBig converts x to a T, reporting false if x is out of range.
	// The receiver is ignored.
	FromBig(x *big.Int) (T, bool)

	// Limits describes the range of T. The receiver is ignored.
	Limits() Limits[T]
}

func zero[T Integer[T]]() T {
	var z T
	return z
}
