package integer

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

var _ Integer[Big] = Big{}

// Big is an arbitrary-precision integer. It is unbounded, so every overflow
// predicate reports true for it.
//
// Unlike big.Int, Big has value semantics: operations allocate a new result
// and never modify their operands. The zero value is 0.
type Big struct {
	v *big.Int
}

// NewBig returns a copy of x as a Big.
func NewBig(x *big.Int) Big {
	return Big{v: new(big.Int).Set(x)}
}

// NewBigInt64 returns x as a Big.
func NewBigInt64(x int64) Big {
	return Big{v: big.NewInt(x)}
}

var bigZero = new(big.Int)

func (x Big) val() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

func (x Big) String() string {
	return x.val().String()
}

func (x Big) Cmp(y Big) int { return x.val().Cmp(y.val()) }
func (x Big) Sign() int     { return x.val().Sign() }

func (x Big) Add(y Big) Big { return Big{v: new(big.Int).Add(x.val(), y.val())} }
func (x Big) Sub(y Big) Big { return Big{v: new(big.Int).Sub(x.val(), y.val())} }
func (x Big) Mul(y Big) Big { return Big{v: new(big.Int).Mul(x.val(), y.val())} }
func (x Big) Quo(y Big) Big { return Big{v: new(big.Int).Quo(x.val(), y.val())} }
func (x Big) Rem(y Big) Big { return Big{v: new(big.Int).Rem(x.val(), y.val())} }
func (x Big) Neg() Big      { return Big{v: new(big.Int).Neg(x.val())} }

func (Big) FromInt64(x int64) Big {
	return NewBigInt64(x)
}

func (Big) Parse(s string) (Big, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Big{}, errors.Newf("invalid integer %q", s)
	}
	return Big{v: v}, nil
}

func (x Big) Big() *big.Int {
	return new(big.Int).Set(x.val())
}

func (Big) FromBig(x *big.Int) (Big, bool) {
	return NewBig(x), true
}

func (Big) Limits() Limits[Big] {
	return Limits[Big]{}
}
