package integer

import (
	"math/big"
	"strconv"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

var (
	_ Integer[Int8]  = Int8{}
	_ Integer[Int16] = Int16{}
	_ Integer[Int32] = Int32{}
	_ Integer[Int64] = Int64{}
	_ Integer[Int]   = Int{}
)

// Fixed-width integers.
type (
	Int8  = Fixed[int8]
	Int16 = Fixed[int16]
	Int32 = Fixed[int32]
	Int64 = Fixed[int64]
	Int   = Fixed[int]
)

// Fixed adapts a built-in signed integer type to the Integer interface.
// Its range is the range of S.
type Fixed[S constraints.Signed] struct {
	v S
}

// NewFixed returns v as a Fixed integer.
func NewFixed[S constraints.Signed](v S) Fixed[S] {
	return Fixed[S]{v: v}
}

// V returns the underlying value.
func (x Fixed[S]) V() S {
	return x.v
}

func (x Fixed[S]) String() string {
	return strconv.FormatInt(int64(x.v), 10)
}

func (x Fixed[S]) Cmp(y Fixed[S]) int {
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}
	return 0
}

func (x Fixed[S]) Sign() int {
	switch {
	case x.v < 0:
		return -1
	case x.v > 0:
		return 1
	}
	return 0
}

func (x Fixed[S]) Add(y Fixed[S]) Fixed[S] { return Fixed[S]{v: x.v + y.v} }
func (x Fixed[S]) Sub(y Fixed[S]) Fixed[S] { return Fixed[S]{v: x.v - y.v} }
func (x Fixed[S]) Mul(y Fixed[S]) Fixed[S] { return Fixed[S]{v: x.v * y.v} }
func (x Fixed[S]) Quo(y Fixed[S]) Fixed[S] { return Fixed[S]{v: x.v / y.v} }
func (x Fixed[S]) Rem(y Fixed[S]) Fixed[S] { return Fixed[S]{v: x.v % y.v} }
func (x Fixed[S]) Neg() Fixed[S]           { return Fixed[S]{v: -x.v} }

func (Fixed[S]) FromInt64(x int64) Fixed[S] {
	return Fixed[S]{v: S(x)}
}

func (Fixed[S]) Parse(s string) (Fixed[S], error) {
	n, err := strconv.ParseInt(s, 10, bitSize[S]())
	if err != nil {
		return Fixed[S]{}, errors.WithStack(err)
	}

	return Fixed[S]{v: S(n)}, nil
}

func (x Fixed[S]) Big() *big.Int {
	return big.NewInt(int64(x.v))
}

func (Fixed[S]) FromBig(x *big.Int) (Fixed[S], bool) {
	if !x.IsInt64() {
		return Fixed[S]{}, false
	}

	min, max := bounds[S]()
	n := x.Int64()
	if n < int64(min) || n > int64(max) {
		return Fixed[S]{}, false
	}

	return Fixed[S]{v: S(n)}, true
}

func (Fixed[S]) Limits() Limits[Fixed[S]] {
	min, max := bounds[S]()
	return Limits[Fixed[S]]{
		Bounded: true,
		Min:     Fixed[S]{v: min},
		Max:     Fixed[S]{v: max},
	}
}

func bitSize[S constraints.Signed]() int {
	var v S
	return int(unsafe.Sizeof(v)) * 8
}

// bounds returns the lowest and highest values of S.
func bounds[S constraints.Signed]() (min, max S) {
	max = S(^uint64(0) >> (65 - bitSize[S]()))
	return -max - 1, max
}
