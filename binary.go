package rational

import (
	"math/big"

	"github.com/cespare/xxhash/v2"
	"github.com/chaisql/rational/integer"
	"github.com/chaisql/rational/internal/encoding"
)

// AppendBinary appends the binary representation of f to dst.
// The numerator and the denominator are encoded one after the other,
// using a variable number of bytes depending on their magnitude.
func (f Fraction[T]) AppendBinary(dst []byte) ([]byte, error) {
	g := f.canon()
	dst = encoding.EncodeBigInt(dst, g.num.Big())
	return encoding.EncodeBigInt(dst, g.den.Big()), nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (f Fraction[T]) MarshalBinary() ([]byte, error) {
	return f.AppendBinary(nil)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
// It returns ErrOverflow if a term doesn't fit in T.
func (f *Fraction[T]) UnmarshalBinary(data []byte) error {
	n, sz, err := encoding.DecodeBigInt(data)
	if err != nil {
		return inputError("UnmarshalBinary", err, "invalid numerator")
	}
	data = data[sz:]

	d, sz, err := encoding.DecodeBigInt(data)
	if err != nil {
		return inputError("UnmarshalBinary", err, "invalid denominator")
	}
	if sz != len(data) {
		return inputError("UnmarshalBinary", nil, "%d trailing bytes", len(data)-sz)
	}

	g, err := fromBig[T]("UnmarshalBinary", n, d)
	if err != nil {
		return err
	}

	*f = g
	return nil
}

func fromBig[T integer.Integer[T]](op string, n, d *big.Int) (Fraction[T], error) {
	var zero T

	num, ok := zero.FromBig(n)
	if !ok {
		return Fraction[T]{}, newOpError(op, ErrOverflow)
	}
	den, ok := zero.FromBig(d)
	if !ok {
		return Fraction[T]{}, newOpError(op, ErrOverflow)
	}

	f := Fraction[T]{num: num, den: den}
	if err := f.normalize(op); err != nil {
		return Fraction[T]{}, err
	}
	return f, nil
}

// Hash returns a hash of the value of f. Fractions that are equal
// have the same hash, whatever their representation.
func (f Fraction[T]) Hash() uint64 {
	g := f.Reduced()
	b, _ := g.AppendBinary(make([]byte, 0, 32))
	return xxhash.Sum64(b)
}
