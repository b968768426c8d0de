package rational

import (
	"math/big"

	"github.com/chaisql/rational/integer"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Fraction[integer.Int64]{}
	_ msgpack.CustomDecoder = (*Fraction[integer.Int64])(nil)
)

// EncodeMsgpack implements the msgpack.CustomEncoder interface.
// f is encoded as an array of two elements. Each term is encoded as an
// integer when it fits in an int64, as a decimal string otherwise.
func (f Fraction[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	g := f.canon()

	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := encodeMsgpackTerm(enc, g.num.Big()); err != nil {
		return err
	}
	return encodeMsgpackTerm(enc, g.den.Big())
}

func encodeMsgpackTerm(enc *msgpack.Encoder, x *big.Int) error {
	if x.IsInt64() {
		return enc.EncodeInt(x.Int64())
	}
	return enc.EncodeString(x.String())
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface.
func (f *Fraction[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	l, err := dec.DecodeArrayLen()
	if err != nil {
		return inputError("DecodeMsgpack", err, "expected an array")
	}
	if l != 2 {
		return inputError("DecodeMsgpack", nil, "expected 2 elements, got %d", l)
	}

	n, err := decodeMsgpackTerm(dec)
	if err != nil {
		return err
	}
	d, err := decodeMsgpackTerm(dec)
	if err != nil {
		return err
	}

	g, err := fromBig[T]("DecodeMsgpack", n, d)
	if err != nil {
		return err
	}

	*f = g
	return nil
}

func decodeMsgpackTerm(dec *msgpack.Decoder) (*big.Int, error) {
	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, inputError("DecodeMsgpack", err, "cannot decode term")
	}

	switch t := v.(type) {
	case int64:
		return big.NewInt(t), nil
	case uint64:
		return new(big.Int).SetUint64(t), nil
	case string:
		x, ok := new(big.Int).SetString(t, 10)
		if !ok {
			return nil, inputError("DecodeMsgpack", nil, "invalid integer %q", t)
		}
		return x, nil
	}

	return nil, inputError("DecodeMsgpack", nil, "unexpected term of type %T", v)
}
