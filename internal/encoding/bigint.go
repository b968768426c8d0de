package encoding

import (
	"encoding/binary"
	"math/big"

	"github.com/cockroachdb/errors"
)

// EncodeBigInt encodes x using EncodeInt if it fits in an int64.
// Otherwise, the sign is stored in the type and the magnitude
// is written as a varint length followed by big-endian bytes.
func EncodeBigInt(dst []byte, x *big.Int) []byte {
	if x.IsInt64() {
		return EncodeInt(dst, x.Int64())
	}

	code := BigPosValue
	if x.Sign() < 0 {
		code = BigNegValue
	}

	mag := x.Bytes()
	buf := make([]byte, binary.MaxVarintLen64+1)
	buf[0] = code
	n := binary.PutUvarint(buf[1:], uint64(len(mag)))

	dst = append(dst, buf[:n+1]...)
	return append(dst, mag...)
}

// DecodeBigInt decodes an integer encoded with EncodeBigInt.
// It returns the value and the number of bytes read.
func DecodeBigInt(b []byte) (*big.Int, int, error) {
	n, err := Skip(b)
	if err != nil {
		return nil, 0, err
	}

	switch b[0] {
	case BigNegValue, BigPosValue:
		_, ln := binary.Uvarint(b[1:])
		x := new(big.Int).SetBytes(b[1+ln : n])
		if b[0] == BigNegValue {
			x.Neg(x)
		}
		return x, n, nil
	}

	v, n, err := DecodeInt(b)
	if err != nil {
		return nil, 0, errors.Wrap(err, "cannot decode integer")
	}
	return big.NewInt(v), n, nil
}
