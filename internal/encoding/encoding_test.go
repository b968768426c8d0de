package encoding_test

import (
	"bytes"
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/chaisql/rational/internal/encoding"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

var sortedInts = []int64{
	math.MinInt64,
	math.MinInt32 - 1,
	math.MinInt32,
	math.MinInt16,
	math.MinInt8 - 1,
	math.MinInt8,
	-33,
	-32,
	-1,
	0,
	1,
	31,
	32,
	math.MaxInt8,
	math.MaxUint8,
	math.MaxUint8 + 1,
	math.MaxUint16,
	math.MaxUint32,
	math.MaxUint32 + 1,
	math.MaxInt64,
}

func TestInt(t *testing.T) {
	var prev []byte
	for _, x := range sortedInts {
		t.Run(strconv.FormatInt(x, 10), func(t *testing.T) {
			enc := encoding.EncodeInt(nil, x)

			got, n, err := encoding.DecodeInt(enc)
			require.NoError(t, err)
			require.Equal(t, x, got)
			require.Equal(t, len(enc), n)

			if prev != nil {
				require.Equal(t, -1, bytes.Compare(prev, enc))
			}
			prev = enc
		})
	}
}

func TestBigInt(t *testing.T) {
	huge, ok := new(big.Int).SetString("340282366920938463463374607431768211457", 10)
	require.True(t, ok)

	tests := []*big.Int{
		big.NewInt(0),
		big.NewInt(-7),
		big.NewInt(math.MaxInt64),
		new(big.Int).Add(big.NewInt(math.MaxInt64), big.NewInt(1)),
		new(big.Int).Sub(big.NewInt(math.MinInt64), big.NewInt(1)),
		huge,
		new(big.Int).Neg(huge),
	}

	for _, x := range tests {
		t.Run(x.String(), func(t *testing.T) {
			// trailing bytes must not be consumed
			enc := encoding.EncodeBigInt(nil, x)
			enc = append(enc, 0xFF)

			got, n, err := encoding.DecodeBigInt(enc)
			require.NoError(t, err)
			require.Equal(t, 0, x.Cmp(got))
			require.Equal(t, len(enc)-1, n)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := map[string][]byte{
		"empty":      nil,
		"unknown":    {0xF0},
		"truncated":  {encoding.Uint32Value, 1, 2},
		"big length": {encoding.BigPosValue, 10, 1},
	}

	for name, b := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := encoding.DecodeBigInt(b)
			require.Error(t, err)
			require.True(t, errors.Is(err, encoding.ErrInvalid))
		})
	}
}
