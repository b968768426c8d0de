package encoding

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// ErrInvalid is returned when decoding a buffer that wasn't produced
// by this package.
var ErrInvalid = errors.New("invalid integer encoding")

func isSmall(code byte) bool {
	return code >= IntSmallValue && code < Uint8Value
}

// width returns the number of bytes following a fixed size type,
// and -1 for unknown types.
func width(code byte) int {
	switch {
	case isSmall(code):
		return 0
	case code == Int8Value || code == Uint8Value:
		return 1
	case code == Int16Value || code == Uint16Value:
		return 2
	case code == Int32Value || code == Uint32Value:
		return 4
	case code == Int64Value || code == Uint64Value:
		return 8
	}
	return -1
}

// Skip returns the size of the integer encoded at the beginning of b.
func Skip(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, errors.Wrap(ErrInvalid, "empty buffer")
	}

	var n int
	switch code := b[0]; code {
	case BigNegValue, BigPosValue:
		l, ln := binary.Uvarint(b[1:])
		if ln <= 0 || l > uint64(len(b)) {
			return 0, errors.Wrap(ErrInvalid, "bad length")
		}
		n = 1 + ln + int(l)
	default:
		w := width(code)
		if w < 0 {
			return 0, errors.Wrapf(ErrInvalid, "unknown type %#x", code)
		}
		n = 1 + w
	}

	if n > len(b) {
		return 0, errors.Wrapf(ErrInvalid, "need %d bytes, got %d", n, len(b))
	}
	return n, nil
}
