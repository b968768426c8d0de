package encoding

import (
	"encoding/binary"
	"math"
)

// EncodeInt appends n to dst using the smallest type able to hold it.
// The encoding preserves the order of integers when compared bytewise.
func EncodeInt(dst []byte, n int64) []byte {
	switch {
	case n >= -32 && n <= 31:
		return append(dst, byte(n+int64(IntSmallValue)+32))
	case n > 0:
		u := uint64(n)
		switch {
		case u <= math.MaxUint8:
			return appendSized(dst, Uint8Value, u)
		case u <= math.MaxUint16:
			return appendSized(dst, Uint16Value, u)
		case u <= math.MaxUint32:
			return appendSized(dst, Uint32Value, u)
		}
		return appendSized(dst, Uint64Value, u)
	case n >= math.MinInt8:
		return appendSized(dst, Int8Value, uint64(uint8(n)^0x80))
	case n >= math.MinInt16:
		return appendSized(dst, Int16Value, uint64(uint16(n)^0x8000))
	case n >= math.MinInt32:
		return appendSized(dst, Int32Value, uint64(uint32(n)^0x80000000))
	}

	// flipping the sign bit keeps negative values ordered
	return appendSized(dst, Int64Value, uint64(n)^(1<<63))
}

// appendSized appends code followed by the low bytes of u,
// big-endian, on as many bytes as the type requires.
func appendSized(dst []byte, code byte, u uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], u)
	dst = append(dst, code)
	return append(dst, buf[8-width(code):]...)
}

func readSized(b []byte) uint64 {
	var buf [8]byte
	copy(buf[8-len(b):], b)
	return binary.BigEndian.Uint64(buf[:])
}

// DecodeInt decodes an integer encoded with EncodeInt.
// It returns the value and the number of bytes read.
func DecodeInt(b []byte) (int64, int, error) {
	n, err := Skip(b)
	if err != nil {
		return 0, 0, err
	}

	code := b[0]
	if isSmall(code) {
		return int64(code) - int64(IntSmallValue) - 32, 1, nil
	}

	u := readSized(b[1:n])
	switch code {
	case Uint8Value, Uint16Value, Uint32Value, Uint64Value:
		if u > math.MaxInt64 {
			return 0, 0, ErrInvalid
		}
		return int64(u), n, nil
	case Int8Value:
		return int64(int8(uint8(u) ^ 0x80)), n, nil
	case Int16Value:
		return int64(int16(uint16(u) ^ 0x8000)), n, nil
	case Int32Value:
		return int64(int32(uint32(u) ^ 0x80000000)), n, nil
	case Int64Value:
		return int64(u ^ (1 << 63)), n, nil
	}

	return 0, 0, ErrInvalid
}
