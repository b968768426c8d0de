package encoding

// Type tags, ordered so that encoded integers sort like their values.
// Tags 16 to 79 hold the integers from -32 to 31 without any payload.
const (
	// Negative magnitude too large for an int64, followed by a uvarint
	// length and the big-endian magnitude.
	BigNegValue byte = 11

	// Negative integers, sign bit flipped.
	Int64Value byte = 12
	Int32Value byte = 13
	Int16Value byte = 14
	Int8Value  byte = 15

	IntSmallValue byte = 16

	// Positive integers.
	Uint8Value  byte = 80
	Uint16Value byte = 81
	Uint32Value byte = 82
	Uint64Value byte = 83

	// Positive integers too large for an int64.
	BigPosValue byte = 84
)
