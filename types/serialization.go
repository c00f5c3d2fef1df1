package types

// Canonical serialization helpers for the values whose byte layout is
// part of the compatibility contract with the interpreter and the
// validators. Lengths are ULEB128, integers are little endian. The
// layout here must never change independently of the interpreter side.

// appendULEB128 appends the ULEB128 encoding of value to dst.
func appendULEB128(dst []byte, value uint64) []byte {
	for value >= 0x80 {
		dst = append(dst, byte(value&0x7f)|0x80)
		value >>= 7
	}
	return append(dst, byte(value))
}

// appendByteSlice appends a length-prefixed byte slice to dst.
func appendByteSlice(dst []byte, b []byte) []byte {
	dst = appendULEB128(dst, uint64(len(b)))
	return append(dst, b...)
}

// appendString appends a length-prefixed UTF-8 string to dst.
func appendString(dst []byte, s string) []byte {
	return appendByteSlice(dst, []byte(s))
}
