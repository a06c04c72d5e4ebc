package chunk

// appendVarInt appends a protocol var-int (LEB128, 7 bits per byte,
// continuation in the high bit) to buf and returns the result. This is the
// game's network var-int, distinct from both Go's encoding/binary varints
// and gophertunnel's Bedrock var-ints; the pack carries no dependency that
// implements this exact encoding, so it is hand-rolled here (see DESIGN.md).
func appendVarInt(buf []byte, v int32) []byte {
	u := uint32(v)
	for {
		b := byte(u & 0x7f)
		u >>= 7
		if u != 0 {
			buf = append(buf, b|0x80)
		} else {
			buf = append(buf, b)
			return buf
		}
	}
}
