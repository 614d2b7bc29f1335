package fmath

// ExtractBoolFromBitfield reads bit index of buf, treating buf as a packed
// boolean array: bit index lives in byte index/8 at bit index%8, least
// significant bit first. An index beyond len(buf)*8 panics.
func ExtractBoolFromBitfield(buf []byte, index uint32) bool {
	checkPrecondition(uint64(index) < uint64(len(buf))*bitsPerByte,
		"fmath: bit index beyond buffer", "index", index, "bits", len(buf)*bitsPerByte)
	mask := byte(1) << (index & bitIndexMask)
	return buf[index/bitsPerByte]&mask != 0
}

// SetBoolInBitField sets or clears bit index of buf, leaving every other
// bit unchanged. Layout matches ExtractBoolFromBitfield.
func SetBoolInBitField(buf []byte, index uint32, set bool) {
	checkPrecondition(uint64(index) < uint64(len(buf))*bitsPerByte,
		"fmath: bit index beyond buffer", "index", index, "bits", len(buf)*bitsPerByte)
	mask := byte(1) << (index & bitIndexMask)
	if set {
		buf[index/bitsPerByte] |= mask
	} else {
		buf[index/bitsPerByte] &^= mask
	}
}
