package fmath

// Quantize8UnsignedByte maps x ∈ [0, 1] to [0, 255] by truncating
// x*255.999. Inputs outside [0, 1] must be clamped by the caller; the
// result for them is unspecified.
func Quantize8UnsignedByte(x float32) uint8 {
	checkPrecondition(x >= 0 && x <= 1, "fmath: Quantize8UnsignedByte input out of range", "x", x)
	ret := int32(x * quantizeUnsignedScale)
	return uint8(ret)
}

// Quantize8SignedByte maps x ∈ [-1, 1] to [0, 255] by remapping it to
// [0, 1] and delegating to Quantize8UnsignedByte.
func Quantize8SignedByte(x float32) uint8 {
	y := x*quantizeSignedScale + quantizeSignedBias
	return Quantize8UnsignedByte(y)
}
