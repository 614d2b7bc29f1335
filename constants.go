package fmath

// Numeric constants. Literal precision is part of the contract: converting
// any of these to float32 yields the exact single-precision values that
// dependent geometry code expects.
const (
	Pi               = 3.1415926535897932
	SmallNumber      = 1.e-8
	KindaSmallNumber = 1.e-4
	BigNumber        = 3.4e+38
	EulersNumber     = 2.71828182845904523536

	MaxFlt = 3.402823466e+38
	InvPi  = 0.31830988618
	HalfPi = 1.57079632679
	Delta  = 0.00001
)

// BitFlag[i] has only bit i set.
var BitFlag = [32]uint32{
	1 << 0, 1 << 1, 1 << 2, 1 << 3, 1 << 4, 1 << 5, 1 << 6, 1 << 7,
	1 << 8, 1 << 9, 1 << 10, 1 << 11, 1 << 12, 1 << 13, 1 << 14, 1 << 15,
	1 << 16, 1 << 17, 1 << 18, 1 << 19, 1 << 20, 1 << 21, 1 << 22, 1 << 23,
	1 << 24, 1 << 25, 1 << 26, 1 << 27, 1 << 28, 1 << 29, 1 << 30, 1 << 31,
}

// Angle constants
const (
	halfTurnDegrees = 180.0
	fullTurnDegrees = 360.0
	twoPi           = Pi * 2.0
	radToDegFactor  = 180.0 / Pi
	degToRadFactor  = Pi / 180.0
)

// Quantization constants
const (
	// Just under 256 so that 1.0 maps to 255 after truncation.
	quantizeUnsignedScale = 255.999
	quantizeSignedScale   = 0.5
	quantizeSignedBias    = 0.5
)

// Interpolation constants
const (
	easeHalf         = 0.5 // InOut split point and output scale
	expoExponentGain = 10.0
	expoBase         = 2.0
	pulsePhaseOffset = 0.25 // Starts a pulse at its peak
	bitsPerByte      = 8
	bitIndexMask     = bitsPerByte - 1
)
