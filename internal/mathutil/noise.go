package mathutil

import (
	"github.com/tphakala/go-fmath/internal/platform"
)

// permutation is Ken Perlin's reference permutation of 0..255, repeated
// twice so lookups of index+1 never need wrapping.
var permutation [2 * permutationSize]int32

// gradientScales are the 1D gradients selected by the low hash bits.
// Slicing the 3D reference gradients would only give -1, 0 and 1, which
// produces visibly flat noise.
var gradientScales = [gradientMask + 1]float32{
	-8.0 / 8, -7.0 / 8, -6.0 / 8, -5.0 / 8, -4.0 / 8, -3.0 / 8, -2.0 / 8, -1.0 / 8,
	1.0 / 8, 2.0 / 8, 3.0 / 8, 4.0 / 8, 5.0 / 8, 6.0 / 8, 7.0 / 8, 8.0 / 8,
}

var referencePermutation = [permutationSize]int32{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

func init() {
	for i := range permutation {
		permutation[i] = referencePermutation[i&permutationMask]
	}
}

// fade is the quintic smoothing curve 6t⁵ - 15t⁴ + 10t³, which has zero
// first and second derivatives at t=0 and t=1.
func fade[F Float](t F) F {
	return t * t * t * (t*(t*F(fadeCoeff6)-F(fadeCoeff15)) + F(fadeCoeff10))
}

func grad1[F Float](hash int32, x F) F {
	return F(gradientScales[hash&gradientMask]) * x
}

// PerlinNoise1D evaluates one-dimensional gradient noise at x.
//
// The result is zero at every integer x, continuous with continuous first
// and second derivatives, and bounded by [-2, 2]. The lattice repeats every
// 256 units.
func PerlinNoise1D[F Float](x F) F {
	xfl := platform.Floor(x)
	xi := int32(int64(xfl) & permutationMask)
	x0 := x - xfl
	x1 := x0 - 1

	u := fade(x0)
	g0 := grad1(permutation[xi], x0)
	g1 := grad1(permutation[xi+1], x1)

	return (g0 + u*(g1-g0)) * F(noiseOutputGain)
}
