package core

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// Sampling uses the Muller-Marsaglia construction: a vector of d independent
// standard normals, divided by its norm, is uniform on the (d-1)-sphere.
// Dropping two coordinates of a uniform point on the (d-1)-sphere gives a
// uniform point inside the (d-2)-ball, so no rejection loop is needed.

func normal32(random *rand.Rand) float32 {
	return float32(random.NormFloat64())
}

// UniformOnUnitSphere returns a uniformly distributed point on the unit sphere
func UniformOnUnitSphere(random *rand.Rand) Vec3 {
	v := Vec3{normal32(random), normal32(random), normal32(random)}
	return v.Multiply(1 / v.Length())
}

// UniformInUnitSphere returns a uniformly distributed point inside the unit ball
func UniformInUnitSphere(random *rand.Rand) Vec3 {
	u, v, w := normal32(random), normal32(random), normal32(random)
	s, t := normal32(random), normal32(random)
	invLength := 1 / math32.Sqrt(u*u+v*v+w*w+s*s+t*t)
	return Vec3{u, v, w}.Multiply(invLength)
}

// UniformInUnitDisk returns a uniformly distributed point inside the unit disk
func UniformInUnitDisk(random *rand.Rand) (x, y float32) {
	u, v := normal32(random), normal32(random)
	s, t := normal32(random), normal32(random)
	invLength := 1 / math32.Sqrt(u*u+v*v+s*s+t*t)
	return u * invLength, v * invLength
}
