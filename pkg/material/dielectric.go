package material

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float32) *Material {
	return &Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

func (m *Material) scatterDielectric(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	// Clear glass absorbs nothing
	attenuation := core.White()

	refractionRatio := m.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1 / m.RefractiveIndex // entering the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := core.Clamp(unitDirection.Negate().Dot(hit.Normal), -1, 1)
	sinTheta := math32.Sqrt(math32.Max(0, 1-cosTheta*cosTheta))

	// Total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1

	var direction core.Vec3
	if cannotRefract || random.Float32() < Reflectance(cosTheta, refractionRatio) {
		direction = Reflect(unitDirection, hit.Normal)
	} else {
		direction = Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction.Normalize()),
		Attenuation: attenuation,
	}, true
}

// Refract bends the unit vector uv through a surface with unit normal n
// using the vector form of Snell's law. etaiOverEtat must not trigger
// total internal reflection for the given angle.
func Refract(uv, n core.Vec3, etaiOverEtat float32) core.Vec3 {
	cosTheta := core.Clamp(uv.Negate().Dot(n), -1, 1)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math32.Sqrt(math32.Abs(1 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float32) float32 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math32.Pow(1-cosine, 5)
}
