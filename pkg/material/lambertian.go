package material

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// minScatterLength guards against normal and sample nearly cancelling out
const minScatterLength = 1e-7

// NewLambertian creates a new perfectly diffuse material
func NewLambertian(albedo core.Color) *Material {
	return &Material{Kind: KindLambertian, Albedo: albedo}
}

func (m *Material) scatterLambertian(hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	// Normal plus a point on the unit sphere is cosine distributed around the normal
	scatterDirection := hit.Normal.Add(core.UniformOnUnitSphere(random))
	if scatterDirection.Length() < minScatterLength {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection.Normalize()),
		Attenuation: m.Albedo,
	}, true
}
