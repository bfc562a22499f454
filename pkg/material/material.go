package material

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Kind identifies one of the fixed set of scattering models
type Kind uint8

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
	KindAbsorber
)

func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	case KindAbsorber:
		return "absorber"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Material describes how a surface scatters light. Materials are immutable
// after construction and are shared by pointer between shapes.
// Only the fields relevant to Kind are meaningful.
type Material struct {
	Kind            Kind
	Albedo          core.Color // Lambertian and metal reflectance
	Fuzz            float32    // Metal: 0 = perfect mirror, 1 = very fuzzy
	RefractiveIndex float32    // Dielectric index of refraction (1.5 for glass)
}

// Scatter decides whether an incoming ray is absorbed or re-emitted.
// It returns false when the ray is absorbed.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, random)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, random)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, random)
	case KindAbsorber:
		return ScatterResult{}, false
	}
	panic(fmt.Sprintf("material: unknown kind %v", m.Kind))
}

// NewAbsorber creates a material that absorbs every ray
func NewAbsorber() *Material {
	return &Material{Kind: KindAbsorber}
}
