package material

import (
	"fmt"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// Normal always faces against the incoming ray.
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Unit surface normal, facing the incoming ray
	T         float32     // Parameter t along the ray
	FrontFace bool        // Whether the outward normal already faced the ray
	Material  *Material   // Material of the hit object
}

// NewHitRecord builds a hit record from the geometric outward normal,
// flipping it when the ray arrives from inside the surface.
// The outward normal must be unit length.
func NewHitRecord(ray core.Ray, point core.Point3, outwardNormal core.Vec3, t float32, material *Material) HitRecord {
	h := HitRecord{Point: point, T: t, Material: material}
	h.SetFaceNormal(ray, outwardNormal)
	return h
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	if !outwardNormal.IsUnit(1e-4) {
		panic(fmt.Sprintf("material: outward normal %v is not unit length", outwardNormal))
	}
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
