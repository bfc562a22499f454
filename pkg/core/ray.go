package core

import "fmt"

// unitTolerance is how far a ray direction may stray from unit length
const unitTolerance = 1e-4

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a new ray. The direction must already be normalized;
// a non-unit direction is a programming error and panics.
func NewRay(origin Point3, direction Vec3) Ray {
	if !direction.IsUnit(unitTolerance) {
		panic(fmt.Sprintf("core: ray direction %v is not unit length (%g)", direction, direction.Length()))
	}
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
