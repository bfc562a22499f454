package integrator

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// World is what an integrator traces rays against. *scene.Scene satisfies it.
type World interface {
	// Hit returns the closest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float32) (material.HitRecord, bool)
	// Background returns the radiance arriving along a ray that escapes the world
	Background(ray core.Ray) core.Color
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray
	RayColor(ray core.Ray, world World, random *rand.Rand) core.Color
}
