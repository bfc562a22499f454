package integrator

import (
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// shadowEpsilon is the minimum hit distance, so a scattered ray does not
// re-hit the surface it just left
const shadowEpsilon = 1e-3

// PathTracingIntegrator implements unidirectional path tracing with a fixed
// bounce budget
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce budget
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor follows a path from ray through the world. Each scatter multiplies
// the throughput by the material attenuation; escaping to the sky ends the
// path with throughput times background. Absorption or running out of
// bounces yields black.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world World, random *rand.Rand) core.Color {
	throughput := core.White()

	for depth := pt.maxDepth; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, shadowEpsilon, math32.MaxFloat32)
		if !isHit {
			return throughput.MultiplyColor(world.Background(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, hit, random)
		if !didScatter {
			return core.Black()
		}

		throughput = throughput.MultiplyColor(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce budget exhausted
	return core.Black()
}
