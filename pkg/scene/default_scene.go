package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	// Default camera configuration
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewPoint3(0, 0.75, 2),  // Position camera higher and farther back
		LookAt:        core.NewPoint3(0, 0.5, -1),  // Look at the sphere center
		Up:            core.NewVec3(0, 1, 0),       // Standard up direction
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0, // Narrower field of view for focus effect
		Aperture:      0.05, // Mild depth of field blur
		FocusDistance: 0.0,  // Auto-calculate focus distance
	}

	// Apply any overrides using the reusable merge function
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	samplingConfig := DefaultSamplingConfig()
	samplingConfig.Height = heightFor(samplingConfig.Width, cameraConfig.AspectRatio)

	s := NewScene(cameraConfig, samplingConfig)

	// Create materials
	lambertianGreen := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewColor(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewColor(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)

	// Large sphere standing in for the ground plane
	ground := geometry.NewSphere(core.NewPoint3(0, -1000, -1), 1000, lambertianGreen)

	sphereCenter := geometry.NewSphere(core.NewPoint3(0, 0.5, -1), 0.5, lambertianRed)
	sphereLeft := geometry.NewSphere(core.NewPoint3(-1, 0.5, -1), 0.5, metalSilver)
	sphereRight := geometry.NewSphere(core.NewPoint3(1, 0.5, -1), 0.5, metalGold)
	solidGlassSphere := geometry.NewSphere(core.NewPoint3(0.5, 0.25, -0.5), 0.25, materialGlass)

	// Hollow glass sphere with blue sphere inside; the negative radius
	// turns the inner surface's normals inward
	hollowGlassOuter := geometry.NewSphere(core.NewPoint3(-0.5, 0.25, -0.5), 0.25, materialGlass)
	hollowGlassInner := geometry.NewSphere(core.NewPoint3(-0.5, 0.25, -0.5), -0.24, materialGlass)
	hollowGlassCenter := geometry.NewSphere(core.NewPoint3(-0.5, 0.25, -0.5), 0.20, lambertianBlue)

	s.Add(ground, sphereCenter, sphereLeft, sphereRight,
		solidGlassSphere, hollowGlassOuter, hollowGlassInner, hollowGlassCenter)

	return s
}
