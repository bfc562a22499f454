package scene

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// NewRandomScene creates the classic cover scene: a field of small random
// spheres around three large ones. The layout is fully determined by seed.
func NewRandomScene(seed int64, cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Center:        core.NewPoint3(13, 2, 3),
		LookAt:        core.NewPoint3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		AspectRatio:   3.0 / 2.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	samplingConfig := SamplingConfig{
		Width:           1200,
		SamplesPerPixel: 500,
		MaxDepth:        50,
		Seed:            seed,
	}
	samplingConfig.Height = heightFor(samplingConfig.Width, cameraConfig.AspectRatio)

	s := NewScene(cameraConfig, samplingConfig)
	random := rand.New(rand.NewSource(seed))

	ground := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	s.Add(geometry.NewSphere(core.NewPoint3(0, -1000, 0), 1000, ground))

	// Keep the small spheres clear of the big metal one
	clearing := core.NewPoint3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float32()
			center := core.NewPoint3(
				float32(a)+0.9*random.Float32(),
				0.2,
				float32(b)+0.9*random.Float32(),
			)
			if center.DistanceTo(clearing) <= 0.9 {
				continue
			}

			var mat *material.Material
			switch {
			case chooseMat < 0.8:
				// diffuse
				albedo := core.RandomColor(random).MultiplyColor(core.RandomColor(random))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomColorRange(random, 0.5, 1.0)
				fuzz := 0.5 * random.Float32()
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}
			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewPoint3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewPoint3(-4, 1, 0), 1.0, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewPoint3(4, 1, 0), 1.0, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}
