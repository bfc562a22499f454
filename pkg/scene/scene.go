package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// Scene contains all the elements needed for rendering. It is built once
// and read concurrently by every render worker.
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	Shapes         []geometry.Shape // Objects in the scene, scanned in order
	SamplingConfig SamplingConfig
	TopColor       core.Color // Sky color straight up
	BottomColor    core.Color // Sky color straight down
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   `json:"width"`           // Image width
	Height          int   `json:"height"`          // Image height
	SamplesPerPixel int   `json:"samplesPerPixel"` // Number of rays per pixel
	MaxDepth        int   `json:"maxDepth"`        // Maximum ray bounce depth
	Seed            int64 `json:"seed"`            // Base seed for the per-row random generators
}

// DefaultSamplingConfig returns the settings used when a scene does not override them
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Validate checks that the configuration can drive a render
func (c SamplingConfig) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("image must be at least 2x2, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// NewScene creates a scene with the standard white-to-blue sky
func NewScene(cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Shapes:         make([]geometry.Shape, 0),
		SamplingConfig: samplingConfig,
		TopColor:       core.NewColor(0.5, 0.7, 1.0),
		BottomColor:    core.White(),
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hit returns the closest intersection in [tMin, tMax] across all shapes.
// On equal t the earlier shape wins.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float32) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// Background returns the sky color seen along a ray that escapes the scene.
// It blends from BottomColor to TopColor by the height of the direction.
func (s *Scene) Background(ray core.Ray) core.Color {
	t := core.Clamp(0.5*(ray.Direction.Y+1), 0, 1)
	return s.BottomColor.Lerp(s.TopColor, t)
}

// SetResolution changes the output size and rebuilds the camera so its
// aspect ratio matches the new image.
func (s *Scene) SetResolution(width, height int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = height
	if width > 0 && height > 0 {
		s.CameraConfig.AspectRatio = float32(width) / float32(height)
		s.Camera = geometry.NewCamera(s.CameraConfig)
	}
}

// SetWidth changes the output width and derives the height from the
// camera's aspect ratio
func (s *Scene) SetWidth(width int) {
	s.SetResolution(width, heightFor(width, s.CameraConfig.AspectRatio))
}

// SetHeight changes the output height and derives the width from the
// camera's aspect ratio
func (s *Scene) SetHeight(height int) {
	width := max(2, int(math32.Round(float32(height)*s.CameraConfig.AspectRatio)))
	s.SetResolution(width, height)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// heightFor derives an image height from a width and an aspect ratio
func heightFor(width int, aspectRatio float32) int {
	return max(2, int(math32.Round(float32(width)/aspectRatio)))
}
