package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

func TestReflectTwiceIsIdentity(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := core.UniformOnUnitSphere(random)
		n := core.UniformOnUnitSphere(random)
		got := Reflect(Reflect(v, n), n)
		if !got.AlmostEqual(v, 1e-5) {
			t.Fatalf("reflect(reflect(%v)) = %v", v, got)
		}
	}
}

func TestMetalPerfectMirror(t *testing.T) {
	albedo := core.NewColor(0.7, 0.6, 0.5)
	mirror := NewMetal(albedo, 0)

	incoming := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewPoint3(-1, 1, 0), incoming)
	hit := HitRecord{
		Point:     core.NewPoint3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  mirror,
	}

	result, scattered := mirror.Scatter(ray, hit, rand.New(rand.NewSource(42)))
	if !scattered {
		t.Fatal("Expected mirror to scatter")
	}
	expected := core.NewVec3(1, 1, 0).Normalize()
	if !result.Scattered.Direction.AlmostEqual(expected, 1e-6) {
		t.Errorf("Expected reflected direction %v, got %v", expected, result.Scattered.Direction)
	}
	if result.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, result.Attenuation)
	}
}

func TestMetalFuzzClamped(t *testing.T) {
	tests := []struct {
		name     string
		fuzz     float32
		expected float32
	}{
		{"negative", -0.5, 0},
		{"in range", 0.3, 0.3},
		{"too large", 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMetal(core.White(), tt.fuzz)
			if m.Fuzz != tt.expected {
				t.Errorf("Expected fuzz %f, got %f", tt.expected, m.Fuzz)
			}
		})
	}
}

func TestMetalFuzzyScatterStaysAboveSurface(t *testing.T) {
	fuzzy := NewMetal(core.NewColor(0.8, 0.8, 0.8), 1.0)

	// Grazing incidence makes below-surface perturbations common
	incoming := core.NewVec3(1, -0.05, 0).Normalize()
	ray := core.NewRay(core.NewPoint3(-1, 0.05, 0), incoming)
	hit := HitRecord{
		Point:     core.NewPoint3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
		Material:  fuzzy,
	}

	random := rand.New(rand.NewSource(42))
	absorbed := 0
	for i := 0; i < 2000; i++ {
		result, scattered := fuzzy.Scatter(ray, hit, random)
		if !scattered {
			absorbed++
			continue
		}
		if result.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered direction %v is below the surface", result.Scattered.Direction)
		}
		if !result.Scattered.Direction.IsUnit(1e-4) {
			t.Fatalf("Expected unit direction, got length %f", result.Scattered.Direction.Length())
		}
	}
	if absorbed == 0 {
		t.Error("Expected some grazing fuzzy reflections to be absorbed")
	}
}
