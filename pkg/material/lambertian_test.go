package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

func TestLambertianScatter(t *testing.T) {
	albedo := core.NewColor(0.8, 0.3, 0.3)
	lambertian := NewLambertian(albedo)

	ray := core.NewRay(core.NewPoint3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{
		Point:     core.NewPoint3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  lambertian,
	}

	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		result, scattered := lambertian.Scatter(ray, hit, random)
		if !scattered {
			t.Fatal("Lambertian material should always scatter")
		}
		if result.Attenuation != albedo {
			t.Errorf("Expected attenuation %v, got %v", albedo, result.Attenuation)
		}
		if result.Scattered.Origin != hit.Point {
			t.Errorf("Expected scattered ray origin %v, got %v", hit.Point, result.Scattered.Origin)
		}
		if !result.Scattered.Direction.IsUnit(1e-4) {
			t.Errorf("Expected unit scatter direction, got length %f", result.Scattered.Direction.Length())
		}
		// normal + unit sphere sample never points below the surface
		if result.Scattered.Direction.Dot(hit.Normal) < -1e-6 {
			t.Errorf("Scatter direction %v points into the surface", result.Scattered.Direction)
		}
	}
}

func TestAbsorberNeverScatters(t *testing.T) {
	absorber := NewAbsorber()
	ray := core.NewRay(core.NewPoint3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{
		Point:     core.NewPoint3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
		Material:  absorber,
	}

	random := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		if _, scattered := absorber.Scatter(ray, hit, random); scattered {
			t.Fatal("Absorber should never scatter")
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindLambertian, "lambertian"},
		{KindMetal, "metal"},
		{KindDielectric, "dielectric"},
		{KindAbsorber, "absorber"},
		{Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestScatterPanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown material kind")
		}
	}()
	m := &Material{Kind: Kind(99)}
	ray := core.NewRay(core.NewPoint3(0, 1, 0), core.NewVec3(0, -1, 0))
	m.Scatter(ray, HitRecord{Normal: core.NewVec3(0, 1, 0)}, rand.New(rand.NewSource(1)))
}

func TestNewHitRecord_FaceOrientation(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	tests := []struct {
		name          string
		direction     core.Vec3
		expectedFront bool
		expected      core.Vec3
	}{
		{"ray from outside", core.NewVec3(0, 0, -1), true, outward},
		{"ray from inside", core.NewVec3(0, 0, 1), false, outward.Negate()},
		{"oblique from outside", core.NewVec3(1, 0, -1).Normalize(), true, outward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewPoint3(0, 0, 0), tt.direction)
			hit := NewHitRecord(ray, core.NewPoint3(0, 0, 1), outward, 1, nil)
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal != tt.expected {
				t.Errorf("Expected normal %v, got %v", tt.expected, hit.Normal)
			}
			if ray.Direction.Dot(hit.Normal) > 0 {
				t.Errorf("Normal %v faces along the ray", hit.Normal)
			}
		})
	}
}

func TestNewHitRecord_PanicsOnNonUnitNormal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for non-unit outward normal")
		}
	}()
	ray := core.NewRay(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, -1))
	NewHitRecord(ray, core.NewPoint3(0, 0, -1), core.NewVec3(0, 0, 2), 1, nil)
}
