package geometry

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewPoint3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewPoint3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	mat := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewPoint3(0, 0, 0), 1.0, mat)

	tests := []struct {
		name           string
		rayOrigin      core.Point3
		rayDirection   core.Vec3
		expectedT      float32
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewPoint3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewPoint3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math32.Abs(hit.T-tt.expectedT) > 1e-6 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !hit.Normal.AlmostEqual(tt.expectedNormal, 1e-6) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != mat {
				t.Error("Expected hit to carry the sphere's material")
			}
		})
	}
}

func TestSphere_Hit_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewPoint3(0, 0, -5), 1.0, nil)
	ray := core.NewRay(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Near root at t=4 is excluded, far root at t=6 is taken
	hit, isHit := sphere.Hit(ray, 4.5, 1000)
	if !isHit || math32.Abs(hit.T-6) > 1e-5 {
		t.Errorf("Expected far root t=6, got hit=%t t=%f", isHit, hit.T)
	}

	// Both roots beyond tMax
	if _, isHit := sphere.Hit(ray, 0.001, 3.9); isHit {
		t.Error("Expected miss when both roots exceed tMax")
	}
}

func TestSphere_NegativeRadiusFlipsNormal(t *testing.T) {
	inner := NewSphere(core.NewPoint3(0, 0, 0), -0.5, nil)
	ray := core.NewRay(core.NewPoint3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := inner.Hit(ray, 0.001, 1000)
	if !isHit {
		t.Fatal("Expected hit on negative-radius sphere")
	}
	if math32.Abs(hit.T-1.5) > 1e-5 {
		t.Errorf("Expected t=1.5, got %f", hit.T)
	}
	// Outward normal points toward the center, so the ray hits the back face
	if hit.FrontFace {
		t.Error("Expected back face for inward-facing sphere")
	}
	if !hit.Normal.AlmostEqual(core.NewVec3(0, 0, 1), 1e-6) {
		t.Errorf("Expected normal to face the ray, got %v", hit.Normal)
	}
}

func TestSphere_HitProperties(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	hits := 0

	for i := 0; i < 5000; i++ {
		center := core.NewPoint3(random.Float32()*4-2, random.Float32()*4-2, random.Float32()*4-2)
		radius := random.Float32()*2 + 0.1
		if random.Intn(4) == 0 {
			radius = -radius
		}
		sphere := NewSphere(center, radius, nil)

		origin := core.NewPoint3(random.Float32()*10-5, random.Float32()*10-5, random.Float32()*10-5)
		ray := core.NewRay(origin, core.UniformOnUnitSphere(random))

		hit, isHit := sphere.Hit(ray, 0.001, math32.MaxFloat32)
		if !isHit {
			continue
		}
		hits++

		if !hit.Normal.IsUnit(1e-5) {
			t.Fatalf("Hit normal %v is not unit length", hit.Normal)
		}
		if ray.Direction.Dot(hit.Normal) > 0 {
			t.Fatalf("Hit normal %v faces along ray %v", hit.Normal, ray.Direction)
		}
		onSurface := ray.At(hit.T).DistanceTo(center) - math32.Abs(radius)
		if math32.Abs(onSurface) > 1e-4 {
			t.Fatalf("Hit point is %g away from the sphere surface", onSurface)
		}
	}

	if hits == 0 {
		t.Fatal("Expected at least some random rays to hit")
	}
}
