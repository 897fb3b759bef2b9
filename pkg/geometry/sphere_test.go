package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, ClosestHit)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
	if hit.DidHit {
		t.Error("Expected empty hit record on miss")
	}
}

func TestSphere_Hit_NearAndFarRoot(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 3)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "outside hits near pole",
			rayOrigin:      core.NewVec3(0, 0, -10),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      9.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "inside falls back to far root",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, -10),
			rayDirection:   core.NewVec3(0, 0, 2),
			expectedT:      4.5,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, ClosestHit)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if !hit.DidHit {
				t.Error("Expected DidHit to be set")
			}
			if hit.MaterialIndex != 3 {
				t.Errorf("Expected material index 3, got %d", hit.MaterialIndex)
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	// Discriminant is exactly zero for this ray
	ray := core.NewRay(core.NewVec3(1, 0, -5), core.NewVec3(0, 0, 1))

	if _, isHit := sphere.Hit(ray, ClosestHit); isHit {
		t.Error("Expected tangent ray to miss")
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	bounded := ray
	bounded.TMax = 0.5
	if hit, isHit := sphere.Hit(bounded, ClosestHit); isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	bounded = ray
	bounded.TMin = 3.5
	if hit, isHit := sphere.Hit(bounded, ClosestHit); isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// tMin past the near root picks the far one
	bounded = ray
	bounded.TMin = 1.5
	hit, isHit := sphere.Hit(bounded, ClosestHit)
	if !isHit || math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root t=3, got hit=%v t=%f", isHit, hit.T)
	}
}

func TestSphere_Hit_AnyHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	hit, isHit := sphere.Hit(ray, AnyHit)
	if !isHit {
		t.Fatal("Expected any-hit to report an intersection")
	}
	if hit.DidHit {
		t.Error("Expected any-hit to leave the record empty")
	}
}

func TestSphere_Hit_PointOnSurface(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sphere := NewSphere(core.NewVec3(0.5, -1, 2), 1.5, 0)

	hits := 0
	for i := 0; i < 500; i++ {
		origin := core.NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		direction := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		ray := core.NewRay(origin, direction)

		hit, isHit := sphere.Hit(ray, ClosestHit)
		if !isHit {
			continue
		}
		hits++

		distance := ray.At(hit.T).Subtract(sphere.Center).Length()
		if math.Abs(distance-sphere.Radius) > 1e-6 {
			t.Fatalf("Hit point %v is %f from center, expected radius %f", hit.Point, distance, sphere.Radius)
		}

		// Smallest root in range wins
		oc := origin.Subtract(sphere.Center)
		a := direction.Dot(direction)
		b := 2 * direction.Dot(oc)
		c := oc.Dot(oc) - sphere.Radius*sphere.Radius
		sqrtD := math.Sqrt(b*b - 4*a*c)
		t0 := (-b - sqrtD) / (2 * a)
		expected := t0
		if !ray.InRange(t0) {
			expected = (-b + sqrtD) / (2 * a)
		}
		if math.Abs(hit.T-expected) > 1e-9 {
			t.Fatalf("Expected smallest valid root %f, got %f", expected, hit.T)
		}
	}

	if hits == 0 {
		t.Fatal("Expected at least one random ray to hit the sphere")
	}
}
