package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:    core.NewVec3(1, 2, 3),
		Normal:   normal,
		T:        1.0,
		Material: lambertian,
	}
	ray := core.NewRay(core.NewVec3(1, 2, 4), core.NewVec3(0, 0, -1))

	for i := 0; i < 1000; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}

		// direction = normal + point in unit ball, so it stays within the tangent ball
		offset := scatter.Scattered.Direction.Subtract(normal).Length()
		if offset > 1+1e-9 {
			t.Fatalf("Direction %v lies outside the unit ball around the normal", scatter.Scattered.Direction)
		}
	}
}

func TestLambertian_CenterSampleFollowsNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	scatter, _ := lambertian.Scatter(ray, hit, &scriptedSampler{})
	if !vecNear(scatter.Scattered.Direction, hit.Normal, 1e-12) {
		t.Errorf("Expected direction along normal, got %v", scatter.Scattered.Direction)
	}
}
