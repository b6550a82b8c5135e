package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

func (*Metal) isMaterial() {}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction, hit.Normal)

	// Drawn even when Fuzzness is zero
	perturbation := core.RandomInUnitSphere(sampler).Multiply(m.Fuzzness)
	scattered := core.NewRay(hit.Point, reflected.Add(perturbation))

	result := ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}

	// Rays pushed below the surface are absorbed
	return result, scattered.Direction.Dot(hit.Normal) > 0
}
