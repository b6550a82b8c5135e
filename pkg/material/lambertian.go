package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (*Lambertian) isMaterial() {}

// Scatter always scatters toward a random point in the unit ball tangent to the surface
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	target := hit.Point.Add(hit.Normal).Add(core.RandomInUnitSphere(sampler))

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, target.Subtract(hit.Point)),
		Attenuation: l.Albedo,
	}, true
}
