package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	// RefractiveIndex is the ratio of the index inside the material to the
	// index outside; for glass in air this is the glass index (e.g. 1.5).
	RefractiveIndex float64
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

func (*Dielectric) isMaterial() {}

// Scatter implements the Material interface for dielectric scattering.
// Attenuation is always white: the glass is clear.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	var outwardNormal core.Vec3
	var refractionRatio, cosine float64

	dot := rayIn.Direction.Dot(hit.Normal)
	if dot > 0 {
		// Exiting the material
		outwardNormal = hit.Normal.Negate()
		refractionRatio = d.RefractiveIndex
		cosine = d.RefractiveIndex * dot / rayIn.Direction.Length()
	} else {
		// Entering the material
		outwardNormal = hit.Normal
		refractionRatio = 1.0 / d.RefractiveIndex
		cosine = -dot / rayIn.Direction.Length()
	}

	if refracted, ok := Refract(rayIn.Direction, outwardNormal, refractionRatio); ok {
		if sampler.Get1D() > Reflectance(cosine, d.RefractiveIndex) {
			return ScatterResult{
				Scattered:   core.NewRay(hit.Point, refracted),
				Attenuation: White,
			}, true
		}
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflect(rayIn.Direction, hit.Normal)),
		Attenuation: White,
	}, true
}

// Refract bends v through a surface with normal n using Snell's law.
// It reports false on total internal reflection.
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
