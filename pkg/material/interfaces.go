package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material is the closed set of scattering behaviors: *Lambertian, *Metal
// and *Dielectric. The unexported method keeps other packages from adding
// variants.
type Material interface {
	// Scatter returns the attenuation for this interaction and, when the
	// second result is true, the continuation ray. false means the incoming
	// ray was absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	isMaterial()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray, meaningful only when Scatter reports true
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// Material points into the scene that produced the hit and must not be kept
// past the render call.
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit outward surface normal
	T        float64   // Parameter t along the ray
	Material Material  // Material of the hit object
}

// White is the identity attenuation
var White = core.NewVec3(1, 1, 1)

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
