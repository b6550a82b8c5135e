package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// TMin is the minimum accepted hit distance. Rays scattered from a surface
// start exactly on it, and floating point error would otherwise let them
// re-hit the same surface at a tiny positive t.
const TMin = 1e-4

// Model is the closed set of scene nodes: *Sphere and *Composite.
// Models are immutable once built and safe to share between renders.
type Model interface {
	// Hit returns the nearest intersection with t >= TMin, if any
	Hit(ray core.Ray) (*material.HitRecord, bool)

	isModel()
}
