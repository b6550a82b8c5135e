package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

var (
	white = core.NewVec3(1, 1, 1)

	// skyBlue is a washed-out blue: 30% (0.5,0.7,1.0) over 70% white
	skyBlue = core.NewVec3(0.5, 0.7, 1.0).Multiply(0.3).Add(white.Multiply(0.7))

	sunDirection = core.NewVec3(1, 1, 1).Normalize()
	sunRadiance  = core.NewVec3(5, 5, 3)
	// Directions within 5 degrees of sunDirection see the sun disc
	sunCosThreshold = math.Cos(5 * math.Pi / 180)
)

// Background returns the radiance seen along a direction that leaves the scene:
// a bright sun disc around (1,1,1), otherwise a vertical white-to-blue sky gradient.
func Background(direction core.Vec3) core.Vec3 {
	unitDirection := direction.Normalize()

	if unitDirection.Dot(sunDirection) >= sunCosThreshold {
		return sunRadiance
	}

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return white.Lerp(skyBlue, t)
}
