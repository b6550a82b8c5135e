package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH -> OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB -> LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS -> linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a gridSize x gridSize grid of small spheres on a
// ground sphere. Each grid row is its own nested Composite. Materials are
// chosen from seed so the same seed always builds the same scene.
func NewSphereGridScene(gridSize int, seed int64) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center: core.NewVec3(4.5, 6, 18),    // Back and above the grid
		LookAt: core.NewVec3(4.5, 0.8, 4.5), // Center of the grid, slightly lower
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
	}

	s := newScene(cameraConfig, SamplingConfig{
		Width:           480,
		Height:          270,
		SamplesPerPixel: 64,
	})

	random := rand.New(rand.NewSource(seed))

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.World.Add(geometry.NewSphere(core.NewVec3(4.5, -1000, 4.5), 1000, ground))

	// Fit the grid into roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea / float64(max(1, gridSize-1))
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	for i := 0; i < gridSize; i++ {
		row := geometry.NewComposite()
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			// Hue varies across X, chroma across Z
			hue := float64(i) / float64(max(1, gridSize-1)) * 360.0
			chroma := 0.05 + float64(j)/float64(max(1, gridSize-1))*0.2
			lightness := 0.65 + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			row.Add(geometry.NewSphere(position, sphereRadius, randomMaterial(random, color)))
		}
		s.World.Add(row)
	}

	return s
}

// randomMaterial picks diffuse 60%, metal 25%, glass 15%
func randomMaterial(random *rand.Rand, color core.Vec3) material.Material {
	choice := random.Float64()
	switch {
	case choice < 0.6:
		return material.NewLambertian(color)
	case choice < 0.85:
		return material.NewMetal(color.Lerp(core.NewVec3(1, 1, 1), 0.3), 0.3*random.Float64())
	default:
		return material.NewDielectric(1.5)
	}
}
