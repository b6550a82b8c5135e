package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with a diffuse, a metal and a glass sphere on a ground sphere
func NewDefaultScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center: core.NewVec3(-2, 1.2, 1.5), // Above and to the left
		LookAt: core.NewVec3(0, 0, -1),     // Look at the center sphere
		Up:     core.NewVec3(0, 1, 0),
		VFov:   40.0,
	}

	s := newScene(cameraConfig, SamplingConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 100,
	})

	// Create materials
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	materialGlass := material.NewDielectric(1.5)

	s.World.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue))
	s.World.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold))
	s.World.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass))
	s.World.Add(geometry.NewSphere(core.NewVec3(0.3, -0.35, -0.3), 0.15, metalSilver))

	return s
}

// NewMirrorsScene creates two large facing mirrors with a diffuse sphere between them.
// Paths trapped between the mirrors run into the bounce cap.
func NewMirrorsScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center: core.NewVec3(0, 0.3, 2.5),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   50.0,
	}

	s := newScene(cameraConfig, SamplingConfig{
		Width:           300,
		Height:          200,
		SamplesPerPixel: 50,
	})

	mirror := material.NewMetal(core.NewVec3(0.95, 0.95, 0.95), 0.0)
	tinted := material.NewMetal(core.NewVec3(0.7, 0.9, 0.7), 0.02)
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s.World.Add(geometry.NewSphere(core.NewVec3(0, -1000.5, -1), 1000, ground))
	s.World.Add(geometry.NewSphere(core.NewVec3(-21.5, 0, -1), 20, mirror))
	s.World.Add(geometry.NewSphere(core.NewVec3(21.5, 0, -1), 20, tinted))
	s.World.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, red))

	return s
}
