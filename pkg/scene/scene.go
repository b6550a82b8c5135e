package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World          *geometry.Composite // Objects in the scene
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	SamplingConfig SamplingConfig
}

// SamplingConfig contains the recommended output size and sample count
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
}

// newScene creates an empty scene whose camera aspect ratio follows the image size
func newScene(cameraConfig renderer.CameraConfig, sampling SamplingConfig) *Scene {
	cameraConfig.AspectRatio = float64(sampling.Width) / float64(sampling.Height)
	return &Scene{
		World:          geometry.NewComposite(),
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		SamplingConfig: sampling,
	}
}

// Resize changes the output size, rebuilding the camera for the new aspect ratio.
// Non-positive values keep the current setting.
func (s *Scene) Resize(width, height int) {
	if width > 0 {
		s.SamplingConfig.Width = width
	}
	if height > 0 {
		s.SamplingConfig.Height = height
	}
	s.CameraConfig.AspectRatio = float64(s.SamplingConfig.Width) / float64(s.SamplingConfig.Height)
	s.Camera = renderer.NewCamera(s.CameraConfig)
}

// GetPrimitiveCount returns the total number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return geometry.CountSpheres(s.World)
}

// Render traces the scene at its configured size and sample count
func (s *Scene) Render(sampler core.Sampler) ([]core.RGB, renderer.RenderStats) {
	cfg := s.SamplingConfig
	return renderer.RenderWithStats(s.World, s.Camera, cfg.Width, cfg.Height, cfg.SamplesPerPixel, sampler)
}
