package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// MaxDepth caps the number of scattered rays followed per camera ray
const MaxDepth = 50

// Termination describes why a light path stopped bouncing
type Termination int

const (
	Escaped     Termination = iota // left the scene
	Absorbed                       // a material absorbed the ray
	DepthCapped                    // reached MaxDepth
)

// PathResult is the outcome of tracing one camera ray
type PathResult struct {
	Color       core.Vec3
	Bounces     int
	Termination Termination
}

// TracePath follows ray through world until it escapes, is absorbed, or hits
// the depth cap. The loop is iterative so stack usage does not grow with depth.
// In every case the background along the last ray direction is weighted by
// the accumulated attenuation.
func TracePath(ray core.Ray, world geometry.Model, sampler core.Sampler) PathResult {
	attenuation := white
	depth := 0
	termination := Escaped

	for {
		hit, isHit := world.Hit(ray)
		if !isHit {
			break
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		attenuation = attenuation.MultiplyVec(scatter.Attenuation)
		if !didScatter {
			termination = Absorbed
			break
		}
		ray = scatter.Scattered

		depth++
		if depth >= MaxDepth {
			termination = DepthCapped
			break
		}
	}

	return PathResult{
		Color:       Background(ray.Direction).MultiplyVec(attenuation),
		Bounces:     depth,
		Termination: termination,
	}
}

// RayColor returns the radiance estimate for a single ray
func RayColor(ray core.Ray, world geometry.Model, sampler core.Sampler) core.Vec3 {
	return TracePath(ray, world, sampler).Color
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
	}
}

// Raytracer handles the rendering process
type Raytracer struct {
	world   geometry.Model
	camera  core.Camera
	width   int
	height  int
	config  SamplingConfig
	sampler core.Sampler
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world geometry.Model, camera core.Camera, width, height int) *Raytracer {
	return &Raytracer{
		world:   world,
		camera:  camera,
		width:   width,
		height:  height,
		config:  DefaultSamplingConfig(),
		sampler: core.NewSeededSampler(42), // Deterministic for testing
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetSampler replaces the random source used for jitter and scattering
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// samplePixel averages SamplesPerPixel jittered paths through pixel (i, j),
// with j counted from the bottom of the view
func (rt *Raytracer) samplePixel(i, j int, stats *RenderStats) core.Vec3 {
	colorAccum := core.Vec3{}
	samples := max(1, rt.config.SamplesPerPixel)

	for s := 0; s < samples; s++ {
		u := (float64(i) + rt.sampler.Get1D()) / float64(rt.width)
		v := (float64(j) + rt.sampler.Get1D()) / float64(rt.height)

		path := TracePath(rt.camera.GetRay(u, v), rt.world, rt.sampler)
		stats.addPath(path)
		colorAccum = colorAccum.Add(path.Color)
	}

	return colorAccum.Multiply(1.0 / float64(samples))
}

// GammaCorrect applies a gamma of 2 by taking the square root of each channel
func GammaCorrect(linear core.Vec3) core.Vec3 {
	return linear.Sqrt()
}

// RenderPass renders the full image and returns row-major pixels, top row first
func (rt *Raytracer) RenderPass() ([]core.RGB, RenderStats) {
	if rt.width <= 0 || rt.height <= 0 {
		return []core.RGB{}, RenderStats{}
	}

	pixels := make([]core.RGB, 0, rt.width*rt.height)
	stats := RenderStats{TotalPixels: rt.width * rt.height}

	for y := 0; y < rt.height; y++ {
		// Image row 0 is the top of the view
		j := rt.height - 1 - y
		for i := 0; i < rt.width; i++ {
			linear := rt.samplePixel(i, j, &stats)
			pixels = append(pixels, GammaCorrect(linear).ToRGB())
		}
	}

	stats.finalize()
	return pixels, stats
}

// Render traces width*height pixels with the given number of samples each
func Render(world geometry.Model, camera core.Camera, width, height, samples int, sampler core.Sampler) []core.RGB {
	pixels, _ := RenderWithStats(world, camera, width, height, samples, sampler)
	return pixels
}

// RenderWithStats is Render that also reports path statistics
func RenderWithStats(world geometry.Model, camera core.Camera, width, height, samples int, sampler core.Sampler) ([]core.RGB, RenderStats) {
	rt := NewRaytracer(world, camera, width, height)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: samples})
	rt.SetSampler(sampler)
	return rt.RenderPass()
}

// ToImage packs row-major pixels into an RGBA image for encoding
func ToImage(pixels []core.RGB, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
