package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/publish"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// options are the resolved settings for one CLI render
type options struct {
	sceneType string
	width     int
	height    int
	samples   int
	seed      int64
	outputDir string
	thumb     int
	upload    bool
}

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Optional .env file with PT_* and S3_* settings")
	sceneType := flag.String("scene", "default", "Scene type (see -list)")
	width := flag.Int("width", 0, "Image width (0 = config or scene default)")
	height := flag.Int("height", 0, "Image height (0 = config or scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = config or scene default)")
	seed := flag.Int64("seed", 0, "Random seed (0 = config default)")
	thumb := flag.Int("thumb", 0, "Also write a thumbnail this many pixels wide")
	upload := flag.Bool("upload", false, "Upload the render to S3 (requires S3_BUCKET)")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	if *list {
		printScenes()
		return
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	opts := resolveOptions(cfg, *sceneType, *width, *height, *samples, *seed, *thumb, *upload)
	if err := run(opts, cfg, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
}

// resolveOptions lets non-zero flags override the loaded configuration
func resolveOptions(cfg config.Config, sceneType string, width, height, samples int, seed int64, thumb int, upload bool) options {
	opts := options{
		sceneType: sceneType,
		width:     cfg.Width,
		height:    cfg.Height,
		samples:   cfg.Samples,
		seed:      cfg.Seed,
		outputDir: cfg.OutputDir,
		thumb:     cfg.ThumbWidth,
		upload:    upload,
	}
	if width > 0 {
		opts.width = width
	}
	if height > 0 {
		opts.height = height
	}
	if samples > 0 {
		opts.samples = samples
	}
	if seed != 0 {
		opts.seed = seed
	}
	if thumb > 0 {
		opts.thumb = thumb
	}
	return opts
}

// createScene builds the named scene and applies size and sample overrides
func createScene(opts options) (*scene.Scene, error) {
	s, err := scene.Create(opts.sceneType)
	if err != nil {
		return nil, err
	}
	s.Resize(opts.width, opts.height)
	if opts.samples > 0 {
		s.SamplingConfig.SamplesPerPixel = opts.samples
	}
	return s, nil
}

// run renders one scene and writes it to disk, optionally uploading it
func run(opts options, cfg config.Config, logger core.Logger) error {
	logger.Printf("Starting Path Tracer...\n")

	// Fail before rendering rather than after
	if opts.upload && !cfg.S3.Enabled() {
		return fmt.Errorf("upload requested but S3_BUCKET is not set")
	}

	selectedScene, err := createScene(opts)
	if err != nil {
		return err
	}

	sc := selectedScene.SamplingConfig
	logger.Printf("Rendering %s: %dx%d, %d samples per pixel, %d spheres, seed %d\n",
		opts.sceneType, sc.Width, sc.Height, sc.SamplesPerPixel, selectedScene.GetPrimitiveCount(), opts.seed)

	startTime := time.Now()
	pixels, stats := selectedScene.Render(core.NewSeededSampler(opts.seed))
	renderTime := time.Since(startTime)

	logger.Printf("Render completed in %v\n", renderTime)
	logger.Printf("Paths: %d escaped, %d absorbed, %d depth-capped, %.2f bounces per sample\n",
		stats.Escaped, stats.Absorbed, stats.DepthCapped, stats.AverageBounces)

	img := renderer.ToImage(pixels, sc.Width, sc.Height)
	filename := output.RenderPath(opts.outputDir, opts.sceneType, time.Now())
	if err := output.SavePNG(filename, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)

	if opts.thumb > 0 {
		thumbName := output.ThumbnailPath(filename)
		if err := output.SavePNG(thumbName, output.Thumbnail(img, opts.thumb)); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s\n", thumbName)
	}

	if !opts.upload {
		return nil
	}

	uploader, err := publish.NewUploader(cfg.S3, logger)
	if err != nil {
		return err
	}
	data, err := output.EncodePNG(img)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err = uploader.UploadPNG(ctx, filepath.ToSlash(filepath.Join(opts.sceneType, filepath.Base(filename))), data)
	return err
}
