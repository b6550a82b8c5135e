package output

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// RenderPath returns output/<scene>/render_<timestamp>.png under dir
func RenderPath(dir, sceneName string, at time.Time) string {
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s.png", at.Format("20060102_150405")))
}

// ThumbnailPath returns the thumbnail path that sits next to a render
func ThumbnailPath(renderPath string) string {
	ext := filepath.Ext(renderPath)
	return renderPath[:len(renderPath)-len(ext)] + "_thumb" + ext
}

// SavePNG writes img to path, creating parent directories as needed
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", path, err)
	}
	return nil
}

// Thumbnail scales img to width pixels wide, keeping the aspect ratio.
// Images already narrower than width are returned unchanged.
func Thumbnail(img image.Image, width int) image.Image {
	if width <= 0 || img.Bounds().Dx() <= width {
		return img
	}
	return resize.Resize(uint(width), 0, img, resize.Lanczos3)
}

// EncodePNG encodes img into memory, for HTTP responses and uploads
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
