package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the CLI and the web server.
// Zero values for the render settings mean "use the scene's default".
type Config struct {
	Width      int
	Height     int
	Samples    int
	Seed       int64
	OutputDir  string
	ThumbWidth int
	Port       int

	S3 S3Config
}

// S3Config configures optional upload of renders to S3-compatible storage
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// Enabled reports whether enough is configured to attempt an upload
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Seed:      42,
		OutputDir: "output",
		Port:      8080,
		S3: S3Config{
			Region: "us-east-1",
		},
	}
}

// Load reads an optional .env file at path, then PT_* and S3_* environment
// variables on top of the defaults. A missing .env file is not an error.
func Load(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	cfg := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{"PT_WIDTH", &cfg.Width},
		{"PT_HEIGHT", &cfg.Height},
		{"PT_SAMPLES", &cfg.Samples},
		{"PT_THUMB_WIDTH", &cfg.ThumbWidth},
		{"PT_PORT", &cfg.Port},
	}
	for _, v := range ints {
		if err := lookupInt(v.key, v.dst); err != nil {
			return Config{}, err
		}
	}

	if raw, ok := os.LookupEnv("PT_SEED"); ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PT_SEED %q: %w", raw, err)
		}
		cfg.Seed = seed
	}

	cfg.OutputDir = getEnv("PT_OUTPUT_DIR", cfg.OutputDir)
	cfg.S3 = S3Config{
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", cfg.S3.Region),
		Bucket:    os.Getenv("S3_BUCKET"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
	}

	return cfg, cfg.Validate()
}

// Validate rejects negative sizes and out-of-range ports
func (c Config) Validate() error {
	switch {
	case c.Width < 0:
		return fmt.Errorf("PT_WIDTH must not be negative, got %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("PT_HEIGHT must not be negative, got %d", c.Height)
	case c.Samples < 0:
		return fmt.Errorf("PT_SAMPLES must not be negative, got %d", c.Samples)
	case c.ThumbWidth < 0:
		return fmt.Errorf("PT_THUMB_WIDTH must not be negative, got %d", c.ThumbWidth)
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("PT_PORT must be in 1-65535, got %d", c.Port)
	}
	return nil
}

// getEnv returns the environment variable or fallback when unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func lookupInt(key string, dst *int) error {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = v
	return nil
}
