package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Seed != 42 || cfg.OutputDir != "output" || cfg.Port != 8080 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if cfg.S3.Enabled() {
		t.Error("S3 upload should be disabled without a bucket")
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PT_WIDTH", "320")
	t.Setenv("PT_HEIGHT", "180")
	t.Setenv("PT_SAMPLES", "16")
	t.Setenv("PT_SEED", "-7")
	t.Setenv("PT_OUTPUT_DIR", "renders")
	t.Setenv("S3_BUCKET", "images")
	t.Setenv("S3_REGION", "eu-west-1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 180 || cfg.Samples != 16 || cfg.Seed != -7 {
		t.Errorf("Render settings not applied: %+v", cfg)
	}
	if cfg.OutputDir != "renders" {
		t.Errorf("Expected output dir 'renders', got %q", cfg.OutputDir)
	}
	if !cfg.S3.Enabled() || cfg.S3.Region != "eu-west-1" {
		t.Errorf("S3 settings not applied: %+v", cfg.S3)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PT_SAMPLES=9\nPT_THUMB_WIDTH=64\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set
	t.Setenv("PT_SAMPLES", "3")
	t.Cleanup(func() { os.Unsetenv("PT_THUMB_WIDTH") })

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Samples != 3 {
		t.Errorf("Expected environment to win over .env, got samples=%d", cfg.Samples)
	}
	if cfg.ThumbWidth != 64 {
		t.Errorf("Expected thumb width from .env, got %d", cfg.ThumbWidth)
	}
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Missing .env should be ignored, got %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric width", "PT_WIDTH", "wide"},
		{"negative samples", "PT_SAMPLES", "-1"},
		{"bad seed", "PT_SEED", "1.5"},
		{"port out of range", "PT_PORT", "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(""); err == nil {
				t.Errorf("Expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
