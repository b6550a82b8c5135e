package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/df07/go-pathtracer/pkg/scene"
)

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, NewServer(0), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, NewServer(0), "/api/scenes")
	var scenes []scene.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&scenes); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(scenes) != len(scene.ListScenes()) {
		t.Fatalf("Expected %d scenes, got %d", len(scene.ListScenes()), len(scenes))
	}
	if scenes[0].ID != "default" {
		t.Errorf("Expected default scene first, got %q", scenes[0].ID)
	}
}

func TestHandleRender_ReturnsPNG(t *testing.T) {
	rec := get(t, NewServer(0), "/api/render?scene=default&width=8&height=4&samples=1&seed=3")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}
	if got := rec.Header().Get("X-Render-Samples"); got != "32" {
		t.Errorf("Expected 32 samples, got %q", got)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("Expected 8x4 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestHandleRender_SameSeedSameImage(t *testing.T) {
	s := NewServer(0)
	target := "/api/render?scene=spheregrid&width=6&height=4&samples=2&seed=9"
	first := get(t, s, target).Body.Bytes()
	second := get(t, s, target).Body.Bytes()
	if !bytes.Equal(first, second) {
		t.Error("Expected identical PNGs for identical requests")
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{"unknown scene", "/api/render?scene=nope&width=4&height=4&samples=1", http.StatusBadRequest},
		{"width not a number", "/api/render?width=abc", http.StatusBadRequest},
		{"width too large", "/api/render?width=5000", http.StatusBadRequest},
		{"zero samples", "/api/render?samples=0", http.StatusBadRequest},
		{"bad seed", "/api/render?seed=x", http.StatusBadRequest},
		{"too many total samples", "/api/render?width=2000&height=2000&samples=10000", http.StatusBadRequest},
		{"scene default size with huge samples", "/api/render?scene=default&samples=1000", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, NewServer(0), tt.target)
			if rec.Code != tt.status {
				t.Errorf("Expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestHandleRender_RejectsPost(t *testing.T) {
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/render", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestParseRenderRequest_Defaults(t *testing.T) {
	req, err := parseRenderRequest(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if req.Scene != "default" || req.Width != 0 || req.Height != 0 || req.Samples != 0 || req.Seed != 42 {
		t.Errorf("Unexpected defaults: %+v", req)
	}
}

func TestHandleInspect_GroundBelowCamera(t *testing.T) {
	// Bottom-center pixel of the default scene looks down at the ground sphere
	rec := get(t, NewServer(0), "/api/inspect?scene=default&width=40&height=20&x=20&y=19")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !resp.Hit {
		t.Fatal("Expected the inspection ray to hit")
	}
	if resp.MaterialType != "lambertian" {
		t.Errorf("Expected lambertian ground, got %q", resp.MaterialType)
	}
	if resp.Distance <= 0 {
		t.Errorf("Expected positive distance, got %f", resp.Distance)
	}
	if _, ok := resp.Properties["geometry"]; !ok {
		t.Error("Expected geometry properties for the hit sphere")
	}
}

func TestHandleInspect_OutOfBounds(t *testing.T) {
	rec := get(t, NewServer(0), "/api/inspect?scene=default&width=40&height=20&x=40&y=0")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestHandleRender_CanceledRequestGetsNoImage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/render?width=4&height=2&samples=1", nil).WithContext(ctx)
	NewServer(0).Handler().ServeHTTP(rec, req)

	if rec.Body.Len() != 0 {
		t.Errorf("Expected no body for a canceled request, got %d bytes", rec.Body.Len())
	}
	if ct := rec.Header().Get("Content-Type"); ct == "image/png" {
		t.Error("Expected no PNG for a canceled request")
	}
}

func TestHandler_RootIsNotServed(t *testing.T) {
	rec := get(t, NewServer(0), "/")
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for /, got %d", rec.Code)
	}
}
