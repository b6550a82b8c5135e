package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// maxRequestSamples caps width*height*samples for a single render request
const maxRequestSamples = 16_000_000

// Server handles web requests for the path tracer
type Server struct {
	port     int
	renderID atomic.Int64
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g., "default")
	Width   int    `json:"width"`   // Image width
	Height  int    `json:"height"`  // Image height
	Samples int    `json:"samples"` // Samples per pixel
	Seed    int64  `json:"seed"`    // Sampler seed
}

// Handler returns the API routes, separate from Start so tests can mount them
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleRender renders one image and returns it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}

	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sc := sceneObj.SamplingConfig
	if total := sc.Width * sc.Height * sc.SamplesPerPixel; total > maxRequestSamples {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("render too large: %dx%d at %d samples is %d samples, limit is %d",
			sc.Width, sc.Height, sc.SamplesPerPixel, total, maxRequestSamples))
		return
	}

	logger := NewRequestLogger(fmt.Sprintf("render-%d", s.renderID.Add(1)), log.Default())
	logger.Printf("Rendering %s: %dx%d, %d samples per pixel, seed %d\n", req.Scene, sc.Width, sc.Height, sc.SamplesPerPixel, req.Seed)

	startTime := time.Now()
	pixels, stats := sceneObj.Render(core.NewSeededSampler(req.Seed))
	elapsed := time.Since(startTime)
	logger.Printf("Render completed in %v (%.2f bounces per sample)\n", elapsed, stats.AverageBounces)

	// Client went away while rendering
	if err := r.Context().Err(); err != nil {
		logger.Printf("Dropping render: %v\n", err)
		return
	}

	data, err := output.EncodePNG(renderer.ToImage(pixels, sc.Width, sc.Height))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// parseRenderRequest parses request parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: "default"}
	if name := values.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(values, "samples", 0, 1, 10000); err != nil {
		return nil, err
	}

	req.Seed = 42
	if value := values.Get("seed"); value != "" {
		if req.Seed, err = strconv.ParseInt(value, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid seed: %s", value)
		}
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.Samples > 100 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene; zero sizes and samples keep the scene defaults
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		return nil, err
	}
	sceneObj.Resize(req.Width, req.Height)
	if req.Samples > 0 {
		sceneObj.SamplingConfig.SamplesPerPixel = req.Samples
	}
	return sceneObj, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
