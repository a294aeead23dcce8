package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server. A nil logger discards server logs.
func NewServer(port int, logger core.Logger) *Server {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Server{port: port, logger: logger}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene       string             `json:"scene"`     // Built-in scene name
	Width       int                `json:"width"`     // Image width
	Height      int                `json:"height"`    // Image height; 0 derives it from the camera
	Samples     int                `json:"samples"`   // Primary rays per pixel
	MaxDepth    int                `json:"maxDepth"`  // Reflection/refraction depth
	Threshold   float64            `json:"threshold"` // Minimum secondary ray weight
	Attenuation lights.Attenuation `json:"attenuation"`
}

// RenderingPipeline contains the configured scene and tracers for one request
type RenderingPipeline struct {
	Scene     *scene.Scene
	Tracer    *integrator.RayTracer
	Raytracer *renderer.Raytracer
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/render/stream", s.handleRenderStream)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s\n", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scene.ListScenes()})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default"}
	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 0, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 1, 1, 64); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", integrator.DefaultConfig().MaxDepth, 0, 20); err != nil {
		return nil, err
	}
	if req.Threshold, err = parseFloatParam(query, "threshold", 0, 0, 1); err != nil {
		return nil, err
	}
	if req.Attenuation.Constant, err = parseFloatParam(query, "constant", 1, 0, 100); err != nil {
		return nil, err
	}
	if req.Attenuation.Linear, err = parseFloatParam(query, "linear", 0, 0, 100); err != nil {
		return nil, err
	}
	if req.Attenuation.Quadratic, err = parseFloatParam(query, "quadratic", 0, 0, 100); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width > 1000 && req.Samples > 16 {
		s.logger.Printf("Render warning: Large image with high samples may render slowly\n")
	}

	return req, nil
}

// setupRenderingPipeline creates the scene and tracers for a request
func (s *Server) setupRenderingPipeline(req *RenderRequest, logger core.Logger) (*RenderingPipeline, error) {
	sceneObj, err := scene.Create(req.Scene, req.Attenuation)
	if err != nil {
		return nil, err
	}

	tracerConfig := integrator.DefaultConfig()
	tracerConfig.MaxDepth = req.MaxDepth
	tracerConfig.Threshold = req.Threshold
	tracer := integrator.NewRayTracer(tracerConfig)

	renderConfig := renderer.DefaultConfig()
	renderConfig.Width = req.Width
	renderConfig.Height = req.Height
	renderConfig.SamplesPerPixel = req.Samples
	if err := renderConfig.Validate(); err != nil {
		return nil, err
	}

	return &RenderingPipeline{
		Scene:     sceneObj,
		Tracer:    tracer,
		Raytracer: renderer.NewRaytracer(sceneObj, tracer, renderConfig, logger),
	}, nil
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

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
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
