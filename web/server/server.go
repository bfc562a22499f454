package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"

	"github.com/df07/go-sphere-pathtracer/pkg/imageio"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

const (
	consoleBufferSize = 256 // Pending messages between console reads
	consoleHistory    = 100 // Messages kept for /api/console
)

// Config contains web server configuration
type Config struct {
	Port       int // Port to serve on
	CacheSize  int // Number of encoded renders kept in memory
	NumWorkers int // Rows rendered concurrently per request (0 = CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Port:       8080,
		CacheSize:  32,
		NumWorkers: 0,
	}
}

// Server handles web requests for the path tracer
type Server struct {
	config   Config
	cache    *lru.Cache         // RenderRequest -> cachedRender
	progress *renderer.Progress // Cumulative counters across all renders
	renders  atomic.Uint64      // Completed renders, also used for render IDs

	console   chan ConsoleMessage
	consoleMu sync.Mutex
	recent    []ConsoleMessage
}

// cachedRender is an encoded image ready to serve
type cachedRender struct {
	data        []byte
	contentType string
}

// NewServer creates a new web server
func NewServer(config Config) (*Server, error) {
	cache, err := lru.New(config.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}
	return &Server{
		config:   config,
		cache:    cache,
		progress: renderer.NewProgress(),
		console:  make(chan ConsoleMessage, consoleBufferSize),
	}, nil
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string         `json:"scene"`   // Scene name (e.g., "random")
	Width   int            `json:"width"`   // Image width
	Height  int            `json:"height"`  // Image height (0 = from the camera aspect ratio)
	Samples int            `json:"samples"` // Samples per pixel
	Depth   int            `json:"depth"`   // Maximum bounces
	Seed    int64          `json:"seed"`    // Random seed
	Format  imageio.Format `json:"format"`  // Output encoding
}

// ProgressResponse reports the cumulative render counters
type ProgressResponse struct {
	RaysCompleted    uint64 `json:"raysCompleted"`
	PixelsCompleted  uint64 `json:"pixelsCompleted"`
	RendersCompleted uint64 `json:"rendersCompleted"`
	CachedRenders    int    `json:"cachedRenders"`
}

// Handler returns the HTTP routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/progress", s.handleProgress)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/console", s.handleConsole)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders a scene and returns the encoded image. Identical
// requests are served from the cache.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	if cached, ok := s.cache.Get(*req); ok {
		s.writeRender(w, cached.(cachedRender), "HIT")
		return
	}

	result, err := s.render(req)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.cache.Add(*req, result)
	s.writeRender(w, result, "MISS")
}

// buildScene creates the requested scene with the request's size and
// sampling settings applied
func buildScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.New(req.Scene, req.Seed)
	if err != nil {
		return nil, err
	}
	if req.Height > 0 {
		sceneObj.SetResolution(req.Width, req.Height)
	} else {
		sceneObj.SetWidth(req.Width)
	}
	sceneObj.SamplingConfig.SamplesPerPixel = req.Samples
	sceneObj.SamplingConfig.MaxDepth = req.Depth
	return sceneObj, nil
}

// render builds the requested scene, renders it, and encodes the result
func (s *Server) render(req *RenderRequest) (cachedRender, error) {
	sceneObj, err := buildScene(req)
	if err != nil {
		return cachedRender{}, err
	}

	renderID := fmt.Sprintf("render-%d", s.renders.Load()+1)
	logger := NewWebLogger(renderID, s.console)

	raytracer, err := renderer.NewRaytracer(sceneObj, renderer.Config{
		NumWorkers: s.config.NumWorkers,
		Progress:   s.progress,
	}, logger)
	if err != nil {
		return cachedRender{}, err
	}

	img, _, err := raytracer.Render()
	if err != nil {
		return cachedRender{}, err
	}
	s.renders.Add(1)

	var buf bytes.Buffer
	if err := imageio.Encode(&buf, img, req.Format); err != nil {
		return cachedRender{}, fmt.Errorf("failed to encode image: %w", err)
	}
	return cachedRender{data: buf.Bytes(), contentType: req.Format.ContentType()}, nil
}

func (s *Server) writeRender(w http.ResponseWriter, result cachedRender, cacheStatus string) {
	w.Header().Set("Content-Type", result.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(result.data)))
	w.Header().Set("X-Cache", cacheStatus)
	w.WriteHeader(http.StatusOK)
	w.Write(result.data)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "default" // Default scene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 2, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 0, 2000); err != nil {
		return nil, err
	}
	if req.Height == 1 {
		return nil, fmt.Errorf("height must be at least 2, got: 1")
	}
	if req.Samples, err = parseIntParam(query, "samples", 10, 1, 10000); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 50, 1, 500); err != nil {
		return nil, err
	}
	if req.Seed, err = parseInt64Param(query, "seed", 42); err != nil {
		return nil, err
	}

	formatName := query.Get("format")
	if formatName == "" {
		formatName = string(imageio.FormatPNG)
	}
	if req.Format, err = imageio.ParseFormat(formatName); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width > 800 && req.Samples > 100 {
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

// parseInt64Param parses an unbounded 64-bit integer parameter
func parseInt64Param(values url.Values, key string, defaultValue int64) (int64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// handleProgress reports the counters accumulated over all renders
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	json.NewEncoder(w).Encode(ProgressResponse{
		RaysCompleted:    s.progress.RaysCompleted(),
		PixelsCompleted:  s.progress.PixelsCompleted(),
		RendersCompleted: s.renders.Load(),
		CachedRenders:    s.cache.Len(),
	})
}

// handleScenes lists the built-in scenes and their default settings
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	type sceneEntry struct {
		scene.SceneInfo
		Defaults scene.SamplingConfig `json:"defaults"`
	}

	var entries []sceneEntry
	for _, info := range scene.ListScenes() {
		sceneObj, err := scene.New(info.ID, 42)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		entries = append(entries, sceneEntry{SceneInfo: info, Defaults: sceneObj.SamplingConfig})
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"scenes": entries})
}

// handleConsole returns the most recent render log messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	json.NewEncoder(w).Encode(map[string]interface{}{"messages": s.recentMessages()})
}

// recentMessages drains pending console messages into the bounded history
// and returns a copy of it
func (s *Server) recentMessages() []ConsoleMessage {
	s.consoleMu.Lock()
	defer s.consoleMu.Unlock()

drain:
	for {
		select {
		case msg := <-s.console:
			s.recent = append(s.recent, msg)
		default:
			break drain
		}
	}
	if len(s.recent) > consoleHistory {
		s.recent = s.recent[len(s.recent)-consoleHistory:]
	}

	return append([]ConsoleMessage(nil), s.recent...)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
