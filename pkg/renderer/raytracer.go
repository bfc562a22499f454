package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"golang.org/x/sync/errgroup"
)

// Config contains configuration for the render driver
type Config struct {
	NumWorkers int       // Number of rows rendered concurrently (0 = use CPU count)
	Progress   *Progress // Counters to update; nil allocates fresh ones
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer renders a scene into an 8-bit image. The scene and its camera
// are shared read-only by all rows; each row owns its random generator.
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	numWorkers int
	progress   *Progress
	logger     core.Logger
}

// NewRaytracer creates a new raytracer, validating the scene's sampling
// configuration up front so a render never starts with bad settings
func NewRaytracer(s *scene.Scene, config Config, logger core.Logger) (*Raytracer, error) {
	if s == nil || s.Camera == nil {
		return nil, fmt.Errorf("scene has no camera")
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sampling config: %w", err)
	}

	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	progress := config.Progress
	if progress == nil {
		progress = NewProgress()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{
		scene:      s,
		integrator: integrator.NewPathTracingIntegrator(s.SamplingConfig.MaxDepth),
		numWorkers: numWorkers,
		progress:   progress,
		logger:     logger,
	}, nil
}

// Progress returns the counters updated during Render. They may be read
// from any goroutine while a render is running.
func (rt *Raytracer) Progress() *Progress {
	return rt.progress
}

// Render samples every pixel and returns the tone-mapped image along with
// statistics about the run
func (rt *Raytracer) Render() (*Image, RenderStats, error) {
	cfg := rt.scene.SamplingConfig
	width, height := cfg.Width, cfg.Height

	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d, %d workers\n",
		width, height, cfg.SamplesPerPixel, cfg.MaxDepth, rt.numWorkers)
	start := time.Now()

	img := NewImage(width, height)

	var g errgroup.Group
	g.SetLimit(rt.numWorkers)
	for row := 0; row < height; row++ {
		g.Go(func() error {
			random := rand.New(rand.NewSource(cfg.Seed + int64(row)))
			rt.renderRow(row, img.Pixels[row], random)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render failed: %w", err)
	}

	stats := RenderStats{
		TotalPixels:  width * height,
		TotalSamples: width * height * cfg.SamplesPerPixel,
		NumWorkers:   rt.numWorkers,
		Duration:     time.Since(start),
	}
	rt.logger.Printf("Render complete: %d pixels, %d samples in %v\n",
		stats.TotalPixels, stats.TotalSamples, stats.Duration.Round(time.Millisecond))

	return img, stats, nil
}

// renderRow fills one output row. Output rows run top to bottom while the
// image-plane coordinate j counts up from the bottom.
func (rt *Raytracer) renderRow(row int, out [][3]uint8, random *rand.Rand) {
	j := rt.scene.SamplingConfig.Height - 1 - row
	for i := range out {
		out[i] = rt.samplePixel(i, j, random).ToRGB8()
		rt.progress.addPixel()
	}
}

// samplePixel averages jittered samples for pixel (i, j), with j counted
// from the bottom row
func (rt *Raytracer) samplePixel(i, j int, random *rand.Rand) core.Color {
	cfg := rt.scene.SamplingConfig
	camera := rt.scene.Camera

	var colorAccum core.Color
	for sample := 0; sample < cfg.SamplesPerPixel; sample++ {
		// Jitter within half a pixel of the pixel center
		di := random.Float32() - 0.5
		dj := random.Float32() - 0.5
		s := (float32(i) + di) / float32(cfg.Width-1)
		t := (float32(j) + dj) / float32(cfg.Height-1)

		ray := camera.GetRay(s, t, random)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.scene, random))
	}
	rt.progress.addRays(uint64(cfg.SamplesPerPixel))

	return colorAccum.Multiply(1.0 / float32(cfg.SamplesPerPixel))
}
