package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/imageio"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// renderOptions holds the command line overrides. Zero values keep the
// scene's own settings.
type renderOptions struct {
	width   int
	height  int
	samples int
	depth   int
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type (see -help for the list)")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = derived from the camera aspect ratio)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum bounces per path (0 = scene default)")
	seed := flag.Int64("seed", 42, "Random seed for scene layout and sampling")
	workers := flag.Int("workers", 0, "Rows rendered concurrently (0 = CPU count)")
	out := flag.String("out", "", "Output file; .png, .ppm or .tiff (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png unless -out is given")
		return
	}

	fmt.Println("Starting Sphere Path Tracer...")

	selectedScene, err := createScene(*sceneType, *seed)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	applyOverrides(selectedScene, renderOptions{
		width:   *width,
		height:  *height,
		samples: *samples,
		depth:   *depth,
	})

	raytracer, err := renderer.NewRaytracer(selectedScene, renderer.Config{NumWorkers: *workers}, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	totalPixels := uint64(selectedScene.SamplingConfig.Width * selectedScene.SamplingConfig.Height)
	done := make(chan struct{})
	go reportProgress(raytracer.Progress(), totalPixels, 2*time.Second, done)

	img, stats, err := raytracer.Render()
	close(done)
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v (%.0f samples/sec)\n",
		stats.Duration.Round(time.Millisecond), stats.SamplesPerSecond())

	filename := outputPath(*sceneType, *out, time.Now())
	if err := imageio.Save(filename, img); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds the named scene with the given seed
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	s, err := scene.New(sceneType, seed)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Using %s scene (%d objects)...\n", sceneType, s.GetPrimitiveCount())
	return s, nil
}

// applyOverrides replaces scene settings with any non-zero options. A lone
// width or height keeps the camera's aspect ratio.
func applyOverrides(s *scene.Scene, opts renderOptions) {
	switch {
	case opts.width > 0 && opts.height > 0:
		s.SetResolution(opts.width, opts.height)
	case opts.width > 0:
		s.SetWidth(opts.width)
	case opts.height > 0:
		s.SetHeight(opts.height)
	}

	if opts.samples > 0 {
		s.SamplingConfig.SamplesPerPixel = opts.samples
	}
	if opts.depth > 0 {
		s.SamplingConfig.MaxDepth = opts.depth
	}
}

// outputPath returns out if set, otherwise a timestamped PNG under output/<scene>
func outputPath(sceneType, out string, now time.Time) string {
	if out != "" {
		return out
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneType, fmt.Sprintf("render_%s.png", timestamp))
}

// reportProgress prints the render counters every interval until done is closed
func reportProgress(progress *renderer.Progress, totalPixels uint64, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			fmt.Println(formatProgress(progress.PixelsCompleted(), progress.RaysCompleted(), totalPixels))
		}
	}
}

// formatProgress renders one progress line
func formatProgress(pixels, rays, totalPixels uint64) string {
	percent := 0.0
	if totalPixels > 0 {
		percent = 100 * float64(pixels) / float64(totalPixels)
	}
	return fmt.Sprintf("Progress: %5.1f%% (%d/%d pixels, %d rays)", percent, pixels, totalPixels, rays)
}
