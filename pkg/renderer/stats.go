package renderer

import (
	"sync/atomic"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	NumWorkers   int           // Rows rendered concurrently
	Duration     time.Duration // Wall-clock render time
}

// SamplesPerSecond returns the sampling throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// Progress holds monotonically increasing counters shared by all render
// workers. Reads are safe while a render is running.
type Progress struct {
	rays   atomic.Uint64
	pixels atomic.Uint64
}

// NewProgress creates zeroed counters
func NewProgress() *Progress {
	return &Progress{}
}

// RaysCompleted returns the number of camera rays fully traced
func (p *Progress) RaysCompleted() uint64 {
	return p.rays.Load()
}

// PixelsCompleted returns the number of pixels written
func (p *Progress) PixelsCompleted() uint64 {
	return p.pixels.Load()
}

func (p *Progress) addRays(n uint64) {
	p.rays.Add(n)
}

func (p *Progress) addPixel() {
	p.pixels.Add(1)
}
