package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// WritePPM writes img as a plain-text (P3) PPM: a header followed by one
// "R G B" line per pixel, top row first
func WritePPM(w io.Writer, img *renderer.Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}
	for _, row := range img.Pixels {
		for _, p := range row {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", p[0], p[1], p[2]); err != nil {
				return fmt.Errorf("write ppm pixel: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush ppm: %w", err)
	}
	return nil
}
