package renderer

import (
	"image"
	"image/color"
)

// Image is a grid of gamma-corrected 8-bit RGB pixels, indexed [row][col]
// with row 0 at the top
type Image struct {
	Width  int
	Height int
	Pixels [][][3]uint8
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	pixels := make([][][3]uint8, height)
	for row := range pixels {
		pixels[row] = make([][3]uint8, width)
	}
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// At returns the pixel at the given row and column
func (img *Image) At(row, col int) [3]uint8 {
	return img.Pixels[row][col]
}

// ToRGBA converts the grid to an opaque image.RGBA for standard encoders
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for row, pixels := range img.Pixels {
		for col, p := range pixels {
			rgba.SetRGBA(col, row, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return rgba
}
