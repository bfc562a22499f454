package core

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
)

// Color is a linear RGB color
type Color struct {
	R, G, B float32
}

// NewColor creates a new Color
func NewColor(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// White returns (1, 1, 1)
func White() Color {
	return Color{1, 1, 1}
}

// Black returns (0, 0, 0)
func Black() Color {
	return Color{}
}

// Add returns the component-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float32) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the component-wise product
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Lerp linearly interpolates from c to end. t must lie in [0, 1].
func (c Color) Lerp(end Color, t float32) Color {
	if t < 0 || t > 1 {
		panic(fmt.Sprintf("core: lerp factor %g outside [0, 1]", t))
	}
	return c.Multiply(1 - t).Add(end.Multiply(t))
}

// GammaCorrect applies the gamma 2 transform (square root) to each channel
func (c Color) GammaCorrect() Color {
	return Color{
		R: math32.Sqrt(c.R),
		G: math32.Sqrt(c.G),
		B: math32.Sqrt(c.B),
	}
}

// ToRGB8 gamma-corrects the color and quantizes it to 8 bits per channel.
// Channels are clamped to [0, 0.999] before scaling by 256.
func (c Color) ToRGB8() [3]uint8 {
	g := c.GammaCorrect()
	return [3]uint8{quantize(g.R), quantize(g.G), quantize(g.B)}
}

func quantize(x float32) uint8 {
	// NaN compares false everywhere; treat it as black rather than leaking garbage
	if x != x {
		return 0
	}
	return uint8(256 * Clamp(x, 0, 0.999))
}

// RandomColor returns a color with each channel uniform in [0, 1)
func RandomColor(random *rand.Rand) Color {
	return Color{random.Float32(), random.Float32(), random.Float32()}
}

// RandomColorRange returns a color with each channel uniform in [min, max).
// It panics if min >= max.
func RandomColorRange(random *rand.Rand, min, max float32) Color {
	if min >= max {
		panic(fmt.Sprintf("core: invalid color range [%g, %g)", min, max))
	}
	span := max - min
	return Color{
		R: min + span*random.Float32(),
		G: min + span*random.Float32(),
		B: min + span*random.Float32(),
	}
}
