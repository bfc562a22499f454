package imageio

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/tiff"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"png", FormatPNG, false},
		{".PNG", FormatPNG, false},
		{"ppm", FormatPPM, false},
		{"tif", FormatTIFF, false},
		{"tiff", FormatTIFF, false},
		{"jpg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, err := FormatFromPath("output/render.tiff"); err != nil || f != FormatTIFF {
		t.Errorf("Expected tiff, got %q (%v)", f, err)
	}
	if _, err := FormatFromPath("output/render"); err == nil {
		t.Error("Expected an error for a path without extension")
	}
}

// assertDecodedMatches checks a decoded image against testImage
func assertDecodedMatches(t *testing.T, decoded image.Image) {
	t.Helper()
	want := testImage()
	if decoded.Bounds().Dx() != want.Width || decoded.Bounds().Dy() != want.Height {
		t.Fatalf("Decoded size %v, want %dx%d", decoded.Bounds(), want.Width, want.Height)
	}
	for row := 0; row < want.Height; row++ {
		for col := 0; col < want.Width; col++ {
			r, g, b, a := decoded.At(col, row).RGBA()
			got := [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
			if got != want.At(row, col) || a != 0xffff {
				t.Errorf("Pixel (%d, %d) = %v alpha %d, want %v", row, col, got, a, want.At(row, col))
			}
		}
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		format Format
		decode func(*bytes.Buffer) (image.Image, error)
	}{
		{FormatPNG, func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }},
		{FormatTIFF, func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(bytes.NewReader(b.Bytes())) }},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, testImage(), tt.format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			decoded, err := tt.decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			assertDecodedMatches(t, decoded)
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), Format("bmp")); err == nil {
		t.Error("Expected an error for an unsupported format")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "render.ppm")

	if err := Save(path, testImage()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading saved file failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n2 2\n255\n") {
		t.Errorf("Saved file has unexpected header: %q", string(data[:min(len(data), 20)]))
	}
}

func TestFormat_ContentType(t *testing.T) {
	if FormatPNG.ContentType() != "image/png" || FormatTIFF.ContentType() != "image/tiff" {
		t.Error("Unexpected content types")
	}
}
