// Package image loads brand artwork and derives colours from it.
package image

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/brandkit/internal/colour"
	"github.com/jmylchreest/brandkit/internal/security"
)

// MaxImageBytes caps how much of an image file is read before decoding fails.
const MaxImageBytes = 32 << 20

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if err := ValidateImagePath(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(security.NewLimitedReader(file, MaxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// ValidateImagePath checks that path names a regular file with a
// supported image extension.
func ValidateImagePath(path string) error {
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file not found: %s", path)
		}
		return fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !isImageFile(path) {
		return fmt.Errorf("unsupported image extension: %s (supported: %s)",
			filepath.Ext(path), strings.Join(SupportedImageExtensions(), ", "))
	}

	return nil
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// isImageFile checks if a file has a supported image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// AverageColour returns the alpha-weighted mean colour of img.
// Fully transparent pixels do not contribute, so a logo on a transparent
// background yields the colour of the mark itself.
func AverageColour(img image.Image) (colour.RGB, error) {
	if img == nil {
		return colour.RGB{}, fmt.Errorf("image cannot be nil")
	}

	bounds := img.Bounds()
	var sumR, sumG, sumB, sumA float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// RGBA returns alpha-premultiplied 16-bit channels.
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			sumR += float64(r)
			sumG += float64(g)
			sumB += float64(b)
			sumA += float64(a)
		}
	}

	if sumA == 0 {
		return colour.RGB{}, fmt.Errorf("image has no opaque pixels")
	}

	// Premultiplied sums divided by total alpha give the weighted mean.
	return colour.RGB{
		R: toByte(sumR / sumA),
		G: toByte(sumG / sumA),
		B: toByte(sumB / sumA),
	}, nil
}

func toByte(v float64) uint8 {
	v = v*255 + 0.5
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}

// BaseColourFromFile loads an image and returns its average colour as hex.
func BaseColourFromFile(loader Loader, path string) (string, error) {
	img, err := loader.Load(path)
	if err != nil {
		return "", err
	}
	rgb, err := AverageColour(img)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return rgb.Hex(), nil
}
