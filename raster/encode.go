package raster

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Supported output formats.
const (
	PNG  = "png"
	JPEG = "jpg"
	BMP  = "bmp"
)

// ErrUnsupportedFormat is returned for an unknown file extension or format name.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// FormatFromPath guesses the output format from the file extension.
// Files without an extension are written as PNG.
func FormatFromPath(path string) (string, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseFormat normalizes a format name.
func ParseFormat(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteFile encodes img into the file at path, choosing the format from its extension.
func WriteFile(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create the output file: %w", err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("could not encode %s: %w", path, err)
	}
	return f.Close()
}
