package svdpress

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Decode-only format.
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat reports an encode format with no registered codec.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// jpegQuality is the default quality used when re-encoding to JPEG.
const jpegQuality = 90

// EncodeOption adjusts encoder behavior for formats that support it.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	jpegQuality int
}

// WithJPEGQuality sets the JPEG encode quality, 1 to 100. Other
// formats ignore it.
func WithJPEGQuality(quality int) EncodeOption {
	return func(c *encodeConfig) {
		c.jpegQuality = quality
	}
}

// Decode reads an image from r, sniffing the container format. It
// recognizes png, jpeg, gif, bmp, tiff and webp and returns the format
// name alongside the image.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// Encode writes img to w in the named format: "png", "jpeg", "gif",
// "bmp" or "tiff". webp has no encoder and is rejected.
func Encode(w io.Writer, img image.Image, format string, opts ...EncodeOption) error {
	cfg := encodeConfig{jpegQuality: jpegQuality}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpeg", "jpg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: cfg.jpegQuality})
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, nil)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
