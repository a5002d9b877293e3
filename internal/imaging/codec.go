package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

var (
	// ErrUnsupportedFormat is returned when an image cannot be encoded into the requested format.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrDecode is returned when bytes are not a recognized image container.
	ErrDecode = errors.New("failed to decode image")
)

// Encode writes img into the named container format and returns the encoded bytes.
//
// Parameters:
//   - img: The decoded image to encode.
//   - format: Format name or file extension, case-insensitive, with or without
//     a leading dot: "png", "jpeg"/"jpg", "gif", "tiff"/"tif", "bmp".
//
// Returns:
//   - []byte: The encoded image.
//   - error: Wraps ErrUnsupportedFormat for unknown or decode-only formats, or
//     the encoder's error if encoding itself fails.
//
// JPEG output is lossy; the other formats reproduce pixels exactly, except that
// GIF quantizes images that are not already paletted with at most 256 colors.
func Encode(img image.Image, format string) ([]byte, error) {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, f); err != nil {
		return nil, fmt.Errorf("failed to encode %s image: %w", f, err)
	}
	return buf.Bytes(), nil
}

// Decode parses an encoded image, detecting the container format from its contents.
//
// The returned Image reports the detected format (e.g. "png", "jpeg"), so
// re-encoding it with Image.Encode(img.Format()) uses the same container.
// Errors wrap ErrDecode.
func Decode(data []byte) (*Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return New(img, format), nil
}

// Load reads and decodes the image file at path.
//
// Errors:
//   - Returns error if the file does not exist or cannot be read
//   - Returns error wrapping ErrDecode if the file is not a recognized image
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return New(img, format), nil
}
