package transfer

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/image-transfer/internal/imaging"
)

// ErrDimensions is returned by Dimensions for sizes a transfer Image cannot carry.
var ErrDimensions = errors.New("dimensions out of range")

// ColorMode is the color classification carried by a transfer Image.
type ColorMode uint8

const (
	Grayscale ColorMode = 0
	Color     ColorMode = 1
)

func (c ColorMode) String() string {
	switch c {
	case Grayscale:
		return "grayscale"
	case Color:
		return "color"
	}
	return fmt.Sprintf("ColorMode(%d)", uint8(c))
}

// Image is the wire structure for one transferred image.
type Image struct {
	// Color is Grayscale when every pixel was gray at the time Data was encoded.
	Color ColorMode `json:"color"`

	// Data is the image encoded in its original container format.
	Data []byte `json:"data"`

	// Width and Height are supplied by the sender and not derived from Data.
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// Dimensions converts image dimensions to the uint32 wire fields. Negative
// values and values above math.MaxUint32 return an error wrapping ErrDimensions.
func Dimensions(width, height int) (uint32, uint32, error) {
	if width < 0 || height < 0 || uint64(width) > math.MaxUint32 || uint64(height) > math.MaxUint32 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	return uint32(width), uint32(height), nil
}

// Make packages p into a transfer Image.
//
// Color is set by imaging.IsGrayscale with the default threshold, Data by
// encoding p in its own format, and width and height are copied unchanged.
// Encoding errors are returned as is.
func Make(p imaging.Picture, width, height uint32) (*Image, error) {
	color := Color
	if imaging.IsGrayscale(p, imaging.DefaultGrayThreshold) {
		color = Grayscale
	}

	data, err := p.Encode(p.Format())
	if err != nil {
		return nil, err
	}

	return &Image{
		Color:  color,
		Data:   data,
		Width:  width,
		Height: height,
	}, nil
}

// Decode parses Data back into an image.
func (t *Image) Decode() (*imaging.Image, error) {
	return imaging.Decode(t.Data)
}
