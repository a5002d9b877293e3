package imaging

import (
	"image"
	"image/color"
)

// Mode describes how an image stores its pixels.
type Mode int

const (
	ModeUnknown Mode = iota
	// ModeBilevel is a paletted image whose palette holds only pure black and/or pure white.
	ModeBilevel
	ModeGray
	ModeGray16
	ModePaletted
	ModeRGBA
	ModeNRGBA
	ModeRGBA64
	ModeNRGBA64
	ModeCMYK
	ModeYCbCr
)

var modeNames = map[Mode]string{
	ModeUnknown:  "unknown",
	ModeBilevel:  "bilevel",
	ModeGray:     "gray",
	ModeGray16:   "gray16",
	ModePaletted: "paletted",
	ModeRGBA:     "rgba",
	ModeNRGBA:    "nrgba",
	ModeRGBA64:   "rgba64",
	ModeNRGBA64:  "nrgba64",
	ModeCMYK:     "cmyk",
	ModeYCbCr:    "ycbcr",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return modeNames[ModeUnknown]
}

// ModeOf reports the pixel representation of img based on its concrete type.
func ModeOf(img image.Image) Mode {
	switch m := img.(type) {
	case *image.Paletted:
		if isBilevelPalette(m.Palette) {
			return ModeBilevel
		}
		return ModePaletted
	case *image.Gray:
		return ModeGray
	case *image.Gray16:
		return ModeGray16
	case *image.RGBA:
		return ModeRGBA
	case *image.NRGBA:
		return ModeNRGBA
	case *image.RGBA64:
		return ModeRGBA64
	case *image.NRGBA64:
		return ModeNRGBA64
	case *image.CMYK:
		return ModeCMYK
	case *image.YCbCr:
		return ModeYCbCr
	}
	return ModeUnknown
}

// isBilevelPalette reports whether every palette entry is opaque black or opaque white.
func isBilevelPalette(p color.Palette) bool {
	if len(p) == 0 || len(p) > 2 {
		return false
	}
	for _, c := range p {
		r, g, b, a := c.RGBA()
		if a != 0xffff || r != g || g != b {
			return false
		}
		if r != 0 && r != 0xffff {
			return false
		}
	}
	return true
}

// Channels holds the R, G, B and A components of one pixel in 8-bit scale (0-255).
type Channels [4]float64

// Picture is the image capability used by classification and packaging.
type Picture interface {
	// Format is the container format tag the image was decoded from.
	Format() string
	Mode() Mode
	Dimensions() (width, height int)
	// Pixel returns the channels at (x, y), relative to the image origin.
	Pixel(x, y int) Channels
	Encode(format string) ([]byte, error)
}

// Image is a decoded image together with its container format.
//
// Image implements Picture on top of the standard library image types.
type Image struct {
	img    image.Image
	format string
}

var _ Picture = (*Image)(nil)

// New wraps an already decoded image. format is the container format that
// Encode will use when packaging the image, e.g. "png" or "jpeg".
func New(img image.Image, format string) *Image {
	return &Image{img: img, format: format}
}

// Image returns the underlying decoded image.
func (i *Image) Image() image.Image {
	return i.img
}

func (i *Image) Format() string {
	return i.format
}

func (i *Image) Mode() Mode {
	return ModeOf(i.img)
}

func (i *Image) Dimensions() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Pixel returns non-premultiplied 8-bit channels, so a translucent gray pixel
// still reports R == G == B.
func (i *Image) Pixel(x, y int) Channels {
	b := i.img.Bounds()
	c := color.NRGBAModel.Convert(i.img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
	return Channels{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
}

func (i *Image) Encode(format string) ([]byte, error) {
	return Encode(i.img, format)
}
