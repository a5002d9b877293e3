package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createPatternImage creates an opaque image with a distinct color per pixel.
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 40), uint8(y * 40), uint8((x + y) * 20), 255})
		}
	}
	return img
}

func assertSamePixels(t *testing.T, want, got Picture) {
	t.Helper()
	ww, wh := want.Dimensions()
	gw, gh := got.Dimensions()
	if ww != gw || wh != gh {
		t.Fatalf("dimensions: got %dx%d, want %dx%d", gw, gh, ww, wh)
	}
	for y := 0; y < wh; y++ {
		for x := 0; x < ww; x++ {
			if w, g := want.Pixel(x, y), got.Pixel(x, y); w != g {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, g, w)
			}
		}
	}
}

func TestEncodeDecode_LosslessRoundTrip(t *testing.T) {
	formats := []string{"png", "tiff", "bmp"}

	for _, format := range formats {
		t.Run(format, func(t *testing.T) {
			src := New(createPatternImage(5, 4), format)

			data, err := Encode(src.Image(), format)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			decoded, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded.Format() != format {
				t.Errorf("Format: got %s, want %s", decoded.Format(), format)
			}
			assertSamePixels(t, src, decoded)
		})
	}
}

func TestEncodeDecode_GIFPaletted(t *testing.T) {
	pal := color.Palette{color.Black, color.White, color.RGBA{255, 0, 0, 255}}
	src := image.NewPaletted(image.Rect(0, 0, 3, 3), pal)
	src.SetColorIndex(1, 1, 2)
	src.SetColorIndex(2, 0, 1)

	data, err := Encode(src, "gif")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Format() != "gif" {
		t.Errorf("Format: got %s, want gif", decoded.Format())
	}
	assertSamePixels(t, New(src, "gif"), decoded)
}

func TestEncodeDecode_JPEG(t *testing.T) {
	src := createInMemoryImage(8, 8, color.RGBA{200, 100, 50, 255})

	data, err := Encode(src, "jpg")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Format() != "jpeg" {
		t.Errorf("Format: got %s, want jpeg", decoded.Format())
	}
	w, h := decoded.Dimensions()
	if w != 8 || h != 8 {
		t.Errorf("Dimensions: got %dx%d, want 8x8", w, h)
	}
}

func TestEncode_FormatNames(t *testing.T) {
	img := createInMemoryImage(2, 2, color.White)
	for _, format := range []string{"PNG", ".png", "jpeg", "JPG", "tif", "bmp", "gif"} {
		if _, err := Encode(img, format); err != nil {
			t.Errorf("Encode(%q) failed: %v", format, err)
		}
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	img := createInMemoryImage(2, 2, color.White)
	for _, format := range []string{"", "webp", "xcf"} {
		_, err := Encode(img, format)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Encode(%q): got %v, want ErrUnsupportedFormat", format, err)
		}
	}
}

func TestDecode_InvalidData(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not an image"), {0x89, 'P', 'N', 'G'}} {
		_, err := Decode(data)
		if !errors.Is(err, ErrDecode) {
			t.Errorf("Decode(%q): got %v, want ErrDecode", data, err)
		}
	}
}

func TestImage_EncodeMatchesEncode(t *testing.T) {
	src := createPatternImage(3, 2)
	img := New(src, "png")

	viaMethod, err := img.Encode(img.Format())
	if err != nil {
		t.Fatalf("Image.Encode failed: %v", err)
	}
	direct, err := Encode(src, "png")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(viaMethod, direct) {
		t.Error("Image.Encode and Encode produced different bytes")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pattern.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := png.Encode(f, createPatternImage(4, 3)); err != nil {
		f.Close()
		t.Fatalf("failed to encode image: %v", err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Format() != "png" {
		t.Errorf("Format: got %s, want png", img.Format())
	}
	w, h := img.Dimensions()
	if w != 4 || h != 3 {
		t.Errorf("Dimensions: got %dx%d, want 4x3", w, h)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	if _, err := Load("/nonexistent/path/to/image.png"); err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestLoad_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("Load: got %v, want ErrDecode", err)
	}
}
