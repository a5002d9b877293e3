package pipeline

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/image-transfer/internal/imaging"
	"github.com/ironsheep/image-transfer/internal/transfer"
)

// makeTransfer packages img as a PNG transfer image with its own dimensions.
func makeTransfer(t *testing.T, img image.Image) *transfer.Image {
	t.Helper()
	b := img.Bounds()
	ti, err := transfer.Make(imaging.New(img, "png"), uint32(b.Dx()), uint32(b.Dy()))
	if err != nil {
		t.Fatalf("transfer.Make failed: %v", err)
	}
	return ti
}

func decodeTransfer(t *testing.T, ti *transfer.Image) *imaging.Image {
	t.Helper()
	img, err := ti.Decode()
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return img
}

func TestProcess_Identity(t *testing.T) {
	in := makeTransfer(t, image.NewGray(image.Rect(0, 0, 3, 2)))

	out, err := Process(in, Options{})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if out == in {
		t.Error("Process should return a copy")
	}
	if out.Width != 3 || out.Height != 2 || out.Color != in.Color {
		t.Errorf("unexpected result: %+v", out)
	}
}

func TestProcess_Rotate90(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	red := color.RGBA{255, 0, 0, 255}
	src.Set(2, 0, red) // top-right corner

	out, err := Process(makeTransfer(t, src), Options{Rotate: Rotate90})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if out.Width != 2 || out.Height != 3 {
		t.Errorf("declared dimensions: got %dx%d, want 2x3", out.Width, out.Height)
	}

	img := decodeTransfer(t, out)
	if img.Format() != "png" {
		t.Errorf("Format: got %s, want png", img.Format())
	}
	if w, h := img.Dimensions(); w != 2 || h != 3 {
		t.Fatalf("decoded dimensions: got %dx%d, want 2x3", w, h)
	}
	// Counter-clockwise: the top-right corner moves to the top-left.
	if got := img.Pixel(0, 0); got != (imaging.Channels{255, 0, 0, 255}) {
		t.Errorf("pixel (0,0): got %v, want red", got)
	}
	if out.Color != transfer.Color {
		t.Errorf("Color: got %v, want color", out.Color)
	}
}

func TestProcess_Rotate180KeepsDimensions(t *testing.T) {
	out, err := Process(makeTransfer(t, image.NewGray(image.Rect(0, 0, 4, 1))), Options{Rotate: Rotate180})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if out.Width != 4 || out.Height != 1 {
		t.Errorf("dimensions: got %dx%d, want 4x1", out.Width, out.Height)
	}
}

func TestProcess_Rotate270(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(0, 0, color.RGBA{0, 0, 255, 255}) // top-left corner

	out, err := Process(makeTransfer(t, src), Options{Rotate: Rotate270})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	img := decodeTransfer(t, out)
	// Clockwise quarter turn: the top-left corner moves to the top-right.
	if got := img.Pixel(1, 0); got != (imaging.Channels{0, 0, 255, 255}) {
		t.Errorf("pixel (1,0): got %v, want blue", got)
	}
}

func TestProcess_MeanUniformImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			src.Set(x, y, color.RGBA{100, 100, 100, 255})
		}
	}

	out, err := Process(makeTransfer(t, src), Options{Mean: true})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	img := decodeTransfer(t, out)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := img.Pixel(x, y)
			if imaging.ChannelDiff(c[0], 100) > 1 {
				t.Fatalf("pixel (%d,%d): got %v, want about 100", x, y, c)
			}
		}
	}
}

func TestProcess_MeanSmoothsSpike(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 5, 5))
	src.SetGray(2, 2, color.Gray{Y: 255})

	out, err := Process(makeTransfer(t, src), Options{Mean: true})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	img := decodeTransfer(t, out)
	center := img.Pixel(2, 2)[0]
	neighbor := img.Pixel(1, 2)[0]
	if center >= 255 || center == 0 {
		t.Errorf("center: got %v, want a value between 0 and 255", center)
	}
	if neighbor == 0 {
		t.Error("neighbor should pick up part of the spike")
	}
}

func TestProcess_InvalidData(t *testing.T) {
	_, err := Process(&transfer.Image{Data: []byte("nope")}, Options{Mean: true})
	if !errors.Is(err, imaging.ErrDecode) {
		t.Errorf("Process: got %v, want ErrDecode", err)
	}
}

func TestProcess_UnknownRotation(t *testing.T) {
	in := makeTransfer(t, image.NewGray(image.Rect(0, 0, 1, 1)))
	_, err := Process(in, Options{Rotate: Rotation(42)})
	if !errors.Is(err, ErrUnknownRotation) {
		t.Errorf("Process: got %v, want ErrUnknownRotation", err)
	}
}

func TestLocal_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := makeTransfer(t, image.NewGray(image.Rect(0, 0, 1, 1)))
	if _, err := (Local{}).Process(ctx, in, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Process: got %v, want context.Canceled", err)
	}
}
