package pipeline

import (
	"context"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	dimg "github.com/disintegration/imaging"

	"github.com/ironsheep/image-transfer/internal/imaging"
	"github.com/ironsheep/image-transfer/internal/transfer"
)

// meanRadius gives a 3x3 box kernel.
const meanRadius = 1

// Options selects the operations applied by Process.
type Options struct {
	Rotate Rotation `json:"rotate"`
	Mean   bool     `json:"mean"`
}

// Identity reports whether o leaves the image untouched.
func (o Options) Identity() bool {
	return o.Rotate == RotateNone && !o.Mean
}

// Processor runs the pipeline on a transfer image.
type Processor interface {
	Process(ctx context.Context, in *transfer.Image, opts Options) (*transfer.Image, error)
}

// Local runs the pipeline in the calling goroutine.
type Local struct{}

var _ Processor = Local{}

func (Local) Process(ctx context.Context, in *transfer.Image, opts Options) (*transfer.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Process(in, opts)
}

// Process applies opts to in and returns a new transfer image.
//
// The result keeps the container format of in. Its color classification is
// recomputed because the mean filter can introduce intermediate shades.
// When opts is the identity, Process returns a copy of in without decoding.
func Process(in *transfer.Image, opts Options) (*transfer.Image, error) {
	if opts.Identity() {
		out := *in
		return &out, nil
	}

	src, err := in.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode transfer image: %w", err)
	}

	img, err := rotate(src.Image(), opts.Rotate)
	if err != nil {
		return nil, err
	}
	if opts.Mean {
		img = blur.Box(img, meanRadius)
	}

	width, height := in.Width, in.Height
	if opts.Rotate.QuarterTurn() {
		width, height = height, width
	}

	out, err := transfer.Make(imaging.New(img, src.Format()), width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to package processed image: %w", err)
	}
	return out, nil
}

func rotate(img image.Image, r Rotation) (image.Image, error) {
	switch r {
	case RotateNone:
		return img, nil
	case Rotate90:
		return dimg.Rotate90(img), nil
	case Rotate180:
		return dimg.Rotate180(img), nil
	case Rotate270:
		return dimg.Rotate270(img), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownRotation, r)
}
