// Package client sends every image in a directory through a processor and stores the results.
package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"

	"github.com/ironsheep/image-transfer/internal/cli"
	"github.com/ironsheep/image-transfer/internal/imaging"
	"github.com/ironsheep/image-transfer/internal/pipeline"
	"github.com/ironsheep/image-transfer/internal/transfer"
)

// Summary counts what a Run did.
type Summary struct {
	Processed int
	Grayscale int
	Skipped   int
}

// Run packages each image file directly inside opts.Input, processes it with
// p using the options requested on the command line, and writes the result to
// opts.Output under the same file name.
//
// Subdirectories are ignored. Files that are not decodable images, or whose
// format cannot be re-encoded, are skipped. Any other failure stops the run.
func Run(ctx context.Context, opts cli.ClientOptions, p pipeline.Processor) (*Summary, error) {
	entries, err := os.ReadDir(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}
	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	ctxLog := log.WithFields(log.Fields{
		"service": opts.Address(),
		"rotate":  opts.Rotate,
		"mean":    opts.Mean,
	})
	ctxLog.Debug("starting transfer")

	summary := &Summary{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		name := e.Name()
		ti, err := pack(filepath.Join(opts.Input, name))
		if errors.Is(err, imaging.ErrDecode) || errors.Is(err, imaging.ErrUnsupportedFormat) {
			ctxLog.WithField("file", name).WithError(err).Warn("skipping")
			summary.Skipped++
			continue
		}
		if err != nil {
			return summary, err
		}

		out, err := p.Process(ctx, ti, opts.Pipeline())
		if err != nil {
			return summary, fmt.Errorf("failed to process %s: %w", name, err)
		}

		if err := os.WriteFile(filepath.Join(opts.Output, name), out.Data, 0o644); err != nil {
			return summary, fmt.Errorf("failed to write %s: %w", name, err)
		}

		if ti.Color == transfer.Grayscale {
			summary.Grayscale++
		}
		summary.Processed++
		ctxLog.WithFields(log.Fields{
			"file":   name,
			"color":  ti.Color,
			"width":  out.Width,
			"height": out.Height,
		}).Info("processed")
	}

	return summary, nil
}

// pack loads the image at path and packages it with its own dimensions.
func pack(path string) (*transfer.Image, error) {
	img, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}
	width, height, err := transfer.Dimensions(img.Dimensions())
	if err != nil {
		return nil, err
	}
	return transfer.Make(img, width, height)
}
