package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/apex/log"

	"github.com/ironsheep/image-transfer/internal/imaging"
	"github.com/ironsheep/image-transfer/internal/pipeline"
	"github.com/ironsheep/image-transfer/internal/transfer"
)

var errMissingImage = errors.New("missing image")

type processParams struct {
	Image *transfer.Image `json:"image"`
	pipeline.Options
}

func (s *Server) handleProcess(ctx context.Context, req *Request) *Response {
	var p processParams
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}
	if p.Image == nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", errMissingImage.Error())
	}
	out, err := s.processor.Process(ctx, p.Image, p.Options)
	if err != nil {
		log.WithError(err).WithField("rotate", p.Rotate).Warn("processing failed")
		return s.errorResponse(req.ID, codeProcessing, "Processing failed", err.Error())
	}

	log.WithFields(log.Fields{
		"rotate": p.Rotate,
		"mean":   p.Mean,
		"width":  out.Width,
		"height": out.Height,
		"color":  out.Color,
	}).Debug("processed image")

	return s.result(req.ID, out)
}

type classifyParams struct {
	Image *transfer.Image `json:"image"`
}

// ClassifyResult describes the color content of a transfer image.
type ClassifyResult struct {
	Color     transfer.ColorMode `json:"color"`
	Grayscale bool               `json:"grayscale"`
	Mode      string             `json:"mode"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Stats     imaging.ColorStats `json:"stats"`
}

func (s *Server) handleClassify(req *Request) *Response {
	var p classifyParams
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}
	if p.Image == nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", errMissingImage.Error())
	}

	img, err := p.Image.Decode()
	if err != nil {
		return s.errorResponse(req.ID, codeProcessing, "Processing failed", err.Error())
	}

	gray := imaging.IsGrayscale(img, imaging.DefaultGrayThreshold)
	color := transfer.Color
	if gray {
		color = transfer.Grayscale
	}
	width, height := img.Dimensions()

	return s.result(req.ID, &ClassifyResult{
		Color:     color,
		Grayscale: gray,
		Mode:      img.Mode().String(),
		Width:     width,
		Height:    height,
		Stats:     imaging.Analyze(img),
	})
}
