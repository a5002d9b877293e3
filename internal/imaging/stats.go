package imaging

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorStats summarizes how far an image strays from gray.
type ColorStats struct {
	// Pixels is the number of pixels scanned.
	Pixels int `json:"pixels"`

	// MaxSpread is the largest pairwise R/G/B difference seen in any pixel (0-255).
	// Zero means every pixel has R == G == B.
	MaxSpread float64 `json:"max_spread"`

	// MeanSaturation is the average HSL saturation over all pixels (0-1).
	MeanSaturation float64 `json:"mean_saturation"`
}

// Analyze scans every pixel of p and reports its color statistics.
//
// Unlike IsGrayscale, Analyze never stops early and does not special-case
// bilevel pictures.
func Analyze(p Picture) ColorStats {
	var stats ColorStats
	var satSum float64

	width, height := p.Dimensions()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := p.Pixel(x, y)
			spread := math.Max(ChannelDiff(c[0], c[1]), math.Max(ChannelDiff(c[0], c[2]), ChannelDiff(c[1], c[2])))
			if spread > stats.MaxSpread {
				stats.MaxSpread = spread
			}

			_, s, _ := colorful.Color{R: c[0] / 255, G: c[1] / 255, B: c[2] / 255}.Hsl()
			satSum += s
			stats.Pixels++
		}
	}

	if stats.Pixels > 0 {
		stats.MeanSaturation = satSum / float64(stats.Pixels)
	}
	return stats
}
