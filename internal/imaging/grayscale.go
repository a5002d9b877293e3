package imaging

// DefaultGrayThreshold is the per-channel tolerance used when classifying images.
const DefaultGrayThreshold = 0.01

// ChannelDiff returns the absolute difference between two channel values.
func ChannelDiff(c1, c2 float64) float64 {
	if c1 >= c2 {
		return c1 - c2
	}
	return c2 - c1
}

// IsGrayscale reports whether every pixel of p is a shade of gray.
//
// A bilevel picture is grayscale regardless of its pixels. Otherwise every
// pixel in the picture's own dimensions is scanned column by column and the
// scan stops at the first pixel that fails. A pixel passes when all three
// pairwise differences of R, G and B are within threshold and R, G and B are
// exactly equal. Alpha is ignored.
//
// Because exact equality is required as well, a non-negative threshold never
// admits a pixel that equality alone would reject.
func IsGrayscale(p Picture, threshold float64) bool {
	if p.Mode() == ModeBilevel {
		return true
	}

	width, height := p.Dimensions()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			c := p.Pixel(x, y)
			r, g, b := c[0], c[1], c[2]

			withinThreshold := ChannelDiff(r, g) <= threshold &&
				ChannelDiff(r, b) <= threshold &&
				ChannelDiff(g, b) <= threshold
			if r != g || g != b || !withinThreshold {
				return false
			}
		}
	}
	return true
}
