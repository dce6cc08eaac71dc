package pipeline

import "fmt"

// LightenBlend composites the glow mask over the grayscale base by taking
// the per-channel maximum, so glowing regions whiten while darker regions
// keep their grayscale value. The output is never darker than either input.
//
// The two inputs must be aligned; a size mismatch returns
// ErrDimensionMismatch (wrapped). The orchestrator always hands this
// function buffers of equal dimensions, so hitting that error indicates a
// bug upstream rather than bad input data.
func LightenBlend(gray *PixelBuffer, glow *Mask) (*PixelBuffer, error) {
	if gray.Width != glow.Width || gray.Height != glow.Height {
		return nil, fmt.Errorf("blend %dx%d with %dx%d: %w",
			gray.Width, gray.Height, glow.Width, glow.Height, ErrDimensionMismatch)
	}

	out := &PixelBuffer{
		Width:  gray.Width,
		Height: gray.Height,
		Pix:    make([]uint8, len(gray.Pix)),
	}
	for p, g := range glow.Pix {
		i := p * Channels
		for c := 0; c < Channels; c++ {
			v := gray.Pix[i+c]
			if g > v {
				v = g
			}
			out.Pix[i+c] = v
		}
	}
	return out, nil
}
