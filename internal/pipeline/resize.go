package pipeline

import (
	"fmt"
	"math"

	"github.com/disintegration/imaging"
)

// MaxDimension is the cap on the larger dimension of an input image.
// Larger inputs are downscaled before processing to bound pipeline cost.
const MaxDimension = 2000

// Downscale bounds the input to MaxDimension on its larger side.
//
// Images at or under the cap are returned as-is, without copying. Oversized
// images are resampled with a Lanczos filter so the larger dimension equals
// MaxDimension, preserving aspect ratio with nearest-integer rounding of the
// smaller dimension (never below 1 pixel).
//
// Returns ErrInvalidDimensions (wrapped) if either dimension is zero.
func Downscale(src *PixelBuffer) (*PixelBuffer, error) {
	if src == nil || src.Width <= 0 || src.Height <= 0 {
		return nil, fmt.Errorf("downscale: %w", ErrInvalidDimensions)
	}

	larger := src.Width
	if src.Height > larger {
		larger = src.Height
	}
	if larger <= MaxDimension {
		return src, nil
	}

	scale := float64(MaxDimension) / float64(larger)
	width := int(math.Round(float64(src.Width) * scale))
	height := int(math.Round(float64(src.Height) * scale))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	resized := imaging.Resize(src.ToImage(), width, height, imaging.Lanczos)
	return FromImage(resized), nil
}
