package pipeline

import "math"

// Aura-to-sigma mapping constants.
//
// The glow width is a tunable aesthetic, not a correctness contract: any
// monotonic, continuous mapping from aura size to Gaussian sigma is
// acceptable. This one scales sigma with the image area relative to a
// 220x220 reference so the same aura setting produces a visually similar
// glow on small previews and full-size images, with a floor of 0.5 so the
// smallest non-zero aura still reads as a tight halo.
const (
	sigmaPerAura    = 0.2
	sigmaFloor      = 0.5
	referenceExtent = 220.0
)

// auraSigma derives the Gaussian standard deviation from the aura size and
// the mask dimensions. Monotonic and continuous in auraSize for
// auraSize > 0; callers treat auraSize == 0 as "no blur" before reaching
// this point.
func auraSigma(auraSize float64, width, height int) float64 {
	scale := math.Sqrt(float64(width)*float64(height)) / referenceExtent
	sigma := auraSize * sigmaPerAura * scale
	if sigma < sigmaFloor {
		sigma = sigmaFloor
	}
	return sigma
}

// gaussianKernel1D builds a normalized 1D Gaussian kernel for the given
// sigma, with radius ceil(3*sigma). The kernel sums to 1, so convolution
// preserves total mask energy away from the borders.
func gaussianKernel1D(sigma float64) ([]float64, int) {
	if sigma <= 0 {
		return []float64{1}, 0
	}
	radius := int(math.Ceil(3 * sigma))
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-0.5 * float64(i*i) / (sigma * sigma))
		kernel[i+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel, radius
}

// BlurMask softens the brightness mask into a glow with a separable 2D
// Gaussian blur: a horizontal 1D pass followed by a vertical 1D pass, which
// costs O(pixels * radius) instead of the O(pixels * radius^2) of a direct
// 2D kernel.
//
// Sampling past the borders clamps to the edge pixel (replicate-edge), so
// a bright region touching the border keeps its full glow instead of being
// darkened by implicit zeros. An auraSize of 0 or less means no blur: the
// input mask is returned unchanged.
func BlurMask(m *Mask, auraSize float64) *Mask {
	if auraSize <= 0 {
		return m
	}

	kernel, radius := gaussianKernel1D(auraSigma(auraSize, m.Width, m.Height))
	if radius == 0 {
		return m
	}

	width := m.Width
	height := m.Height

	// Horizontal pass into a float buffer to avoid quantizing between
	// passes.
	tmp := make([]float64, width*height)
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			sum := 0.0
			for k := -radius; k <= radius; k++ {
				sum += float64(m.Pix[row+clamp(x+k, 0, width-1)]) * kernel[k+radius]
			}
			tmp[row+x] = sum
		}
	}

	// Vertical pass, rounding back to 8-bit.
	out := NewMask(width, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			sum := 0.0
			for k := -radius; k <= radius; k++ {
				sum += tmp[clamp(y+k, 0, height-1)*width+x] * kernel[k+radius]
			}
			out.Pix[y*width+x] = uint8(math.Round(sum))
		}
	}
	return out
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution passes.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
