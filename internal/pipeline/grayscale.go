package pipeline

import "math"

// ITU-R BT.601 perceptual luminance weights. These are a hard contract of
// the pipeline: tests assert against the literal rounded values they
// produce for the primary colors.
const (
	LumaRed   = 0.299
	LumaGreen = 0.587
	LumaBlue  = 0.114
)

// Grayscale maps src to a neutral-gray buffer. Each output pixel carries
// round(LumaRed*R + LumaGreen*G + LumaBlue*B) replicated into all three
// channels. The weights sum to 1, so the result is always in [0, 255].
func Grayscale(src *PixelBuffer) *PixelBuffer {
	out := &PixelBuffer{
		Width:  src.Width,
		Height: src.Height,
		Pix:    make([]uint8, len(src.Pix)),
	}
	for i := 0; i < len(src.Pix); i += Channels {
		luma := LumaRed*float64(src.Pix[i+0]) +
			LumaGreen*float64(src.Pix[i+1]) +
			LumaBlue*float64(src.Pix[i+2])
		v := uint8(math.Round(luma))
		out.Pix[i+0] = v
		out.Pix[i+1] = v
		out.Pix[i+2] = v
	}
	return out
}
