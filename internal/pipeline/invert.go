package pipeline

// Invert produces the photographic negative of src: every channel of every
// pixel becomes 255 minus its value. Inversion is self-inverse, so applying
// it twice reproduces the original buffer exactly.
func Invert(src *PixelBuffer) *PixelBuffer {
	out := &PixelBuffer{
		Width:  src.Width,
		Height: src.Height,
		Pix:    make([]uint8, len(src.Pix)),
	}
	for i, v := range src.Pix {
		out.Pix[i] = 255 - v
	}
	return out
}
