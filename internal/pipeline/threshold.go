package pipeline

// ThresholdResult carries the binary brightness mask along with the number
// of pixels that qualified as bright ("luminance points" in the UI).
type ThresholdResult struct {
	Mask         *Mask
	BrightPixels int
}

// Threshold marks every pixel of the grayscale buffer whose luminance is at
// least cutoff. Marked pixels get mask value 255, all others 0 — the
// thresholding is strictly binary, and a pixel exactly at the cutoff counts
// as bright.
//
// gray must be a neutral-gray buffer (all three channels equal); only the
// first channel is read.
func Threshold(gray *PixelBuffer, cutoff int) *ThresholdResult {
	mask := NewMask(gray.Width, gray.Height)
	bright := 0
	for p := 0; p < len(mask.Pix); p++ {
		if int(gray.Pix[p*Channels]) >= cutoff {
			mask.Pix[p] = 255
			bright++
		}
	}
	return &ThresholdResult{Mask: mask, BrightPixels: bright}
}
