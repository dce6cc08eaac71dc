package pipeline

// Parameter ranges, matching the slider ranges of the interactive
// front-end. Out-of-range values are clamped rather than rejected.
const (
	MinAuraSize = 0.0
	MaxAuraSize = 50.0

	MinThreshold = 100
	MaxThreshold = 250
)

// Params configures one pipeline invocation. A Params value is read-only
// for the duration of the call; concurrent invocations each receive their
// own copy.
type Params struct {
	// AuraSize controls the width of the synthesized glow, 0 (no glow
	// spread) to 50 (wide halo). Clamped into [MinAuraSize, MaxAuraSize].
	AuraSize float64

	// Threshold is the minimum luminance, after inversion and grayscale
	// mapping, for a pixel to seed the glow. Clamped into
	// [MinThreshold, MaxThreshold].
	Threshold int
}

// DefaultParams returns the parameter values the front-end starts with.
func DefaultParams() Params {
	return Params{AuraSize: 15, Threshold: 200}
}

// clamped normalizes out-of-range parameters into their documented ranges.
func (p Params) clamped() Params {
	if p.AuraSize < MinAuraSize {
		p.AuraSize = MinAuraSize
	}
	if p.AuraSize > MaxAuraSize {
		p.AuraSize = MaxAuraSize
	}
	if p.Threshold < MinThreshold {
		p.Threshold = MinThreshold
	}
	if p.Threshold > MaxThreshold {
		p.Threshold = MaxThreshold
	}
	return p
}

// Result is the outcome of one pipeline invocation.
type Result struct {
	// Image is the final processed buffer: grayscale of the inverted
	// source with the aura glow blended over it.
	Image *PixelBuffer

	// BrightPixels is the number of pixels that exceeded the luminance
	// threshold and seeded the glow.
	BrightPixels int
}

// Process runs the full effect chain over src and returns the final buffer.
//
// The stages run in a fixed order: downscale oversized input, invert
// colors, map to weighted grayscale, threshold into a brightness mask,
// blur the mask into a glow, and blend the glow over the grayscale base
// with a lighten-only composite. Each stage allocates its own output;
// src is never mutated.
//
// Out-of-range parameters are clamped, not rejected. The only failure is
// ErrInvalidDimensions for a zero-sized src (ErrDimensionMismatch from the
// blend stage cannot occur here, since every intermediate buffer shares
// the downscaled dimensions).
//
// Process is deterministic — identical input and parameters produce
// byte-identical output — and holds no state across calls, so independent
// invocations may run concurrently.
func Process(src *PixelBuffer, params Params) (*Result, error) {
	p := params.clamped()

	resized, err := Downscale(src)
	if err != nil {
		return nil, err
	}

	gray := Grayscale(Invert(resized))
	thr := Threshold(gray, p.Threshold)

	// With an all-zero mask the blend is a no-op; skip the blur and hand
	// back the grayscale buffer directly.
	if thr.BrightPixels == 0 {
		return &Result{Image: gray, BrightPixels: 0}, nil
	}

	glow := BlurMask(thr.Mask, p.AuraSize)
	thr.Mask = nil // pre-blur mask no longer needed; let it be collected

	final, err := LightenBlend(gray, glow)
	if err != nil {
		return nil, err
	}
	return &Result{Image: final, BrightPixels: thr.BrightPixels}, nil
}
