// Package pipeline implements the fixed visual-effect chain at the heart of
// the tool: invert colors, derive a luminance-weighted grayscale image,
// detect bright regions with a threshold, synthesize a soft glow ("aura")
// by blurring the bright-region mask, and blend the glow back over the
// grayscale base with a lighten-only composite.
//
// # Data Model
//
// All stages operate on PixelBuffer (row-major 8-bit RGB) and Mask
// (single-channel intensity) values. Every transform is a pure function
// that allocates its output, so a later stage can hold both an earlier
// buffer and a derived one without aliasing concerns. Buffers use a
// 0-based coordinate system with (0,0) at the top-left corner.
//
// # Pipeline Order
//
// Process sequences the stages in a fixed order:
//
//	source -> Downscale -> Invert -> Grayscale -> Threshold -> BlurMask -> LightenBlend
//
// The stage order and formulas are policy, not configuration: there is no
// effect graph to rearrange. The tunable surface is exactly the Params
// struct (aura size and luminance threshold), and out-of-range values are
// clamped to the documented slider ranges rather than rejected.
//
// # Concurrency
//
// The pipeline is synchronous and CPU-bound with no shared state between
// invocations; callers that want batch throughput run one Process call per
// image on their own goroutines.
//
// # Error Handling
//
// Functions return errors rather than panicking and never log. The
// taxonomy is small: ErrInvalidDimensions for zero-sized input (bad data,
// not retryable) and ErrDimensionMismatch for misaligned blend inputs
// (an orchestration bug, not bad data). File I/O, encoding, and progress
// reporting belong to the callers in internal/batch and cmd/aura.
package pipeline
