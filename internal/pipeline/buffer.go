package pipeline

import (
	"errors"
	"fmt"
	"image"
)

// Channels is the number of color channels in a PixelBuffer (RGB, no alpha).
const Channels = 3

// Sentinel errors for the pipeline error taxonomy.
//
// ErrInvalidDimensions reports bad input data (a zero-sized buffer); it is
// fatal to the invocation and retrying with the same input cannot succeed.
// ErrDimensionMismatch reports an internal orchestration bug (the blend
// stage received buffers of different sizes); it is a programming-error
// class, distinct from input-data errors. Both are matched with errors.Is.
var (
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrDimensionMismatch = errors.New("buffer dimension mismatch")
)

// PixelBuffer is a width x height grid of 8-bit RGB triples in row-major
// order. It is the unit of data every pipeline stage consumes and produces.
//
// # Layout
//
// Pix holds exactly Width*Height*Channels bytes. The byte index for pixel
// (x, y) channel c is (y*Width + x)*Channels + c. Coordinates are 0-based
// with (0,0) at the top-left corner.
//
// # Ownership
//
// Stages never mutate a buffer they were handed; each transform allocates
// its output. A stage that returns its input unchanged (for example the
// resizer on an image already under the size cap) transfers ownership of
// that same buffer to the caller.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixelBuffer allocates a zeroed buffer of the given dimensions.
//
// Returns ErrInvalidDimensions (wrapped) if width or height is not positive.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}, nil
}

// Offset returns the index into Pix of the first channel of pixel (x, y).
func (b *PixelBuffer) Offset(x, y int) int {
	return (y*b.Width + x) * Channels
}

// FromImage converts any image.Image into a PixelBuffer, flattening 16-bit
// color models down to 8 bits per channel and discarding alpha (sources are
// treated as opaque RGB).
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf := &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}

	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// Convert from 16-bit to 8-bit
			buf.Pix[i+0] = uint8(r >> 8)
			buf.Pix[i+1] = uint8(g >> 8)
			buf.Pix[i+2] = uint8(b >> 8)
			i += Channels
		}
	}
	return buf
}

// ToImage converts the buffer into an *image.NRGBA with full opacity,
// suitable for resampling or encoding by standard image libraries.
func (b *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	src := 0
	dst := 0
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.Pix[dst+0] = b.Pix[src+0]
			img.Pix[dst+1] = b.Pix[src+1]
			img.Pix[dst+2] = b.Pix[src+2]
			img.Pix[dst+3] = 255
			src += Channels
			dst += 4
		}
	}
	return img
}

// Mask is a single-channel per-pixel intensity field aligned with a
// PixelBuffer of the same dimensions. 0 means fully suppressed, 255 fully
// bright. The threshold stage produces a binary Mask; the blur stage
// produces a graded one.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewMask allocates a zeroed mask of the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}
