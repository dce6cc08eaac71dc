package pipeline

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

// createHalfToneBuffer creates a buffer whose left half is one color and
// right half another
func createHalfToneBuffer(width, height int, left, right uint8) *PixelBuffer {
	buf, _ := NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := left
			if x >= width/2 {
				v = right
			}
			i := buf.Offset(x, y)
			buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2] = v, v, v
		}
	}
	return buf
}

func TestProcess_EndToEnd(t *testing.T) {
	// Left half black, right half white. After inversion the black half
	// becomes white (luminance 255, above any threshold), the white half
	// black (luminance 0). With zero aura the glow never spreads, so the
	// lighten blend leaves max(255,255)=255 on the left and max(0,0)=0 on
	// the right.
	buf := createHalfToneBuffer(10, 10, 0, 255)

	result, err := Process(buf, Params{AuraSize: 0, Threshold: 200})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if result.BrightPixels != 50 {
		t.Errorf("BrightPixels: got %d, want 50", result.BrightPixels)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			i := result.Image.Offset(x, y)
			want := uint8(255)
			if x >= 5 {
				want = 0
			}
			for c := 0; c < Channels; c++ {
				if result.Image.Pix[i+c] != want {
					t.Fatalf("pixel (%d,%d) channel %d: got %d, want %d",
						x, y, c, result.Image.Pix[i+c], want)
				}
			}
		}
	}
}

func TestProcess_AuraSpreadsIntoDarkHalf(t *testing.T) {
	buf := createHalfToneBuffer(40, 40, 0, 255)

	result, err := Process(buf, Params{AuraSize: 30, Threshold: 200})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	// Just past the bright/dark boundary the glow must lift the output
	// above pure black; far from the boundary it must stay black.
	nearEdge := result.Image.Offset(21, 20)
	farSide := result.Image.Offset(39, 20)
	if result.Image.Pix[nearEdge] == 0 {
		t.Error("glow did not spread past the bright boundary")
	}
	if result.Image.Pix[farSide] != 0 {
		t.Errorf("far dark pixel lifted to %d, want 0", result.Image.Pix[farSide])
	}
}

func TestProcess_Deterministic(t *testing.T) {
	buf, _ := NewPixelBuffer(32, 24)
	for i := range buf.Pix {
		buf.Pix[i] = uint8(i*13 + i/7)
	}
	params := Params{AuraSize: 12, Threshold: 150}

	a, err := Process(buf, params)
	if err != nil {
		t.Fatalf("first Process failed: %v", err)
	}
	b, err := Process(buf, params)
	if err != nil {
		t.Fatalf("second Process failed: %v", err)
	}

	if !bytes.Equal(a.Image.Pix, b.Image.Pix) {
		t.Error("identical input and params produced different output")
	}
	if a.BrightPixels != b.BrightPixels {
		t.Errorf("BrightPixels differ: %d vs %d", a.BrightPixels, b.BrightPixels)
	}
}

func TestProcess_ClampsParameters(t *testing.T) {
	buf := createHalfToneBuffer(20, 20, 0, 200)

	tests := []struct {
		name       string
		outOfRange Params
		equivalent Params
	}{
		{"negative aura", Params{AuraSize: -5, Threshold: 200}, Params{AuraSize: 0, Threshold: 200}},
		{"oversized aura", Params{AuraSize: 999, Threshold: 200}, Params{AuraSize: 50, Threshold: 200}},
		{"oversized threshold", Params{AuraSize: 10, Threshold: 999}, Params{AuraSize: 10, Threshold: 250}},
		{"undersized threshold", Params{AuraSize: 10, Threshold: 3}, Params{AuraSize: 10, Threshold: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Process(buf, tt.outOfRange)
			if err != nil {
				t.Fatalf("Process failed: %v", err)
			}
			want, err := Process(buf, tt.equivalent)
			if err != nil {
				t.Fatalf("Process failed: %v", err)
			}

			if !bytes.Equal(got.Image.Pix, want.Image.Pix) {
				t.Error("clamped params did not behave like their in-range equivalent")
			}
		})
	}
}

func TestProcess_NoBrightPixels(t *testing.T) {
	// A pure-white source inverts to black; nothing crosses the
	// threshold and the result is the plain grayscale (all zero).
	buf := createSolidBuffer(8, 8, 255, 255, 255)

	result, err := Process(buf, DefaultParams())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if result.BrightPixels != 0 {
		t.Errorf("BrightPixels: got %d, want 0", result.BrightPixels)
	}
	for i, v := range result.Image.Pix {
		if v != 0 {
			t.Fatalf("channel %d: got %d, want 0", i, v)
		}
	}
}

func TestProcess_InvalidInput(t *testing.T) {
	bad := &PixelBuffer{Width: 10, Height: 0}

	_, err := Process(bad, DefaultParams())
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("got %v, want ErrInvalidDimensions", err)
	}
}

func TestProcess_DoesNotMutateSource(t *testing.T) {
	buf := createHalfToneBuffer(12, 12, 30, 240)
	orig := make([]uint8, len(buf.Pix))
	copy(orig, buf.Pix)

	if _, err := Process(buf, DefaultParams()); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if !bytes.Equal(buf.Pix, orig) {
		t.Error("Process mutated the source buffer")
	}
}

func TestProcess_ConcurrentInvocations(t *testing.T) {
	buf := createHalfToneBuffer(50, 50, 0, 255)
	params := Params{AuraSize: 15, Threshold: 200}

	reference, err := Process(buf, params)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Process(buf, params)
			if err != nil {
				t.Errorf("concurrent Process failed: %v", err)
				return
			}
			if !bytes.Equal(got.Image.Pix, reference.Image.Pix) {
				t.Error("concurrent invocation diverged from reference output")
			}
		}()
	}
	wg.Wait()
}
