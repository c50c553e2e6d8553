package depth

import (
	"math/rand"
	"testing"
)

// makeRaw builds a RawImage from a flat list of pixels.
func makeRaw(t *testing.T, w, h, channels int, pix ...byte) *RawImage {
	t.Helper()
	r, err := NewRawImage(w, h, channels, pix)
	if err != nil {
		t.Fatalf("NewRawImage: %v", err)
	}
	return r
}

// makeNoise fills a w x h RGBA buffer from a small color set so colors repeat,
// and makes roughly one pixel in six transparent.
func makeNoise(w, h int, seed int64) *RawImage {
	rng := rand.New(rand.NewSource(seed))
	r := &RawImage{Width: w, Height: h, Channels: 4, Pix: make([]byte, w*h*4)}
	for i := 0; i < len(r.Pix); i += 4 {
		r.Pix[i+0] = uint8(rng.Intn(16) * 17)
		r.Pix[i+1] = uint8(rng.Intn(16) * 17)
		r.Pix[i+2] = uint8(rng.Intn(4) * 85)
		if rng.Intn(6) == 0 {
			r.Pix[i+3] = uint8(rng.Intn(OpacityThreshold))
		} else {
			r.Pix[i+3] = uint8(OpacityThreshold + rng.Intn(256-OpacityThreshold))
		}
	}
	return r
}

func TestNewRawImageRejectsBadShapes(t *testing.T) {
	if _, err := NewRawImage(2, 2, 2, make([]byte, 8)); err == nil {
		t.Errorf("expected error for 2 channels")
	}
	if _, err := NewRawImage(2, 2, 4, make([]byte, 15)); err == nil {
		t.Errorf("expected error for short buffer")
	}
	if _, err := NewRawImage(-1, 2, 3, nil); err == nil {
		t.Errorf("expected error for negative width")
	}
	if _, err := NewRawImage(0, 0, 3, nil); err != nil {
		t.Errorf("empty image should be valid: %v", err)
	}
}

func TestOffsetAndTransparency(t *testing.T) {
	r := makeRaw(t, 3, 2, 4,
		0, 0, 0, 255, 0, 0, 0, 127, 0, 0, 0, 128,
		0, 0, 0, 0, 0, 0, 0, 255, 0, 0, 0, 1,
	)
	if got := r.Offset(2, 1); got != 20 {
		t.Fatalf("Offset(2,1) = %d, want 20", got)
	}
	want := []bool{false, true, false, true, false, true}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := r.IsTransparent(r.Offset(x, y)); got != want[y*3+x] {
				t.Errorf("IsTransparent(%d,%d) = %v, want %v", x, y, got, want[y*3+x])
			}
		}
	}

	rgb := makeRaw(t, 2, 1, 3, 0, 0, 0, 10, 20, 30)
	if rgb.IsTransparent(rgb.Offset(0, 0)) || rgb.IsTransparent(rgb.Offset(1, 0)) {
		t.Errorf("3-channel pixels must never be transparent")
	}
}
