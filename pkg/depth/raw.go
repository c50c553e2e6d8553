package depth

import "fmt"

// RawImage is an interleaved, row-major pixel buffer with 3 (RGB) or 4 (RGBA)
// channels per pixel. Alpha, when present, is non-premultiplied.
type RawImage struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// NewRawImage wraps pix after checking that its length matches the shape.
func NewRawImage(width, height, channels int, pix []byte) (*RawImage, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("unsupported channel count %d (want 3 or 4)", channels)
	}
	if want := width * height * channels; len(pix) != want {
		return nil, fmt.Errorf("pixel buffer has %d bytes, want %d for %dx%dx%d", len(pix), want, width, height, channels)
	}
	return &RawImage{Width: width, Height: height, Channels: channels, Pix: pix}, nil
}

// newBlank allocates a zeroed buffer with the same shape as r.
func (r *RawImage) newBlank() *RawImage {
	return &RawImage{
		Width:    r.Width,
		Height:   r.Height,
		Channels: r.Channels,
		Pix:      make([]byte, len(r.Pix)),
	}
}

// Offset returns the index of the first byte of pixel (x, y).
func (r *RawImage) Offset(x, y int) int {
	return (y*r.Width + x) * r.Channels
}

// IsTransparent reports whether the pixel starting at off has alpha below
// OpacityThreshold. Images without an alpha channel have no transparent pixels.
func (r *RawImage) IsTransparent(off int) bool {
	return r.Channels == 4 && r.Pix[off+3] < OpacityThreshold
}

// inBounds reports whether (x, y) lies inside the image.
func (r *RawImage) inBounds(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}
