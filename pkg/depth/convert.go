package depth

import (
	"image"
	"image/color"
)

// HasAlpha reports whether img should be treated as a 4-channel image.
// Decoders that return RGBA-family types for opaque data (PNG truecolor,
// for instance) are classified by content instead.
func HasAlpha(img image.Image) bool {
	switch m := img.(type) {
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		return false
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	case *image.RGBA:
		return !m.Opaque()
	case *image.RGBA64:
		return !m.Opaque()
	}
	return true
}

// FromImage converts any image.Image to a RawImage with 3 or 4 channels,
// depending on HasAlpha. Alpha is stored non-premultiplied.
func FromImage(src image.Image) *RawImage {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	channels := 3
	if HasAlpha(src) {
		channels = 4
	}
	out := &RawImage{Width: w, Height: h, Channels: channels, Pix: make([]byte, w*h*channels)}

	if n, ok := src.(*image.NRGBA); ok && channels == 4 {
		for y := 0; y < h; y++ {
			row := n.Pix[y*n.Stride : y*n.Stride+w*4]
			copy(out.Pix[y*w*4:], row)
		}
		return out
	}

	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			out.Pix[idx+0] = c.R
			out.Pix[idx+1] = c.G
			out.Pix[idx+2] = c.B
			if channels == 4 {
				out.Pix[idx+3] = c.A
			}
			idx += channels
		}
	}
	return out
}

// Image returns r as an *image.NRGBA. 3-channel images are fully opaque.
func (r *RawImage) Image() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	if r.Channels == 4 {
		copy(out.Pix, r.Pix)
		return out
	}
	for i, j := 0, 0; i < len(r.Pix); i, j = i+3, j+4 {
		out.Pix[j+0] = r.Pix[i+0]
		out.Pix[j+1] = r.Pix[i+1]
		out.Pix[j+2] = r.Pix[i+2]
		out.Pix[j+3] = 255
	}
	return out
}
