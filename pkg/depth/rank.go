package depth

import "sort"

// UniqueColor is a distinct opaque RGB triple and its Rec. 709 luminance.
type UniqueColor struct {
	R, G, B   uint8
	Luminance float64
}

// Ranking lists the distinct opaque colors of an image, darkest first.
type Ranking []UniqueColor

// rgbKey packs an RGB triple into a single map key.
type rgbKey uint32

func keyOf(r, g, b uint8) rgbKey {
	return rgbKey(r)<<16 | rgbKey(g)<<8 | rgbKey(b)
}

func (c UniqueColor) key() rgbKey {
	return keyOf(c.R, c.G, c.B)
}

// Luminance returns the Rec. 709 luma of an 8-bit RGB triple.
func Luminance(r, g, b uint8) float64 {
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}

// Rank scans src in row-major order and returns every distinct opaque color
// sorted by ascending luminance. Colors with equal luminance keep the order in
// which they were first encountered.
func Rank(src *RawImage) Ranking {
	seen := make(map[rgbKey]struct{})
	var order Ranking
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			i := src.Offset(x, y)
			if src.IsTransparent(i) {
				continue
			}
			r, g, b := src.Pix[i+0], src.Pix[i+1], src.Pix[i+2]
			k := keyOf(r, g, b)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			order = append(order, UniqueColor{R: r, G: g, B: b, Luminance: Luminance(r, g, b)})
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Luminance < order[j].Luminance
	})
	return order
}
