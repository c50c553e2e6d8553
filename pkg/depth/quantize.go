package depth

import "math"

// GrayLevelMap assigns each ranked color one of NumLevels gray levels.
// It is built once by Quantize and only read afterwards.
type GrayLevelMap struct {
	bins map[rgbKey]uint8
}

// levelStep is the distance between adjacent gray levels.
const levelStep = 255.0 / float64(NumLevels-1)

// GrayValue returns the 8-bit gray value of bin.
func GrayValue(bin int) uint8 {
	return uint8(math.Round(float64(bin) * levelStep))
}

// Levels returns all gray values the quantizer can produce, darkest first.
func Levels() []uint8 {
	out := make([]uint8, NumLevels)
	for i := range out {
		out[i] = GrayValue(i)
	}
	return out
}

// binIndex maps rank i of n ranked colors to a level. The spread is by rank,
// so the levels follow color population rather than raw luminance.
func binIndex(i, n int) int {
	if n <= 1 {
		return 0
	}
	bin := int(math.Floor(float64(i) / float64(n-1) * NumLevels))
	return min(NumLevels-1, bin)
}

// Quantize builds the gray-level map for a ranking.
func Quantize(ranking Ranking) *GrayLevelMap {
	m := &GrayLevelMap{bins: make(map[rgbKey]uint8, len(ranking))}
	for i, c := range ranking {
		m.bins[c.key()] = uint8(binIndex(i, len(ranking)))
	}
	return m
}

// Len returns the number of mapped colors.
func (m *GrayLevelMap) Len() int {
	return len(m.bins)
}

// Bin returns the level assigned to an RGB triple.
func (m *GrayLevelMap) Bin(r, g, b uint8) (int, bool) {
	bin, ok := m.bins[keyOf(r, g, b)]
	return int(bin), ok
}

// Gray returns the gray value assigned to an RGB triple.
func (m *GrayLevelMap) Gray(r, g, b uint8) (uint8, bool) {
	bin, ok := m.Bin(r, g, b)
	if !ok {
		return 0, false
	}
	return GrayValue(bin), true
}
