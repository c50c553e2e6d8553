package depth

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"
)

// LevelStats describes one output gray level.
type LevelStats struct {
	Bin    int
	Gray   uint8
	Colors int // distinct source colors mapped to this level
	Pixels int // output pixels painted with this level

	LuminanceMean   float64
	LuminanceStdDev float64
	// Darkest and Brightest are the extreme source colors of the level as
	// "#rrggbb", empty when the level is unused.
	Darkest   string
	Brightest string
}

// Summary reports how an image was classified.
type Summary struct {
	Width, Height, Channels int

	UniqueColors int
	Transparent  int
	Edge         int
	Levels       [NumLevels]LevelStats
}

// Summarize classifies every pixel of src the same way Composite does and
// aggregates per-level statistics from the ranking.
func Summarize(src *RawImage, res *Result, opts Options) Summary {
	s := Summary{
		Width:        src.Width,
		Height:       src.Height,
		Channels:     src.Channels,
		UniqueColors: len(res.Ranking),
	}

	lums := make([][]float64, NumLevels)
	for i, c := range res.Ranking {
		bin := binIndex(i, len(res.Ranking))
		lv := &s.Levels[bin]
		lv.Colors++
		if lv.Darkest == "" {
			lv.Darkest = hexOf(c)
		}
		lv.Brightest = hexOf(c)
		lums[bin] = append(lums[bin], c.Luminance)
	}
	for bin := range s.Levels {
		lv := &s.Levels[bin]
		lv.Bin = bin
		lv.Gray = GrayValue(bin)
		switch len(lums[bin]) {
		case 0:
		case 1:
			lv.LuminanceMean = lums[bin][0]
		default:
			lv.LuminanceMean, lv.LuminanceStdDev = stat.MeanStdDev(lums[bin], nil)
		}
	}

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			i := src.Offset(x, y)
			switch {
			case src.IsTransparent(i):
				s.Transparent++
			case opts.EdgeAware && src.IsEdge(x, y):
				s.Edge++
			default:
				if bin, ok := res.Levels.Bin(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2]); ok {
					s.Levels[bin].Pixels++
				}
			}
		}
	}
	return s
}

func hexOf(c UniqueColor) string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}
