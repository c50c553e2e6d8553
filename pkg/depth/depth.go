// Package depth turns an image into a rank-posterized, edge-highlighted
// variant.
//
// Processing runs in two stages over a RawImage. The first stage ranks every
// distinct opaque color by luminance and assigns each one of NumLevels gray
// levels by its position in that ranking. The second stage composites the
// output: transparent pixels become transparent black, opaque pixels touching
// transparency become solid black, and everything else takes its gray level.
package depth

import "runtime"

const (
	// NumLevels is the number of gray levels in the output.
	NumLevels = 8
	// OpacityThreshold is the alpha below which a pixel counts as transparent.
	OpacityThreshold = 128
)

// Options controls the compositing stage.
type Options struct {
	// EdgeAware paints opaque pixels next to transparency solid black.
	EdgeAware bool
	// Workers is the number of goroutines used for compositing. Values < 1
	// fall back to runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultOptions returns edge-aware processing on all available CPUs.
func DefaultOptions() Options {
	return Options{
		EdgeAware: true,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return o.Workers
}
