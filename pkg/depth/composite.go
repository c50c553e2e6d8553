package depth

import (
	"fmt"
	"sync"
)

// Result is the outcome of Process.
type Result struct {
	Image   *RawImage
	Ranking Ranking
	Levels  *GrayLevelMap
}

// Process runs both stages on src. The gray-level map is complete before any
// output pixel is written.
func Process(src *RawImage, opts Options) (*Result, error) {
	if src == nil {
		return nil, fmt.Errorf("source image is nil")
	}
	if _, err := NewRawImage(src.Width, src.Height, src.Channels, src.Pix); err != nil {
		return nil, err
	}
	ranking := Rank(src)
	levels := Quantize(ranking)
	return &Result{
		Image:   Composite(src, levels, opts),
		Ranking: ranking,
		Levels:  levels,
	}, nil
}

// Composite writes the output image for src using a finished gray-level map.
// Rows are split into contiguous bands, one goroutine per band; bands never
// share output bytes.
func Composite(src *RawImage, levels *GrayLevelMap, opts Options) *RawImage {
	out := src.newBlank()
	if src.Height == 0 || src.Width == 0 {
		return out
	}
	workers := min(opts.workers(), src.Height)
	band := (src.Height + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < src.Height; y0 += band {
		y1 := min(y0+band, src.Height)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 0; x < src.Width; x++ {
					compositePixel(src, out, levels, opts.EdgeAware, x, y)
				}
			}
		}(y0, y1)
	}
	wg.Wait()
	return out
}

// compositePixel classifies one pixel and writes only that pixel of out.
func compositePixel(src, out *RawImage, levels *GrayLevelMap, edgeAware bool, x, y int) {
	i := src.Offset(x, y)
	if src.IsTransparent(i) {
		// out is zeroed; transparent black needs no writes.
		return
	}
	var gray uint8
	if !edgeAware || !src.IsEdge(x, y) {
		gray, _ = levels.Gray(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2])
	}
	out.Pix[i+0] = gray
	out.Pix[i+1] = gray
	out.Pix[i+2] = gray
	if out.Channels == 4 {
		out.Pix[i+3] = 255
	}
}
