package depth

import "testing"

func TestSummarize(t *testing.T) {
	src := makeRaw(t, 3, 2, 4,
		0, 0, 0, 255, 60, 60, 60, 255, 120, 120, 120, 255,
		255, 255, 255, 255, 255, 255, 255, 255, 0, 0, 0, 0,
	)
	opts := Options{EdgeAware: false, Workers: 1}
	res := process(t, src, opts)
	s := Summarize(src, res, opts)

	if s.UniqueColors != 4 || s.Transparent != 1 || s.Edge != 0 {
		t.Fatalf("summary = %+v", s)
	}
	// four colors land in bins 0, 2, 5 and 7
	wantColors := [NumLevels]int{1, 0, 1, 0, 0, 1, 0, 1}
	wantPixels := [NumLevels]int{1, 0, 1, 0, 0, 1, 0, 2}
	for bin, lv := range s.Levels {
		if lv.Colors != wantColors[bin] || lv.Pixels != wantPixels[bin] {
			t.Errorf("bin %d: colors=%d pixels=%d, want %d/%d", bin, lv.Colors, lv.Pixels, wantColors[bin], wantPixels[bin])
		}
		if lv.Gray != GrayValue(bin) {
			t.Errorf("bin %d: gray = %d", bin, lv.Gray)
		}
	}
	if s.Levels[7].Darkest != "#ffffff" || s.Levels[2].Brightest != "#3c3c3c" {
		t.Errorf("hex colors = %q / %q", s.Levels[7].Darkest, s.Levels[2].Brightest)
	}
	if s.Levels[1].Darkest != "" {
		t.Errorf("unused level should have no colors")
	}
}

func TestSummarizeCountsEdges(t *testing.T) {
	src := makeRaw(t, 2, 2, 4,
		0, 0, 0, 255, 255, 255, 255, 255,
		0, 0, 0, 255, 0, 0, 0, 0,
	)
	opts := Options{EdgeAware: true}
	s := Summarize(src, process(t, src, opts), opts)
	if s.Edge != 3 || s.Transparent != 1 {
		t.Fatalf("edge=%d transparent=%d, want 3/1", s.Edge, s.Transparent)
	}
	for bin, lv := range s.Levels {
		if lv.Pixels != 0 {
			t.Errorf("bin %d painted %d pixels, want 0", bin, lv.Pixels)
		}
	}
}

func TestSummarizeLuminanceSpread(t *testing.T) {
	// nine colors: the two brightest share bin 7
	src := &RawImage{Width: 9, Height: 1, Channels: 3, Pix: make([]byte, 27)}
	for x := 0; x < 9; x++ {
		v := uint8(x * 30)
		src.Pix[x*3], src.Pix[x*3+1], src.Pix[x*3+2] = v, v, v
	}
	opts := Options{Workers: 1}
	s := Summarize(src, process(t, src, opts), opts)
	top := s.Levels[7]
	if top.Colors != 2 {
		t.Fatalf("bin 7 colors = %d, want 2", top.Colors)
	}
	if top.LuminanceStdDev <= 0 {
		t.Errorf("expected positive spread in bin 7, got %v", top.LuminanceStdDev)
	}
	if s.Levels[0].LuminanceStdDev != 0 || s.Levels[0].LuminanceMean != 0 {
		t.Errorf("bin 0 stats = %+v", s.Levels[0])
	}
}
