package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Fepozopo/depthify/pkg/depth"
)

// writeSummary prints a per-level table for s.
func writeSummary(out io.Writer, s depth.Summary) error {
	fmt.Fprintf(out, "Size: %dx%d, %d channels\n", s.Width, s.Height, s.Channels)
	fmt.Fprintf(out, "Unique colors: %d, transparent pixels: %d, edge pixels: %d\n", s.UniqueColors, s.Transparent, s.Edge)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tGRAY\tCOLORS\tPIXELS\tLUMA MEAN\tLUMA SD\tDARKEST\tBRIGHTEST")
	for _, lv := range s.Levels {
		darkest, brightest := lv.Darkest, lv.Brightest
		if lv.Colors == 0 {
			darkest, brightest = "-", "-"
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.1f\t%.1f\t%s\t%s\n",
			lv.Bin, lv.Gray, lv.Colors, lv.Pixels, lv.LuminanceMean, lv.LuminanceStdDev, darkest, brightest)
	}
	return tw.Flush()
}
