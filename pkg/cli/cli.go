package cli

import (
	"fmt"
	"time"

	"github.com/Fepozopo/depthify/pkg/depth"
	"github.com/spf13/cobra"
)

type runFlags struct {
	noEdges bool
	output  string
	stats   bool
	preview bool
	workers int
	debug   bool
}

// NewRootCommand builds the depthify command: a single image path argument
// plus the version and update subcommands.
func NewRootCommand() *cobra.Command {
	var f runFlags
	root := &cobra.Command{
		Use:   "depthify <image>",
		Short: "Posterize an image into gray levels ranked by luminance, outlining transparent edges",
		Long: fmt.Sprintf(`depthify maps every opaque color of an image to one of %d gray levels by its
rank in the luminance order of all distinct colors, paints opaque pixels that
touch transparency black, and clears pixels with alpha below %d.

The result is written next to the input as <name>_depth<ext>.
An image file named like a subcommand ("version", "update") must follow "--":

  depthify -- version`, depth.NumLevels, depth.OpacityThreshold),
		Args:          requireInput,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], f)
		},
	}
	root.Flags().BoolVar(&f.noEdges, "no-edges", false, "skip edge detection, only posterize")
	root.Flags().StringVarP(&f.output, "output", "o", "", "output file (default <input stem>_depth<ext>)")
	root.Flags().BoolVar(&f.stats, "stats", false, "print per-level statistics")
	root.Flags().BoolVar(&f.preview, "preview", false, "show the result in the terminal (kitty / iTerm2 protocols)")
	root.Flags().IntVar(&f.workers, "workers", 0, "compositing goroutines (default DEPTHIFY_WORKERS or CPU count)")
	root.Flags().BoolVar(&f.debug, "debug", false, "print debug information to stderr")

	root.AddCommand(newVersionCommand(), newUpdateCommand())
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func requireInput(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return ErrMissingInput
	case len(args) > 1:
		return fmt.Errorf("expected a single image path, got %d arguments", len(args))
	}
	return nil
}

func run(cmd *cobra.Command, input string, f runFlags) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		if f.workers < 1 {
			return fmt.Errorf("--workers must be at least 1, got %d", f.workers)
		}
		cfg.Workers = f.workers
	}
	if f.debug {
		cfg.Debug = true
	}
	setDebug(cfg.Debug)
	debugf("config: %+v", cfg)

	img, format, err := LoadImage(input)
	if err != nil {
		return err
	}
	src := depth.FromImage(img)
	debugf("%s: %dx%d, %d channels", format, src.Width, src.Height, src.Channels)

	opts := depth.Options{EdgeAware: !f.noEdges, Workers: cfg.Workers}
	start := time.Now()
	res, err := depth.Process(src, opts)
	if err != nil {
		return err
	}
	debugf("processed %d unique colors in %s", len(res.Ranking), time.Since(start))

	outPath := f.output
	if outPath == "" {
		outPath = OutputPath(input)
	}
	outImg := res.Image.Image()
	if err := SaveImage(outPath, outImg, SaveOptions{JPEGQuality: cfg.JPEGQuality}); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processed image saved to: %s\n", outPath)
	if f.stats {
		if err := writeSummary(out, depth.Summarize(src, res, opts)); err != nil {
			return err
		}
	}
	if f.preview {
		// preview is best effort; the output file is already written
		if err := PreviewImage(out, outImg, cfg.PreviewBackend); err != nil {
			logger.Printf("preview unavailable: %v", err)
		}
	}
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the depthify version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "depthify %s\n", Version)
		},
	}
}

func newUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Check GitHub for a newer release and install it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkForUpdates(cmd.InOrStdin(), cmd.OutOrStdout(), "https://api.github.com")
		},
	}
}
