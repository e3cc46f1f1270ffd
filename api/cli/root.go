package cli

import (
	"context"
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"imgresize/service"
	"imgresize/size"
	"io"
)

// Exit codes returned by Run.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitInvalidArg = 2
)

type resizeOptions struct {
	input       string
	targetImage string
	output      string
	width       int
	height      int
	scale       float64
	quality     float32
}

// params keeps only the flags the user actually passed, so an explicit zero
// stays distinguishable from an absent flag.
func (o *resizeOptions) params(flags *pflag.FlagSet) size.Params {
	var p size.Params
	if flags.Changed("width") {
		p.Width = size.Int(o.width)
	}
	if flags.Changed("height") {
		p.Height = size.Int(o.height)
	}
	if flags.Changed("scale") {
		p.Scale = size.Float(o.scale)
	}
	return p
}

func (o *resizeOptions) source() string {
	if o.input != "" {
		return o.input
	}
	return o.targetImage
}

// Run executes the command line in args and returns the process exit code.
func Run(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	rt := &runtime{stderr: stderr}
	defer rt.close(context.Background())

	root := newRootCommand(rt, version)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if _, ok := size.ReasonOf(err); ok {
			return ExitInvalidArg
		}
		return ExitFailure
	}
	return ExitOK
}

func newRootCommand(rt *runtime, version string) *cobra.Command {
	opts := &resizeOptions{}

	cmd := &cobra.Command{
		Use:   "imgresize -i <image> [--width W] [--height H] [--scale S] [-o <dir>]",
		Short: "Resize an image",
		Long: "Resize an image to an explicit width and height, by a uniform scale factor, " +
			"or to a single dimension while preserving the aspect ratio. The result is written " +
			"into the output directory as <name>__<W>x<H>.<ext>.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.setup(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResize(cmd, rt, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&rt.configPath, "config", "c", "", "path to a TOML config file")

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "path to the image to resize (s3://bucket/key when S3 is configured)")
	flags.StringVarP(&opts.targetImage, "target-image", "t", "", "alias of --input")
	flags.StringVarP(&opts.output, "output", "o", "", "directory for the resized image (default from config, \".\")")
	flags.IntVar(&opts.width, "width", 0, "width of the resized image in pixels")
	flags.IntVar(&opts.height, "height", 0, "height of the resized image in pixels")
	flags.Float64Var(&opts.scale, "scale", 0, "uniform scale factor")
	flags.Float32VarP(&opts.quality, "quality", "q", 0, "encoding quality 1-100 (default from config)")
	_ = flags.MarkHidden("target-image")
	cmd.MarkFlagsMutuallyExclusive("input", "target-image")

	cmd.AddCommand(newServeCommand(rt))

	return cmd
}

func runResize(cmd *cobra.Command, rt *runtime, opts *resizeOptions) error {
	source := opts.source()
	if source == "" {
		return errors.New("an input image is required (-i/--input)")
	}
	if opts.quality < 0 || opts.quality > 100 {
		return errors.Errorf("quality must be between 1 and 100, got %g", opts.quality)
	}

	params := opts.params(cmd.Flags())
	advisory, err := size.Validate(params)
	if err != nil {
		return err
	}
	if advisory != size.NoAdvisory {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", advisory.Message())
	}

	out, err := rt.service.ResizeFile(cmd.Context(), service.ResizeFileInput{
		Source:    source,
		OutputDir: opts.output,
		Params:    params,
		Quality:   opts.quality,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Image resized successfully: %s (%s -> %s)\n", out.Location, out.Original, out.Size)
	return nil
}
