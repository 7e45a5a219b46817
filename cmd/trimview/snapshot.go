package main

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hmomeni/trimview"
	"github.com/hmomeni/trimview/raster"
	"github.com/hmomeni/trimview/utils"
)

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

type snapshotOptions struct {
	output     string
	format     string
	width      int
	scale      float64
	frost      float64
	blend      string
	composite  string
	noBrackets bool
}

func newSnapshotCmd(opts *options) *cobra.Command {
	so := &snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the configured trim view to an image",
		Long: `Renders the configured trim view to a PNG, JPEG or BMP image.
The format follows the file extension; use -o - with --format to write to a pipe.`,
		Example: `  trimview snapshot -o range.png --trim-start 10 --trim 40
  trimview snapshot -o - --format bmp --scale 2 > range.bmp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			img, err := so.render(conf, opts)
			if err != nil {
				return err
			}
			if err := so.write(cmd, img); err != nil {
				return err
			}
			if so.output != pipeName {
				fmt.Fprintln(cmd.OutOrStdout(), utils.DecorateText("Snapshot written to "+so.output, utils.SuccessMessage))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&so.output, "output", "o", "trimview.png", "Output file, - for stdout")
	f.StringVar(&so.format, "format", "", "Output format when writing to stdout (png, jpg, bmp)")
	f.IntVar(&so.width, "width", 480, "Widget width in dp")
	f.Float64Var(&so.scale, "scale", 1, "Pixels per dp")
	f.Float64Var(&so.frost, "frost", 1.5, "Blur radius under the handles, 0 disables it")
	f.StringVar(&so.blend, "blend", "", "Blend mode of the handle glass (darken, lighten, multiply, screen, overlay)")
	f.StringVar(&so.composite, "composite", "", "Composition operation of the handle glass (src_over, copy, dst_over, src_atop, ...)")
	f.BoolVar(&so.noBrackets, "no-brackets", false, "Don't draw the bracket glyphs")
	return cmd
}

func (so *snapshotOptions) render(conf *trimview.Config, opts *options) (image.Image, error) {
	if so.width <= 0 {
		return nil, fmt.Errorf("invalid width: %d", so.width)
	}
	if so.scale <= 0 {
		return nil, fmt.Errorf("invalid scale: %v", so.scale)
	}
	style, err := conf.Style.Parse()
	if err != nil {
		return nil, err
	}
	c, err := opts.newController(conf)
	if err != nil {
		return nil, err
	}
	style.Apply(c, 1)
	c.Resize(float32(so.width), 0)

	r := raster.NewRenderer()
	r.Style = style
	r.Frost = so.frost
	r.Blend = so.blend
	r.Composite = so.composite
	r.Brackets = !so.noBrackets

	img, err := r.Render(c)
	if err != nil {
		return nil, err
	}
	opts.log.WithFields(logrus.Fields{
		"range": utils.FormatRange(c.TrimStart(), c.Trim(), c.Max()),
		"size":  img.Bounds().Size(),
		"scale": so.scale,
	}).Debug("snapshot rendered")
	return raster.Scale(img, so.scale), nil
}

func (so *snapshotOptions) write(cmd *cobra.Command, img image.Image) error {
	if so.output != pipeName {
		if so.format != "" {
			return errors.New("--format only applies when writing to stdout")
		}
		return raster.WriteFile(so.output, img)
	}

	if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errors.New("`-` should be used with a pipe for stdout")
	}
	format, err := raster.ParseFormat(so.format)
	if err != nil {
		return err
	}
	return raster.Encode(cmd.OutOrStdout(), img, format)
}
