package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jeremyd1/text-editor/internal/config"
	"github.com/jeremyd1/text-editor/layout"
)

type layoutOptions struct {
	width   int
	measure string
}

// newLayoutCmd lays a file out headlessly and prints where every cell lands.
func newLayoutCmd() *cobra.Command {
	var opts layoutOptions

	c := &cobra.Command{
		Use:   "layout <file>",
		Short: "Print the position of every cell of file",
		Long: `layout wraps file the way the editor would and prints one line per cell:
"x y text", with text quoted. Line breaks print as "\n".`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.width <= 0 {
				return fmt.Errorf("width must be positive, got %d", opts.width)
			}
			text, err := readText(args[0])
			if err != nil {
				return err
			}

			settings := config.Default()
			settings.Measure = opts.measure
			settings.LeftMargin = layout.DefaultMargin
			settings.RightMargin = layout.DefaultMargin
			if err := settings.Validate(); err != nil {
				return err
			}

			e := layout.New(settings.Layout(opts.width))
			e.LoadText(text)
			return writePlacements(cmd.OutOrStdout(), e)
		},
	}

	c.Flags().IntVar(&opts.width, "width", layout.DefaultWrapWidth, "window width")
	c.Flags().StringVar(&opts.measure, "measure", config.MeasureFont, `unit of width: "font" (7x13 bitmap pixels) or "cells"`)
	return c
}

func writePlacements(w io.Writer, e *layout.Engine) error {
	bw := bufio.NewWriter(w)
	for _, p := range e.Placements() {
		fmt.Fprintf(bw, "%d %d %q\n", p.Pos.X, p.Pos.Y, p.Cell.Text)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write placements: %w", err)
	}
	return nil
}
