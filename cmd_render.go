package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"shape-selector/internal/palette"
	"shape-selector/internal/shape"
	"shape-selector/internal/synth"
	"shape-selector/pkg/colorutil"
)

func newRenderCmd() *cobra.Command {
	var (
		shapeName  string
		fill       string
		background string
		size       float64
		height     float64
		rotation   float64
		canvas     int
		output     string
	)

	cmd := &cobra.Command{
		Use:   "render --shape <name> -o <file.png>",
		Short: "Render a synthetic figure image for calibration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fg, err := swatch(fill)
			if err != nil {
				return fmt.Errorf("--color: %w", err)
			}
			bg := color.RGBA{}
			if background != "transparent" {
				if bg, err = swatch(background); err != nil {
					return fmt.Errorf("--background: %w", err)
				}
			}

			data, err := synth.RenderPNG(
				synth.Canvas{Width: canvas, Height: canvas, Background: bg},
				synth.Figure{
					Shape:    shape.Type(shapeName),
					Fill:     fg,
					Width:    size,
					Height:   height,
					Rotation: rotation,
				},
			)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write image: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%dx%d)\n", output, canvas, canvas)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&shapeName, "shape", "", "Shape: triangle, square, rectangle, pentagon, hexagon, heptagon or circle (required)")
	f.StringVar(&fill, "color", "red", "Fill color name")
	f.StringVar(&background, "background", "white", "Background color name, or \"transparent\"")
	f.Float64Var(&size, "size", 120, "Figure width in pixels")
	f.Float64Var(&height, "height", 0, "Figure height in pixels (default: same as --size)")
	f.Float64Var(&rotation, "rotation", 0, "Clockwise rotation in degrees")
	f.IntVar(&canvas, "canvas", 200, "Canvas side in pixels")
	f.StringVarP(&output, "output", "o", "", "Output PNG path (required)")
	_ = cmd.MarkFlagRequired("shape")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// swatch maps a palette color name to its rendering color.
func swatch(name string) (color.RGBA, error) {
	c, ok := palette.Parse(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q (want one of %v)", name, palette.Colors())
	}
	rgba, ok := colorutil.Swatch(string(c))
	if !ok {
		return color.RGBA{}, fmt.Errorf("color %q cannot be rendered", name)
	}
	return rgba, nil
}
