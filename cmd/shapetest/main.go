// Command shapetest runs the classification pipeline on one image and prints
// every intermediate measurement.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"shape-selector/internal/config"
	"shape-selector/internal/palette"
	"shape-selector/internal/vision"
	"shape-selector/pkg/colorutil"
)

func main() {
	imagePath := flag.String("image", "", "Path to image (PNG, JPEG, GIF, BMP, TIFF or WebP), or a file holding base64 / a data URI")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	thresholds := flag.String("thresholds", "", "Comma-separated background-distance thresholds (overrides config)")
	squareMax := flag.Float64("square-max", 0, "Upper width/height ratio for a square (overrides config)")
	circleOverride := flag.Float64("circle-override", 0, "Circularity that forces a circle label (overrides config)")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: shapetest -image <path> [-config config.yaml]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	params, err := tune(cfg.Vision, *thresholds, *squareMax, *circleOverride)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid override: %v\n", err)
		os.Exit(1)
	}

	raw, err := os.ReadFile(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read image: %v\n", err)
		os.Exit(1)
	}
	data, err := vision.DecodePayload(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode payload: %v\n", err)
		os.Exit(1)
	}
	frame, err := vision.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode image: %v\n", err)
		os.Exit(1)
	}
	defer frame.Close()

	fmt.Printf("Loaded image: %dx%d pixels (%d bytes)\n", frame.BGR.Cols(), frame.BGR.Rows(), len(data))

	fmt.Printf("\nPipeline parameters:\n")
	fmt.Printf("  Mask thresholds: %v (corner patch %d px)\n", params.MaskThresholds, params.BackgroundPatch)
	fmt.Printf("  Close: kernel %d, %d iterations; Canny %.0f/%.0f, %d dilations\n",
		params.KernelSize, params.CloseIterations, params.CannyLow, params.CannyHigh, params.EdgeDilateIterations)
	fmt.Printf("  Area window: %.1f%% - %.1f%% of frame\n", params.MinAreaFraction*100, params.MaxAreaFraction*100)
	fmt.Printf("  Square aspect: %.2f - %.2f; circle >= %.2f, override >= %.2f\n",
		params.Shape.SquareAspectMin, params.Shape.SquareAspectMax, params.Shape.CircleMin, params.Shape.CircleOverride)

	analysis, err := vision.NewClassifier(params).Analyze(frame)

	if ext := analysis.Extraction; ext != nil {
		bg := ext.Background
		h, s, v := colorutil.RGBToHSV(bg[2], bg[1], bg[0])
		fmt.Printf("\nBackground: BGR(%.0f, %.0f, %.0f) HSV(%.0f, %.0f, %.0f) %s\n",
			bg[0], bg[1], bg[2], h, s, v, palette.Classify(h, s, v))

		fmt.Printf("\nSegmentation strategies:\n")
		fmt.Printf("%-10s %6s %10s\n", "Strategy", "Found", "Area")
		fmt.Println(strings.Repeat("-", 28))
		for _, sr := range ext.Strategies {
			mark := ""
			if sr.Name == ext.Strategy {
				mark = "  <- selected"
			}
			fmt.Printf("%-10s %6v %10.0f%s\n", sr.Name, sr.Found, sr.Area, mark)
		}
	}

	if err != nil {
		fmt.Printf("\nNo usable outline: %v\n", err)
		fmt.Printf("Result: %s\n", analysis.Result.Type)
		return
	}

	fmt.Printf("\nOutline: %d points, perimeter %.1f, bbox %dx%d\n",
		len(analysis.Extraction.Outline), analysis.Extraction.Outline.Perimeter(),
		analysis.Extraction.Outline.BoundingRect().Width, analysis.Extraction.Outline.BoundingRect().Height)

	fmt.Printf("\nVertex votes:\n")
	counts := make([]int, 0, len(analysis.Shape.Votes))
	for n := range analysis.Shape.Votes {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		fmt.Printf("  %3d vertices: %d\n", n, analysis.Shape.Votes[n])
	}

	fmt.Printf("\nColor pixels in silhouette:\n")
	for _, cc := range analysis.Colors {
		if cc.Pixels > 0 {
			fmt.Printf("  %-8s %8d\n", cc.Color, cc.Pixels)
		}
	}

	r := analysis.Result
	fmt.Printf("\nResult: %s (%d vertices, circularity %.3f) color=%s\n", r.Type, r.Vertices, r.Circularity, r.Color)
	fmt.Printf("  Area %.0f, hull %.0f, bbox %.0f\n", r.Area, r.HullArea, r.BBoxArea)
}

// tune applies command-line overrides to the configured parameters. Zero or
// empty values keep the configured setting.
func tune(p vision.Params, thresholds string, squareMax, circleOverride float64) (vision.Params, error) {
	if thresholds = strings.TrimSpace(thresholds); thresholds != "" {
		var ts []float64
		for _, f := range strings.Split(thresholds, ",") {
			t, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil || t <= 0 {
				return p, fmt.Errorf("threshold %q: want a positive number", f)
			}
			ts = append(ts, t)
		}
		p = p.WithMaskThresholds(ts...)
	}

	rules := p.Shape
	if squareMax > 0 {
		if squareMax < rules.SquareAspectMin {
			return p, fmt.Errorf("square-max %.2f below square minimum %.2f", squareMax, rules.SquareAspectMin)
		}
		rules.SquareAspectMax = squareMax
	}
	if circleOverride > 0 {
		rules.CircleOverride = circleOverride
	}
	return p.WithShapeRules(rules), nil
}
