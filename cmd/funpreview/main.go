// Command funpreview renders .funscript files into an SVG preview.
//
// Each input script becomes one horizontal lane: a speed-colored
// gradient background with the motion path traced on top. Multiple
// scripts stack vertically on a shared time axis.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/OppositeOdd/funlib"
)

func main() {
	var (
		width      = flag.Float64("width", 800, "lane width in pixels")
		height     = flag.Float64("height", 90, "lane height in pixels")
		strokeW    = flag.Float64("stroke", 2, "motion path stroke width")
		output     = flag.String("output", "", "output file (default stdout)")
		background = flag.String("background", "", "page color behind the gradient (name or #hex)")
		noTitle    = flag.Bool("no-title", false, "omit lane titles")
		noChapters = flag.Bool("no-chapters", false, "omit the chapter bar")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: funpreview [flags] script.funscript [more.funscript ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *verbose {
		funlib.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []funlib.RenderOption{
		funlib.WithSize(*width, *height),
		funlib.WithStrokeWidth(*strokeW),
	}
	if *background != "" {
		c, err := parseColor(*background)
		if err != nil {
			log.Fatalf("Bad background color: %v", err)
		}
		opts = append(opts, funlib.WithBackground(c))
	}
	if *noTitle {
		opts = append(opts, funlib.WithoutTitle())
	}
	if *noChapters {
		opts = append(opts, funlib.WithoutChapters())
	}

	scripts := make([]*funlib.Script, 0, flag.NArg())
	for _, path := range flag.Args() {
		s, err := funlib.LoadScript(path)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", path, err)
		}
		scripts = append(scripts, s)
	}

	svg, err := funlib.NewRenderer(opts...).Render(scripts...)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *output == "" {
		fmt.Print(svg)
		return
	}
	if err := os.WriteFile(*output, []byte(svg), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	log.Printf("Preview saved to %s (%d lane(s))\n", *output, len(scripts))
}

// parseColor accepts "#rgb"/"#rrggbb" hex or an SVG color name.
func parseColor(s string) (funlib.RGBA, error) {
	if strings.HasPrefix(s, "#") {
		return funlib.Hex(s), nil
	}
	c, ok := funlib.Named(s)
	if !ok {
		return funlib.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
