// Command floorplan renders a house plan configuration into floor plan
// images. With no arguments it draws the built-in two-floor plan as PNGs
// into the output directory.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"floorplan/internal/cache"
	"floorplan/internal/config"
	"floorplan/internal/export"
	"floorplan/internal/plan"
	"floorplan/internal/version"
)

func main() {
	configPath := flag.String("config", "house_plan.yaml", "plan configuration file")
	outDir := flag.String("out", "output", "output directory")
	format := flag.String("format", "", "output format: png, svg, or pdf (overrides config)")
	scale := flag.Float64("scale", 0, "scale factor override")
	debug := flag.Bool("debug", false, "enable debug mode (alignment grid, verbose logging)")
	validateOnly := flag.Bool("validate", false, "validate the configuration and exit")
	summary := flag.Bool("summary", false, "print per-floor area statistics")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// .env can carry overrides for the same knobs as the flags.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env overrides")
	}
	if v := os.Getenv("FLOORPLAN_CONFIG"); v != "" && *configPath == "house_plan.yaml" {
		*configPath = v
	}
	if v := os.Getenv("FLOORPLAN_OUT"); v != "" && *outDir == "output" {
		*outDir = v
	}

	if err := run(*configPath, *outDir, *format, *scale, *debug, *validateOnly, *summary); err != nil {
		slog.Error("generation failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath, outDir, format string, scale float64, debug, validateOnly, summary bool) error {
	doc, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if format != "" {
		doc.Settings.OutputFormat = format
	}
	if scale > 0 {
		doc.Settings.Scale = scale
	}
	if debug {
		doc.Settings.DebugMode = true
	}
	doc.Settings.Normalize()

	slog.Info("settings",
		"scale", doc.Settings.Scale,
		"format", doc.Settings.OutputFormat,
		"dpi", doc.Settings.OutputDPI,
		"debug", doc.Settings.DebugMode)

	warnings := plan.ValidateDocument(doc)
	for _, w := range warnings {
		slog.Warn(w)
	}
	if validateOnly {
		fmt.Printf("%d warnings\n", len(warnings))
		return nil
	}

	house, _ := plan.NewHouse(doc)
	if summary {
		for _, s := range plan.SummarizeHouse(house) {
			fmt.Print(s)
		}
	}

	exporter := export.New(doc).WithCache(cache.NewMemoryCache(8, 0))
	paths, err := exporter.WriteAll(outDir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println("wrote", p)
	}
	return nil
}
