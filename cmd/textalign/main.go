package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/scandoc/textalign/internal/logger"
	"github.com/scandoc/textalign/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("textalign %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := pipeline.DefaultConfig()

	fs := flag.NewFlagSet("textalign", flag.ExitOnError)
	fs.IntVar(&cfg.EdgeLow, "edge-low", cfg.EdgeLow, "Low Canny gradient threshold (0-255)")
	fs.IntVar(&cfg.EdgeHigh, "edge-high", cfg.EdgeHigh, "High Canny gradient threshold (0-255)")
	fs.Float64Var(&cfg.MinContourArea, "min-area", cfg.MinContourArea, "Minimum contour area in square pixels")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of files processed concurrently")
	fs.BoolVar(&cfg.Overlay, "overlay", cfg.Overlay, "Write per-file contour overlay debug images")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "textalign - prepare scanned pages for OCR by isolating and de-skewing text")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Usage: textalign [options] <input-dir> <output-dir>")
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}
	inputDir := fs.Arg(0)
	outputDir := fs.Arg(1)

	// The log lives alongside the outputs, so the directory must exist
	// before the sink opens.
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "textalign: cannot create output directory: %v\n", err)
		return 1
	}
	sink, err := logger.OpenFile(filepath.Join(outputDir, logger.LogFileName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "textalign: %v\n", err)
		return 1
	}
	defer sink.Close()

	// Ctrl-C lets in-flight files finish and stops picking up new ones.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := pipeline.New(cfg, sink).Run(ctx, inputDir, outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textalign: %v\n", err)
		return 1
	}

	var ok, failed, skipped int
	for _, r := range results {
		switch {
		case r.Success:
			ok++
		case r.Skipped:
			skipped++
		default:
			failed++
		}
	}
	fmt.Printf("Processed %d files: %d succeeded, %d failed, %d skipped\n",
		len(results), ok, failed, skipped)

	// Individual failures are logged, not fatal.
	return 0
}
