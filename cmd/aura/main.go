package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lumaglow/aura/internal/batch"
	"github.com/lumaglow/aura/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Print version information")
	auraSize := flag.Float64("aura", pipeline.DefaultParams().AuraSize,
		fmt.Sprintf("Aura size (%v-%v)", pipeline.MinAuraSize, pipeline.MaxAuraSize))
	threshold := flag.Int("threshold", pipeline.DefaultParams().Threshold,
		fmt.Sprintf("White threshold (%d-%d)", pipeline.MinThreshold, pipeline.MaxThreshold))
	inputDir := flag.String("input", "input", "Input folder path")
	outputDir := flag.String("output", "output", "Output folder path")
	workers := flag.Int("workers", 0, "Concurrent images (0 = one per CPU)")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "aura - color inversion + grayscale + white luminance glow")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage: aura [options]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Processes every image in the input folder and writes")
		fmt.Fprintln(os.Stderr, "<name>_processed.jpg files to the output folder.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("aura %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if err := os.MkdirAll(*inputDir, 0o755); err != nil {
		log.Fatalf("Failed to create input folder: %v", err)
	}

	summary, err := batch.Run(batch.Options{
		InputDir:  *inputDir,
		OutputDir: *outputDir,
		Params:    pipeline.Params{AuraSize: *auraSize, Threshold: *threshold},
		Workers:   *workers,
		Log:       log.Default(),
	})
	if err != nil {
		log.Fatalf("Batch run failed: %v", err)
	}

	if len(summary.Results) == 0 {
		log.Printf("No images found in %s", *inputDir)
		return
	}
	log.Printf("Done: %d processed, %d skipped", summary.Processed, summary.Skipped)
}
