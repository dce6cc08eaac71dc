package batch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/lumaglow/aura/internal/pipeline"
)

// jpegQuality is the fixed quality setting for encoded output files.
const jpegQuality = 95

// outputSuffix marks processed files, appended to the input file's stem.
const outputSuffix = "_processed"

// supportedExtensions lists the file extensions the decoder handles.
// Matching is case-insensitive.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
}

// Options configures a batch run.
type Options struct {
	// InputDir is the folder scanned (non-recursively) for images.
	InputDir string

	// OutputDir receives the processed JPEG files. Created if missing.
	OutputDir string

	// Params is the pipeline parameter set applied to every image.
	Params pipeline.Params

	// Workers bounds the number of images processed concurrently.
	// Zero or negative means one worker per available CPU.
	Workers int

	// Log receives per-file progress messages. Nil disables logging.
	Log *log.Logger
}

// FileResult records the outcome for one input file.
type FileResult struct {
	// Input is the source file path.
	Input string

	// Output is the written file path, empty if the file was skipped.
	Output string

	// BrightPixels is the pipeline's bright-pixel count for this image.
	BrightPixels int

	// Err is non-nil if the file was skipped (decode, pipeline, or
	// encode failure).
	Err error
}

// Summary aggregates a whole batch run.
type Summary struct {
	// Processed is the number of files written to the output folder.
	Processed int

	// Skipped is the number of files that failed and were passed over.
	Skipped int

	// Results holds one entry per candidate file, sorted by input path.
	Results []FileResult
}

// Run processes every supported image in the input folder and writes the
// results to the output folder.
//
// Each input file <stem>.<ext> becomes <stem>_processed.jpg, encoded at
// quality 95. Files are processed concurrently, one pipeline invocation
// per image, but a failure in one file never aborts the run: the file is
// recorded as skipped and the batch continues.
//
// Run fails outright only when the input folder cannot be read or the
// output folder cannot be created.
func Run(opts Options) (*Summary, error) {
	entries, err := os.ReadDir(opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input folder: %w", err)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(opts.InputDir, entry.Name()))
		}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	results := make([]FileResult, len(paths))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = processFile(paths[i], opts.OutputDir, opts.Params)
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Input < results[j].Input })

	summary := &Summary{Results: results}
	for _, r := range results {
		if r.Err != nil {
			summary.Skipped++
			if opts.Log != nil {
				opts.Log.Printf("skipping %s: %v", r.Input, r.Err)
			}
			continue
		}
		summary.Processed++
		if opts.Log != nil {
			opts.Log.Printf("%s -> %s (%d luminance points)",
				filepath.Base(r.Input), filepath.Base(r.Output), r.BrightPixels)
		}
	}
	return summary, nil
}

// processFile runs the full decode -> pipeline -> encode chain for one file.
func processFile(path, outputDir string, params pipeline.Params) FileResult {
	result := FileResult{Input: path}

	img, err := imgio.Open(path)
	if err != nil {
		result.Err = fmt.Errorf("failed to decode image: %w", err)
		return result
	}

	processed, err := pipeline.Process(pipeline.FromImage(img), params)
	if err != nil {
		result.Err = fmt.Errorf("processing failed: %w", err)
		return result
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outputDir, stem+outputSuffix+".jpg")
	if err := imgio.Save(outPath, processed.Image.ToImage(), imgio.JPEGEncoder(jpegQuality)); err != nil {
		result.Err = fmt.Errorf("failed to encode output: %w", err)
		return result
	}

	result.Output = outPath
	result.BrightPixels = processed.BrightPixels
	return result
}
