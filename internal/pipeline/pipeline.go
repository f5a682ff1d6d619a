package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/scandoc/textalign/internal/detection"
	"github.com/scandoc/textalign/internal/errors"
	"github.com/scandoc/textalign/internal/imaging"
	"github.com/scandoc/textalign/internal/logger"
)

// Batch runs the alignment pipeline over a directory of images.
type Batch struct {
	cfg Config
	log logger.Log
}

// New creates a batch runner with the given configuration and log sink.
func New(cfg Config, log logger.Log) *Batch {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Batch{cfg: cfg, log: log}
}

// Run processes every file in inputDir and writes aligned outputs into
// outputDir, creating it if needed.
//
// Directory-level problems (unreadable input, uncreatable output) are
// returned as errors before any file is touched. Per-file failures never
// abort the batch: each file yields exactly one ProcessingResult, and the
// results are returned sorted by source path.
//
// Cancelling the context stops new files from being picked up; files
// already in flight finish and report their results.
func (b *Batch) Run(ctx context.Context, inputDir, outputDir string) ([]ProcessingResult, error) {
	files, err := listFiles(inputDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.NewIO(outputDir, "create output directory", err)
	}

	paths := make(chan string)
	go func() {
		defer close(paths)
		for _, f := range files {
			if ctx.Err() != nil {
				return
			}
			select {
			case paths <- f:
			case <-ctx.Done():
				return
			}
		}
	}()

	resultCh := make(chan ProcessingResult)
	var wg sync.WaitGroup
	for i := 0; i < b.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				resultCh <- b.processFile(path, outputDir)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var results []ProcessingResult
	for r := range resultCh {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Source < results[j].Source
	})
	return results, nil
}

// processFile runs the full pipeline for one input file and always returns
// a result, whatever stage failed.
func (b *Batch) processFile(path, outputDir string) ProcessingResult {
	res := ProcessingResult{Source: path}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	if !imaging.SupportedExtension(base) {
		err := errors.NewUnsupportedFormat(path, ext)
		b.log.Skipped(path, err.Msg)
		res.Skipped = true
		res.Err = err
		return res
	}

	b.log.Started(path)
	output, err := b.alignImage(path, outputDir, stem, ext)
	if err != nil {
		b.log.Failed(path, err)
		res.Err = err
		return res
	}

	res.Success = true
	res.Output = output
	b.log.Completed(path, output)
	return res
}

// alignImage sequences the pipeline stages for one image: load, edge
// detection, contour extraction and filtering, mask building, compositing,
// rotation fitting, rotation, and persistence. It writes the pre-rotation
// intermediate, then the final output, then removes the intermediate.
func (b *Batch) alignImage(path, outputDir, stem, ext string) (string, error) {
	img, err := imaging.Load(path)
	if err != nil {
		return "", err
	}
	bounds := img.Bounds()

	edges, err := imaging.EdgeDetect(img, b.cfg.EdgeLow, b.cfg.EdgeHigh)
	if err != nil {
		return "", err
	}

	contours := detection.ExtractContours(edges).FilterByArea(b.cfg.MinContourArea)

	mask := detection.BuildMask(contours, bounds.Dx(), bounds.Dy())
	composited, err := imaging.Blacken(img, mask)
	if err != nil {
		return "", err
	}

	// No qualifying contours means the whole image is background: the
	// correction stays zero and the image passes through unrotated.
	correction := 0.0
	if rect, ok := detection.MinAreaRect(contours.Points()); ok {
		correction = rect.CorrectionAngle()
	}

	if b.cfg.Overlay {
		overlayPath := filepath.Join(outputDir, stem+"_contours"+ext)
		if err := imaging.Save(overlayPath, contourOverlay(img, contours)); err != nil {
			// Debug artifact; its failure must not fail the file.
			b.log.Failed(overlayPath, err)
		}
	}

	intermediate := filepath.Join(outputDir, stem+"_unrotated"+ext)
	if err := imaging.Save(intermediate, composited); err != nil {
		return "", err
	}

	// The raw fit measures the skew clockwise in image coordinates;
	// rotating counter-clockwise by the correction cancels it.
	aligned := imaging.Rotate(composited, correction)

	output := filepath.Join(outputDir, stem+ext)
	if err := imaging.Save(output, aligned); err != nil {
		return "", err
	}

	if err := os.Remove(intermediate); err != nil {
		// Cleanup is best effort; the final output already exists.
		b.log.Failed(intermediate, errors.NewIO(intermediate, "remove intermediate", err))
	}

	return output, nil
}
