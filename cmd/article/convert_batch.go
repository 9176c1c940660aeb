package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	article "github.com/alnah/go-article"
	"github.com/alnah/go-article/internal/fileutil"
)

// filePermissions is rw-r--r--: generated pages are meant to be shared.
const filePermissions = 0o644

// Sentinel errors for batch operations.
var (
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output file")
	ErrServiceInit = errors.New("failed to initialize article service")
)

// batchParams groups settings shared by every file of a batch.
type batchParams struct {
	pdf bool
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath string
	HTMLPath  string
	PDFPath   string // empty unless a PDF was written
	Template  string
	Variant   string
	Sections  int
	Err       error
	Duration  time.Duration
}

// convertBatch processes files concurrently using the service pool.
// Results are returned in input order.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params batchParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Go(func() {
			svc, err := pool.Acquire()
			if err != nil {
				// Service creation failed; drain our share of the queue
				for idx := range jobs {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: err}
				}
				return
			}
			defer pool.Release(svc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = convertFile(ctx, svc, files[idx], params)
			}
		})
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, svc Converter, f FileToConvert, params batchParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: f.InputPath}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	data, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadInput, err))
	}

	res, err := svc.FromDocument(ctx, article.DocumentInput{
		Data:     data,
		Filename: filepath.Base(f.InputPath),
	})
	if err != nil {
		return fail(err)
	}
	result.Template = res.TemplateID
	result.Variant = res.Variant
	result.Sections = len(res.Sections)

	page, err := svc.Page(res)
	if err != nil {
		return fail(err)
	}

	if err := fileutil.EnsureDir(filepath.Dir(f.HTMLPath)); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(f.HTMLPath, []byte(page), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
	}
	result.HTMLPath = f.HTMLPath

	if params.pdf {
		pdf, err := svc.ExportPDF(ctx, res)
		if err != nil {
			return fail(err)
		}
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(f.PDFPath, pdf, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %w", ErrWriteOutput, err))
		}
		result.PDFPath = f.PDFPath
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the first failure in input order.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResultsWithWriter outputs conversion results using the provided writers.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s [%s, %s, %d sections] (%v)\n",
				r.InputPath, r.HTMLPath, r.Template, r.Variant, r.Sections, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.HTMLPath)
		}
		if r.PDFPath != "" {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.PDFPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
