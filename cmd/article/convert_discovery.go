package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	article "github.com/alnah/go-article"
	"github.com/alnah/go-article/internal/extract"
	"github.com/alnah/go-article/internal/fileutil"
)

// outputSuffix keeps generated pages apart from HTML inputs.
const outputSuffix = ".article"

// Sentinel errors for file discovery.
var (
	ErrUnsupportedExtension = errors.New("unsupported input extension")
	ErrInvalidWorkerCount   = errors.New("invalid worker count")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath string
	HTMLPath  string
	PDFPath   string
}

// discoverFiles finds all supported documents under inputPath.
// A directory is walked recursively; hidden directories and previously
// generated pages are skipped.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateInputExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToConvert{newFileToConvert(inputPath, outputDir, "")}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isSupported(path) || isGenerated(path) {
			return nil
		}
		files = append(files, newFileToConvert(path, outputDir, inputPath))
		return nil
	})

	return files, err
}

func newFileToConvert(inputPath, outputDir, baseInputDir string) FileToConvert {
	dir := resolveOutputDir(inputPath, outputDir, baseInputDir)
	return FileToConvert{
		InputPath: inputPath,
		HTMLPath:  fileutil.OutputPath(inputPath, dir, outputSuffix+".html"),
		PDFPath:   fileutil.OutputPath(inputPath, dir, outputSuffix+".pdf"),
	}
}

// resolveOutputDir mirrors the input tree under outputDir.
// An empty result means "next to the input".
func resolveOutputDir(inputPath, outputDir, baseInputDir string) string {
	if outputDir == "" || baseInputDir == "" {
		return outputDir
	}
	rel, err := filepath.Rel(baseInputDir, filepath.Dir(inputPath))
	if err != nil {
		return outputDir
	}
	return filepath.Join(outputDir, rel)
}

func isSupported(path string) bool {
	return slices.Contains(extract.SupportedExtensions(), strings.ToLower(filepath.Ext(path)))
}

func isGenerated(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	return strings.HasSuffix(base, outputSuffix+".html")
}

// validateInputExtension checks that the file is a supported document.
func validateInputExtension(path string) error {
	if !isSupported(path) {
		return fmt.Errorf("%w: got %q (want one of %s)",
			ErrUnsupportedExtension, filepath.Ext(path), strings.Join(extract.SupportedExtensions(), ", "))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > article.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, article.MaxPoolSize)
	}
	return nil
}
