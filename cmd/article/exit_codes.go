package main

import (
	"errors"
	"os"

	article "github.com/alnah/go-article"
	"github.com/alnah/go-article/internal/config"
)

// Exit codes for the article CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or template
	ExitIO      = 3 // File not found, permission denied, unreadable input
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, article.ErrBrowserConnect) ||
		errors.Is(err, article.ErrPageCreate) ||
		errors.Is(err, article.ErrPageLoad) ||
		errors.Is(err, article.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/template errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, article.ErrTemplateNotFound) ||
		errors.Is(err, article.ErrRegistryInvariant) ||
		errors.Is(err, article.ErrInvalidTemplate) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedExtension) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnknownFormat) {
		return ExitUsage
	}

	// I/O and input errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoFiles) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, article.ErrUnreadableDocument) ||
		errors.Is(err, article.ErrEmptyDocument) ||
		errors.Is(err, article.ErrDocumentTooLarge) {
		return ExitIO
	}

	return ExitGeneral
}
