package article

import (
	"errors"
	"fmt"

	"github.com/alnah/go-article/internal/extract"
	"github.com/alnah/go-article/internal/registry"
)

// Sentinel errors for library operations.
var (
	// Input errors.
	ErrEmptyDocument    = errors.New("document contains no text")
	ErrMissingContent   = errors.New("manual content cannot be empty")
	ErrInvalidSection   = errors.New("invalid section")
	ErrDocumentTooLarge = errors.New("document too large")
	ErrInvalidTemplate  = errors.New("invalid template definition")

	ErrTemplateNotFound = errors.New("template not found")

	// Registry invariant errors. Each of the specific errors below also
	// matches ErrRegistryInvariant.
	ErrRegistryInvariant = errors.New("registry invariant violation")
	ErrDuplicateTemplate = errors.New("duplicate template id")
	ErrLastTemplate      = errors.New("cannot remove the last remaining template")
	ErrProtectedTemplate = errors.New("built-in template cannot be removed")

	ErrUnreadableDocument = errors.New("unreadable document")

	// ErrInternal reports a panic inside the pipeline. It signals a bug,
	// not a condition worth retrying.
	ErrInternal = errors.New("internal error")

	// PDF export errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)

// Kind classifies an error for transports.
type Kind string

// Error kinds.
const (
	KindInput              Kind = "input"
	KindTemplateNotFound   Kind = "template_not_found"
	KindRegistryInvariant  Kind = "registry_invariant"
	KindUnreadableDocument Kind = "unreadable_document"
	KindInternal           Kind = "internal"
)

var inputErrors = []error{
	ErrEmptyDocument,
	ErrMissingContent,
	ErrInvalidSection,
	ErrDocumentTooLarge,
	ErrInvalidTemplate,
}

// KindOf returns the kind of err. Errors this package does not know about,
// including PDF and context errors, are KindInternal. KindOf(nil) is "".
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTemplateNotFound):
		return KindTemplateNotFound
	case errors.Is(err, ErrRegistryInvariant):
		return KindRegistryInvariant
	case errors.Is(err, ErrUnreadableDocument):
		return KindUnreadableDocument
	}
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return KindInput
		}
	}
	return KindInternal
}

// ErrorReport is the structured error handed back to callers of a
// transport.
type ErrorReport struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Report builds the ErrorReport for err.
func Report(err error) ErrorReport {
	if err == nil {
		return ErrorReport{}
	}
	return ErrorReport{Kind: KindOf(err), Message: err.Error()}
}

// convertRegistryError maps internal registry errors to public sentinels.
func convertRegistryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, registry.ErrDuplicateID):
		return wrapError(err, ErrRegistryInvariant, ErrDuplicateTemplate)
	case errors.Is(err, registry.ErrLastTemplate):
		return wrapError(err, ErrRegistryInvariant, ErrLastTemplate)
	case errors.Is(err, registry.ErrInvariant):
		return wrapError(err, ErrRegistryInvariant)
	case errors.Is(err, registry.ErrNotFound):
		return wrapError(err, ErrTemplateNotFound)
	case errors.Is(err, registry.ErrMissingID),
		errors.Is(err, registry.ErrMissingIDOrName),
		errors.Is(err, registry.ErrInvalidDefinition):
		return wrapError(err, ErrInvalidTemplate)
	default:
		return err
	}
}

// convertExtractError maps internal extraction errors to public sentinels.
// Context errors pass through unchanged.
func convertExtractError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, extract.ErrUnreadableDocument):
		return wrapError(err, ErrUnreadableDocument)
	case errors.Is(err, extract.ErrEmptyDocument):
		return wrapError(err, ErrEmptyDocument)
	case errors.Is(err, extract.ErrDocumentTooLarge):
		return wrapError(err, ErrDocumentTooLarge)
	default:
		return err
	}
}

// wrapError keeps the message of original and matches errors.Is against
// the public sentinels only. Internal errors stay hidden.
func wrapError(original error, sentinels ...error) error {
	return &publicError{original: original, sentinels: sentinels}
}

type publicError struct {
	original  error
	sentinels []error
}

func (e *publicError) Error() string {
	return e.original.Error()
}

func (e *publicError) Unwrap() []error {
	return e.sentinels
}

// panicError converts a recovered panic value into an ErrInternal error.
func panicError(v any) error {
	return fmt.Errorf("%w: panic: %v", ErrInternal, v)
}
