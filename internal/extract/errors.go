package extract

import "errors"

// Sentinel errors for extraction.
var (
	// ErrUnreadableDocument is returned when the bytes are not a document
	// any reader understands (corrupt zip, missing document part, binary
	// data, invalid UTF-8).
	ErrUnreadableDocument = errors.New("unreadable document")

	// ErrEmptyDocument is returned when a readable document has no text.
	ErrEmptyDocument = errors.New("document contains no text")

	// ErrDocumentTooLarge is returned for inputs above MaxDocumentSize.
	ErrDocumentTooLarge = errors.New("document too large")
)
