package registry

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrNotFound indicates the requested template id is not registered.
	ErrNotFound = errors.New("template not found")

	// ErrInvalidDefinition indicates a template is missing its id, name or policy.
	ErrInvalidDefinition = errors.New("invalid template definition")

	// ErrMissingID indicates an operation was called with an empty id.
	ErrMissingID = errors.New("template id is required")

	// ErrMissingIDOrName indicates a custom template config lacks id or name.
	ErrMissingIDOrName = errors.New("template id and name are required")

	// ErrInvariant is the family of errors that would break registry invariants.
	// ErrDuplicateID and ErrLastTemplate wrap it.
	ErrInvariant = errors.New("registry invariant violation")

	// ErrDuplicateID indicates a template with the same id already exists.
	ErrDuplicateID = errors.New("duplicate template id")

	// ErrLastTemplate indicates an attempt to remove the only remaining template.
	ErrLastTemplate = errors.New("cannot remove the last remaining template")
)
