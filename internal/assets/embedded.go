package assets

import (
	"embed"
	"fmt"
)

// Fragment names.
const (
	Header = "header"
	Footer = "footer"
	Page   = "page"
)

//go:embed fragments/*.html
var fragments embed.FS

// FragmentLoader loads HTML fragments by name.
type FragmentLoader interface {
	// LoadFragment returns the fragment content (name without .html).
	// Returns ErrFragmentNotFound if it does not exist and
	// ErrInvalidAssetName if the name is not a bare identifier.
	LoadFragment(name string) (string, error)
}

// EmbeddedLoader loads fragments compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadFragment loads an embedded fragment by name.
func (e *EmbeddedLoader) LoadFragment(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := fragments.ReadFile("fragments/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrFragmentNotFound, name)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ FragmentLoader = (*EmbeddedLoader)(nil)
