package assets

import "errors"

// Sentinel errors for fragment loading.
var (
	// ErrFragmentNotFound indicates the requested fragment does not exist.
	ErrFragmentNotFound = errors.New("fragment not found")

	// ErrInvalidAssetName indicates the fragment name contains characters
	// other than lowercase letters, digits, hyphens and underscores.
	ErrInvalidAssetName = errors.New("invalid asset name")
)
