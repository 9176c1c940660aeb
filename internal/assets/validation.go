package assets

import "fmt"

// ValidateAssetName checks that a fragment name is a bare identifier.
// Only lowercase ASCII letters, digits, '-' and '_' are accepted, which rules
// out extensions, separators and traversal sequences.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
