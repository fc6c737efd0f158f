package scaffold

import (
	"fmt"
	"regexp"
)

// namePattern restricts component names to ASCII letters, digits and
// underscore so they substitute safely into identifiers and file names.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateName checks that name is a usable identifier for generated
// files and code.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must contain only letters, digits or underscore", ErrInvalidName, name)
	}
	return nil
}
