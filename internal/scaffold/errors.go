package scaffold

import "errors"

var (
	// ErrInvalidName indicates the component name contains characters
	// outside ASCII letters, digits and underscore
	ErrInvalidName = errors.New("invalid component name")
	// ErrDestinationExists indicates the target directory already exists
	ErrDestinationExists = errors.New("destination already exists")
)
