package compose

import "errors"

var (
	// ErrPathResolution indicates the base directory does not exist or
	// could not be resolved to a canonical path
	ErrPathResolution = errors.New("cannot resolve base directory")
	// ErrBadPattern indicates an exclude or copy pattern failed to compile
	ErrBadPattern = errors.New("invalid glob pattern")
)
