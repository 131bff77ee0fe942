package experiment

import "errors"

// Errors for registry lookups and sequence sizing.
var (
	// ErrUnknownAlgorithm is returned when a name is not in the registry.
	ErrUnknownAlgorithm = errors.New("experiment: unknown algorithm")

	// ErrWidthTooSmall is returned when the display has too few columns for
	// the panel.
	ErrWidthTooSmall = errors.New("experiment: width is too small")

	// ErrHeightTooSmall is returned when the display has too few rows for
	// the panel.
	ErrHeightTooSmall = errors.New("experiment: height is too small")

	// ErrInvalidSize is returned for a negative number of elements.
	ErrInvalidSize = errors.New("experiment: invalid sequence size")
)
