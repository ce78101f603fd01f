package prewitt

import "errors"

// Sentinel errors returned by this package. Callers match them with
// errors.Is; functions may wrap them with additional context.
var (
	// ErrInvalidDimensions is returned when an input grid has fewer than
	// one row or column, or when its rows have unequal lengths.
	ErrInvalidDimensions = errors.New("prewitt: invalid grid dimensions")

	// ErrInvalidConfiguration is returned when a Config fails validation,
	// such as a negative threshold. It is reported before any pixel is
	// processed.
	ErrInvalidConfiguration = errors.New("prewitt: invalid configuration")
)
