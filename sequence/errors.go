package sequence

import "errors"

var (
	// ErrInvalidInput reports degenerate input such as an empty sequence or a
	// corpus too small to compare.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedConfiguration reports an unknown metric or strategy name,
	// or a strategy invoked with the wrong input shape.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")
)
