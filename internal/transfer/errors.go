package transfer

import "errors"

// Error strings are part of the API contract and surface to clients as-is.
var (
	ErrUnsupportedFormat = errors.New("Unsupported file format")
	ErrProcessingFailed  = errors.New("Failed to process import file")
)
