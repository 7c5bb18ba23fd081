package balance

import "errors"

var (
	ErrInvalidTarget = errors.New("target balance must not be negative")
)
