package repository

import "errors"

var (
	ErrFailedToImport = errors.New("failed to import records")
)
