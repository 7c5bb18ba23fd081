package sync

import "errors"

var (
	ErrPublisherUnavailable = errors.New("sync publisher unavailable")
)
