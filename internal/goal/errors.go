package goal

import "errors"

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrInvalidTimeFrame  = errors.New("invalid time frame")
	ErrInvalidProgress   = errors.New("progress must be between 0 and 100")
)
