package attendance

import "errors"

var (
	ErrDayNotFound       = errors.New("attendance day not found")
	ErrDayAlreadyExists  = errors.New("attendance day already exists for this employee and date")
	ErrConflictingStates = errors.New("attendance day must carry at most one classification flag")
)
