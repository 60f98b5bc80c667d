package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound   = errors.New("work schedule not found")
	ErrNoWindowsForDay    = errors.New("no schedule windows for this day")
	ErrAssignmentNotFound = errors.New("no schedule assignment for this user")
	ErrAssignmentOverlap  = errors.New("schedule assignment overlaps an existing one")
)
