package attendance

import "errors"

// Attendance domain errors
var (
	// Clock transition errors
	ErrNoActionableSession    = errors.New("no actionable session")
	ErrSessionAlreadyComplete = errors.New("session already completed")
	ErrOutsideAllowedRadius   = errors.New("you are outside the allowed radius")
	ErrLocationRequired       = errors.New("location is required for this session")
	ErrPhotoRequired          = errors.New("a photo is required for this clock event")
	ErrDayLocked              = errors.New("attendance day is closed and read-only")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance record already exists for this day")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
