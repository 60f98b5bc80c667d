package response

import (
	"errors"
	"net/http"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/attendance"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/schedule"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoActionableSession):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrSessionAlreadyComplete):
		Conflict(w, "Session already has both clock events")
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		BadRequest(w, "Location is outside the allowed radius", nil)
	case errors.Is(err, attendance.ErrLocationRequired):
		BadRequest(w, "Location is required for this session", nil)
	case errors.Is(err, attendance.ErrPhotoRequired):
		BadRequest(w, "Proof photo is required for this session", nil)
	case errors.Is(err, attendance.ErrDayLocked):
		Conflict(w, "Attendance record is locked")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance already exists for this date")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this attendance")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrNoWindowsForDay):
		BadRequest(w, "No schedule windows for this date", nil)
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "No schedule assignment covers this date")
	case errors.Is(err, schedule.ErrAssignmentOverlap):
		Conflict(w, "Assignment overlaps an existing one")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
