package schedule

import (
	"context"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/attendance"
)

// ScheduleService defines business logic for schedule templates and
// the materialization of a day's attendance record from a template.
type ScheduleService interface {
	// CreateSchedule creates a weekly template with its windows
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)

	// GetSchedule retrieves a schedule template by ID
	GetSchedule(ctx context.Context, id string) (ScheduleResponse, error)

	// AssignUser binds a user to a schedule for a date range
	AssignUser(ctx context.Context, req AssignUserRequest) error

	// MaterializeDay creates the attendance record for one user/date
	// from the schedule template (weekday windows, or the override for
	// that date when one exists). Sessions get stable IDs here.
	MaterializeDay(ctx context.Context, req MaterializeDayRequest) (attendance.AttendanceResponse, error)
}
