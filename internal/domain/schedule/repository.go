package schedule

import (
	"context"
	"time"
)

// WorkScheduleRepository defines data access for schedule templates,
// overrides and assignments.
type WorkScheduleRepository interface {
	// Create inserts a schedule with its template windows
	Create(ctx context.Context, schedule WorkSchedule) (WorkSchedule, error)

	// GetByID retrieves a schedule with windows and overrides
	GetByID(ctx context.Context, id string) (WorkSchedule, error)

	// CreateAssignment binds a user to a schedule
	CreateAssignment(ctx context.Context, assignment UserScheduleAssignment) (UserScheduleAssignment, error)

	// GetAssignedSchedule resolves the schedule covering date for a user
	GetAssignedSchedule(ctx context.Context, userID string, date time.Time) (WorkSchedule, error)
}
