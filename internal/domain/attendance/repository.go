package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// Session lists are persisted as a whole; UpdateDerived has merge
// semantics and touches only the engine-owned fields.
type AttendanceRepository interface {
	// Create inserts a freshly materialized day record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDate retrieves the record for a user's scheduled day.
	// Used by the clock toggle to resolve "today".
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Attendance, error)

	// UpdateDerived writes only sessions, the four totals, overall
	// status and updated_at. Everything else on the row is untouched.
	UpdateDerived(ctx context.Context, attendance Attendance) error

	// UpdateMark closes a day as excused or absent on behalf of the
	// employee, recording who marked it.
	UpdateMark(ctx context.Context, id string, status StatusTag, markedBy string) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListByUser retrieves attendance records for one user
	ListByUser(ctx context.Context, userID string, filter MyAttendanceFilter) ([]Attendance, int64, error)
}
