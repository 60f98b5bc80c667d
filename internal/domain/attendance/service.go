package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ToggleClock records the next legal clock event (in or out) for
	// the caller's current actionable session
	ToggleClock(ctx context.Context, req ToggleClockRequest) (ToggleClockResponse, error)

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// GetMyAttendance retrieves attendance records for the authenticated user
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// MarkDay closes a whole day as excused or absent (admin)
	MarkDay(ctx context.Context, req MarkDayRequest) (AttendanceResponse, error)
}
