package attendance

import (
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ToggleClockRequest carries one clock action. The direction (in/out)
// is not chosen by the caller; the engine derives it from the state of
// the actionable session.
type ToggleClockRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	PhotoURL  *string  `json:"photo_url,omitempty"`
	Remarks   string   `json:"remarks,omitempty"`
}

func (r *ToggleClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Geo returns the recorded position, or nil when the caller sent none.
func (r *ToggleClockRequest) Geo() *GeoPoint {
	if r.Latitude == nil || r.Longitude == nil {
		return nil
	}
	return &GeoPoint{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

// MarkDayRequest closes a whole day as excused or absent on behalf of
// the employee (admin action).
type MarkDayRequest struct {
	ID      string `json:"-"`
	Status  string `json:"status"`
	Remarks string `json:"remarks,omitempty"`
}

func (r *MarkDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "attendance id is required",
		})
	}

	if !validator.IsInSlice(r.Status, MarkableStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: excused, absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	UserID    *string
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.SortOrder != "" && !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MyAttendanceFilter struct {
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type AttendanceResponse struct {
	ID                    string              `json:"id"`
	Schedule              ScheduleRef         `json:"schedule"`
	User                  UserRef             `json:"user"`
	Sessions              []AttendanceSession `json:"sessions"`
	OverallStatus         StatusTag           `json:"overall_status"`
	ScheduledWorkMinutes  int                 `json:"scheduled_work_minutes"`
	TotalWorkMinutes      int                 `json:"total_work_minutes"`
	TotalOvertimeMinutes  int                 `json:"total_overtime_minutes"`
	TotalUndertimeMinutes int                 `json:"total_undertime_minutes"`
	MarkedBy              string              `json:"marked_by"`
	CreatedAt             string              `json:"created_at"`
	UpdatedAt             string              `json:"updated_at"`
}

// ToggleClockResponse returns the updated record plus the identity of
// the session that changed so the caller can re-render it directly.
type ToggleClockResponse struct {
	Attendance       AttendanceResponse `json:"attendance"`
	ChangedSessionID string             `json:"changed_session_id"`
	ChangedSession   AttendanceSession  `json:"changed_session"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}
