package schedule

import (
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// SCHEDULE DTOs
// ========================================

type CreateWindowRequest struct {
	DayOfWeek              int      `json:"day_of_week"`
	Name                   string   `json:"name"`
	StartTime              string   `json:"start_time"`
	EndTime                string   `json:"end_time"`
	LateThresholdMins      int      `json:"late_threshold_mins"`
	UndertimeThresholdMins int      `json:"undertime_threshold_mins"`
	EarlyClockInMins       int      `json:"early_clock_in_mins"`
	Latitude               *float64 `json:"latitude,omitempty"`
	Longitude              *float64 `json:"longitude,omitempty"`
	RadiusMeters           float64  `json:"radius_meters,omitempty"`
	PhotoStart             bool     `json:"photo_start"`
	PhotoEnd               bool     `json:"photo_end"`
}

type CreateScheduleRequest struct {
	Name    string                `json:"name"`
	Windows []CreateWindowRequest `json:"windows"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	for _, w := range r.Windows {
		if w.DayOfWeek < 1 || w.DayOfWeek > 7 {
			errs = append(errs, validator.ValidationError{
				Field:   "windows.day_of_week",
				Message: "day_of_week must be between 1 (Monday) and 7 (Sunday)",
			})
		}

		start, okStart := validator.IsValidClockTime(w.StartTime)
		if !okStart {
			errs = append(errs, validator.ValidationError{
				Field:   "windows.start_time",
				Message: "start_time must be in HH:MM format",
			})
		}

		end, okEnd := validator.IsValidClockTime(w.EndTime)
		if !okEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "windows.end_time",
				Message: "end_time must be in HH:MM format",
			})
		}

		if okStart && okEnd && !end.After(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "windows.end_time",
				Message: "end_time must be after start_time",
			})
		}

		if w.LateThresholdMins < 0 || w.UndertimeThresholdMins < 0 || w.EarlyClockInMins < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "windows.thresholds",
				Message: "threshold minutes must not be negative",
			})
		}

		if (w.Latitude == nil) != (w.Longitude == nil) {
			errs = append(errs, validator.ValidationError{
				Field:   "windows.latitude",
				Message: "latitude and longitude must be provided together",
			})
		}

		if w.Latitude != nil && !validator.IsValidLatitude(*w.Latitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "windows.latitude",
				Message: "latitude must be between -90 and 90",
			})
		}

		if w.Longitude != nil && !validator.IsValidLongitude(*w.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "windows.longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignUserRequest struct {
	ScheduleID string  `json:"-"`
	UserID     string  `json:"user_id"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date,omitempty"`
}

func (r *AssignUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
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

// MaterializeDayRequest creates the attendance record for one user on
// one date from the assigned schedule template.
type MaterializeDayRequest struct {
	ScheduleID string `json:"-"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	Date       string `json:"date"`
}

func (r *MaterializeDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WindowResponse struct {
	ID                     string   `json:"id"`
	DayOfWeek              int      `json:"day_of_week"`
	Name                   string   `json:"name"`
	StartTime              string   `json:"start_time"`
	EndTime                string   `json:"end_time"`
	LateThresholdMins      int      `json:"late_threshold_mins"`
	UndertimeThresholdMins int      `json:"undertime_threshold_mins"`
	EarlyClockInMins       int      `json:"early_clock_in_mins"`
	Latitude               *float64 `json:"latitude,omitempty"`
	Longitude              *float64 `json:"longitude,omitempty"`
	RadiusMeters           float64  `json:"radius_meters,omitempty"`
	PhotoStart             bool     `json:"photo_start"`
	PhotoEnd               bool     `json:"photo_end"`
}

type ScheduleResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Windows   []WindowResponse `json:"windows"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}
