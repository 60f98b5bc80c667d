package schedule

import "time"

// WorkSchedule is a weekly template of planned sessions plus per-date
// overrides. The attendance engine never reads templates directly; a
// day's windows are materialized into the attendance record once.
type WorkSchedule struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	Windows   []TemplateWindow
	Overrides []DayOverride
}

// TemplateWindow is one planned session slot on a weekday, with the
// threshold and geofence configuration the engine needs.
type TemplateWindow struct {
	ID                     string
	WorkScheduleID         string
	DayOfWeek              int    // 1=Monday, ..., 7=Sunday
	Name                   string // e.g. "morning", "afternoon"
	StartTime              string // HH:MM, local to the schedule
	EndTime                string // HH:MM
	LateThresholdMins      int
	UndertimeThresholdMins int
	EarlyClockInMins       int
	Latitude               *float64
	Longitude              *float64
	RadiusMeters           float64
	PhotoStart             bool
	PhotoEnd               bool
	SortOrder              int
}

// DayOverride replaces the weekday template for one specific date.
// An override with no windows is a day off.
type DayOverride struct {
	ID             string
	WorkScheduleID string
	Date           time.Time
	Windows        []TemplateWindow
}

// UserScheduleAssignment binds a user to a schedule for a date range.
type UserScheduleAssignment struct {
	ID             string
	UserID         string
	WorkScheduleID string
	StartDate      time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
