package attendance

import (
	"time"
)

// StatusTag is a single attendance status label. A session carries an
// ordered list of tags; a day carries exactly one overall tag.
type StatusTag string

const (
	StatusPresent   StatusTag = "present"
	StatusLate      StatusTag = "late"
	StatusUndertime StatusTag = "undertime"
	StatusOvertime  StatusTag = "overtime"
	StatusAbsent    StatusTag = "absent"
	StatusExcused   StatusTag = "excused"

	// StatusHalfDay is produced only by the two-session merge policy,
	// never stored on a session.
	StatusHalfDay StatusTag = "half-day"
)

var MarkableStatusValues = []string{
	string(StatusExcused),
	string(StatusAbsent),
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ScheduleWindow is one planned work interval with its threshold and
// geofence configuration. Immutable once the day's attendance exists.
type ScheduleWindow struct {
	Start                  time.Time `json:"start"`
	End                    time.Time `json:"end"`
	LateThresholdMins      int       `json:"late_threshold_mins"`
	UndertimeThresholdMins int       `json:"undertime_threshold_mins"`
	EarlyClockInMins       int       `json:"early_clock_in_mins"`
	GeoLocation            *GeoPoint `json:"geo_location,omitempty"`
	GeoRadiusMeters        float64   `json:"geo_radius_meters,omitempty"`
	PhotoStart             bool      `json:"photo_start"`
	PhotoEnd               bool      `json:"photo_end"`
}

// IsValid reports whether the window has both boundaries set.
func (w ScheduleWindow) IsValid() bool {
	return !w.Start.IsZero() && !w.End.IsZero()
}

// EventInfo is one recorded clock event.
type EventInfo struct {
	Time     time.Time `json:"time"`
	Geo      *GeoPoint `json:"geo,omitempty"`
	Address  string    `json:"address,omitempty"`
	PhotoURL *string   `json:"photo_url,omitempty"`
	Status   StatusTag `json:"status"`
	Remarks  string    `json:"remarks,omitempty"`
}

// AttendanceSession is one planned session of a day together with its
// recorded events. ID is a stable identifier: sessions are always
// matched by ID, never by position in the list.
type AttendanceSession struct {
	ID           string         `json:"id"`
	Schedule     ScheduleWindow `json:"schedule"`
	CheckInInfo  *EventInfo     `json:"check_in_info,omitempty"`
	CheckOutInfo *EventInfo     `json:"check_out_info,omitempty"`
	Status       []StatusTag    `json:"status"`
}

// Completed reports whether both clock events have been recorded.
func (s AttendanceSession) Completed() bool {
	return s.CheckInInfo != nil && s.CheckOutInfo != nil
}

type ScheduleRef struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

type UserRef struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

// Attendance is one person's record for one scheduled day. The four
// total fields and OverallStatus are always recomputed from Sessions,
// never hand-edited.
type Attendance struct {
	ID                    string
	Schedule              ScheduleRef
	User                  UserRef
	Sessions              []AttendanceSession
	OverallStatus         StatusTag
	ScheduledWorkMinutes  int
	TotalWorkMinutes      int
	TotalOvertimeMinutes  int
	TotalUndertimeMinutes int
	MarkedBy              string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Locked reports whether the record has become read-only history:
// every session has both events, or the day was marked by another
// actor (excused/absent).
func (a Attendance) Locked() bool {
	if a.OverallStatus == StatusExcused {
		return true
	}
	if a.MarkedBy != "" && a.MarkedBy != "self" {
		return true
	}
	for _, s := range a.Sessions {
		if !s.Completed() {
			return false
		}
	}
	return len(a.Sessions) > 0
}

// SessionByID returns the session with the given ID, or nil.
func (a Attendance) SessionByID(id string) *AttendanceSession {
	for i := range a.Sessions {
		if a.Sessions[i].ID == id {
			return &a.Sessions[i]
		}
	}
	return nil
}
