package attendance

import (
	"fmt"
	"time"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/attendance"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/geo"
)

// FindActionableSession scans sessions in insertion order and returns
// the first one a clock event can legally target right now: check-out
// still unset and now within [start-earlyClockIn, end]. When the scan
// reaches a session whose early window has not opened yet, it stops
// and reports when clocking in becomes possible. Sessions are never
// reordered.
func FindActionableSession(att attendance.Attendance, now time.Time) (*attendance.AttendanceSession, string) {
	for i := range att.Sessions {
		s := &att.Sessions[i]
		if !s.Schedule.IsValid() {
			continue
		}

		earliestClockIn := s.Schedule.Start.Add(-time.Duration(s.Schedule.EarlyClockInMins) * time.Minute)

		if s.CheckOutInfo == nil && !now.Before(earliestClockIn) && !now.After(s.Schedule.End) {
			return s, ""
		}

		if now.Before(earliestClockIn) {
			return nil, fmt.Sprintf(
				"Too early to clock in: allowed from %s, session starts at %s.",
				earliestClockIn.Format("15:04"),
				s.Schedule.Start.Format("15:04"),
			)
		}
	}
	return nil, "No active session right now."
}

// completedSessionInWindow finds a fully completed session whose
// clock window contains now. Used to distinguish "session already
// completed" from a generic no-active-session failure.
func completedSessionInWindow(att attendance.Attendance, now time.Time) *attendance.AttendanceSession {
	for i := range att.Sessions {
		s := &att.Sessions[i]
		if !s.Schedule.IsValid() || !s.Completed() {
			continue
		}
		earliestClockIn := s.Schedule.Start.Add(-time.Duration(s.Schedule.EarlyClockInMins) * time.Minute)
		if !now.Before(earliestClockIn) && !now.After(s.Schedule.End) {
			return s
		}
	}
	return nil
}

// ApplyClockToggle performs the next legal clock transition on att and
// returns a newly constructed record plus the session that changed.
// The input record is never mutated; the targeted session is matched
// and replaced by ID, so the result stays correct if sessions are
// reordered upstream. Address resolution and persistence happen in
// the caller; this function is pure.
func ApplyClockToggle(
	att attendance.Attendance,
	now time.Time,
	point *attendance.GeoPoint,
	address string,
	photoURL *string,
	remarks string,
) (attendance.Attendance, attendance.AttendanceSession, error) {
	current, reason := FindActionableSession(att, now)
	if current == nil {
		if completedSessionInWindow(att, now) != nil {
			return attendance.Attendance{}, attendance.AttendanceSession{}, attendance.ErrSessionAlreadyComplete
		}
		return attendance.Attendance{}, attendance.AttendanceSession{},
			fmt.Errorf("%w: %s", attendance.ErrNoActionableSession, reason)
	}

	isClockIn := current.CheckInInfo == nil
	isClockOut := current.CheckInInfo != nil && current.CheckOutInfo == nil
	if !isClockIn && !isClockOut {
		return attendance.Attendance{}, attendance.AttendanceSession{}, attendance.ErrSessionAlreadyComplete
	}

	sched := current.Schedule

	if sched.GeoLocation != nil && sched.GeoRadiusMeters > 0 {
		if point == nil {
			return attendance.Attendance{}, attendance.AttendanceSession{}, attendance.ErrLocationRequired
		}
		if !geo.WithinRadius(point.Latitude, point.Longitude,
			sched.GeoLocation.Latitude, sched.GeoLocation.Longitude, sched.GeoRadiusMeters) {
			return attendance.Attendance{}, attendance.AttendanceSession{}, attendance.ErrOutsideAllowedRadius
		}
	}

	photoRequired := (isClockIn && sched.PhotoStart) || (isClockOut && sched.PhotoEnd)
	if photoRequired && (photoURL == nil || *photoURL == "") {
		return attendance.Attendance{}, attendance.AttendanceSession{}, attendance.ErrPhotoRequired
	}

	var status attendance.StatusTag
	if isClockIn {
		if IsLate(now, sched.Start, sched.LateThresholdMins, sched.EarlyClockInMins) {
			status = attendance.StatusLate
		} else {
			status = attendance.StatusPresent
		}
	} else {
		switch {
		case IsUndertime(now, sched.End, sched.UndertimeThresholdMins):
			status = attendance.StatusUndertime
		case current.CheckInInfo.Status != "":
			status = current.CheckInInfo.Status
		default:
			status = attendance.StatusPresent
		}
	}

	event := &attendance.EventInfo{
		Time:     now,
		Geo:      point,
		Address:  address,
		PhotoURL: photoURL,
		Status:   status,
		Remarks:  remarks,
	}

	changed := *current
	if isClockIn {
		changed.CheckInInfo = event
	} else {
		changed.CheckOutInfo = event
	}
	changed.Status = DeriveSessionStatus(changed)

	next := att
	next.Sessions = make([]attendance.AttendanceSession, len(att.Sessions))
	for i, s := range att.Sessions {
		if s.ID == changed.ID {
			next.Sessions[i] = changed
		} else {
			next.Sessions[i] = s
		}
	}

	totals := CalculateDayTotals(next.Sessions)
	next.ScheduledWorkMinutes = totals.ScheduledMinutes
	next.TotalWorkMinutes = totals.WorkedMinutes
	next.TotalOvertimeMinutes = totals.OvertimeMinutes
	next.TotalUndertimeMinutes = totals.UndertimeMinutes
	next.OverallStatus = DailyPrecedencePolicy{}.Evaluate(next.Sessions)

	return next, changed, nil
}
