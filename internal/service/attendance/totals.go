package attendance

import (
	"math"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/attendance"
)

// DayTotals are the four recomputed minute totals of one day.
type DayTotals struct {
	ScheduledMinutes int
	WorkedMinutes    int
	OvertimeMinutes  int
	UndertimeMinutes int
}

// ScheduledMinutes returns the planned length of a window, rounded to
// the nearest minute.
func ScheduledMinutes(window attendance.ScheduleWindow) int {
	if !window.IsValid() {
		return 0
	}
	return int(math.Round(window.End.Sub(window.Start).Minutes()))
}

// WorkedMinutes returns the rounded minutes between check-in and
// check-out, or 0 while either event is missing.
func WorkedMinutes(session attendance.AttendanceSession) int {
	if session.CheckInInfo == nil || session.CheckOutInfo == nil {
		return 0
	}
	d := session.CheckOutInfo.Time.Sub(session.CheckInInfo.Time)
	return int(math.Round(d.Minutes()))
}

// SessionOvertimeMinutes returns worked minutes beyond the scheduled
// length, never negative.
func SessionOvertimeMinutes(session attendance.AttendanceSession) int {
	return max(0, WorkedMinutes(session)-ScheduledMinutes(session.Schedule))
}

// SessionUndertimeMinutes returns the scheduled minutes not worked,
// never negative.
func SessionUndertimeMinutes(session attendance.AttendanceSession) int {
	return max(0, ScheduledMinutes(session.Schedule)-WorkedMinutes(session))
}

// CalculateDayTotals sums the per-session totals across the day.
func CalculateDayTotals(sessions []attendance.AttendanceSession) DayTotals {
	var totals DayTotals
	for _, s := range sessions {
		totals.ScheduledMinutes += ScheduledMinutes(s.Schedule)
		totals.WorkedMinutes += WorkedMinutes(s)
		totals.OvertimeMinutes += SessionOvertimeMinutes(s)
		totals.UndertimeMinutes += SessionUndertimeMinutes(s)
	}
	return totals
}

// TotalsStatus classifies one session purely on its minute totals.
// This rule is independent of the threshold-based tags from
// DeriveSessionStatus; both coexist and serve different call sites.
func TotalsStatus(session attendance.AttendanceSession) attendance.StatusTag {
	worked := WorkedMinutes(session)
	if worked == 0 {
		return attendance.StatusAbsent
	}
	if SessionOvertimeMinutes(session) > 0 {
		return attendance.StatusOvertime
	}
	if SessionUndertimeMinutes(session) > 0 {
		return attendance.StatusUndertime
	}
	return attendance.StatusPresent
}
