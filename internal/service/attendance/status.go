package attendance

import (
	"math"
	"time"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/attendance"
)

// IsLate reports whether a check-in counts as late for a session
// starting at scheduledStart. The grace window runs from
// scheduledStart-earlyClockInMins to scheduledStart+lateThresholdMins.
//
// A check-in before the early window opens returns false: an
// excessively early clock-in is never flagged late, even though it may
// itself be policy-invalid. Preserved as-is; intent unclear.
func IsLate(checkIn, scheduledStart time.Time, lateThresholdMins, earlyClockInMins int) bool {
	earliestAllowed := scheduledStart.Add(-time.Duration(earlyClockInMins) * time.Minute)
	latestAllowed := scheduledStart.Add(time.Duration(lateThresholdMins) * time.Minute)

	if checkIn.Before(earliestAllowed) {
		return false
	}
	return checkIn.After(latestAllowed)
}

// IsUndertime reports whether a check-out leaves before the undertime
// threshold ahead of scheduledEnd.
func IsUndertime(checkOut, scheduledEnd time.Time, undertimeThresholdMins int) bool {
	thresholdEnd := scheduledEnd.Add(-time.Duration(undertimeThresholdMins) * time.Minute)
	return checkOut.Before(thresholdEnd)
}

// DeriveSessionStatus derives the ordered status tags for one session
// from its schedule window and recorded events. Tags are appended in
// evaluation order and not deduplicated.
func DeriveSessionStatus(session attendance.AttendanceSession) []attendance.StatusTag {
	if !session.Schedule.IsValid() {
		return []attendance.StatusTag{attendance.StatusAbsent}
	}

	var tags []attendance.StatusTag

	if session.CheckInInfo != nil {
		if IsLate(session.CheckInInfo.Time, session.Schedule.Start,
			session.Schedule.LateThresholdMins, session.Schedule.EarlyClockInMins) {
			tags = append(tags, attendance.StatusLate)
		} else {
			tags = append(tags, attendance.StatusPresent)
		}
	} else {
		tags = append(tags, attendance.StatusAbsent)
	}

	if session.CheckOutInfo != nil &&
		IsUndertime(session.CheckOutInfo.Time, session.Schedule.End, session.Schedule.UndertimeThresholdMins) {
		tags = append(tags, attendance.StatusUndertime)
	}

	return tags
}

// SessionDurationMinutes returns the floored minutes between check-in
// and check-out, or 0 while either event is missing.
func SessionDurationMinutes(session attendance.AttendanceSession) int {
	if session.CheckInInfo == nil || session.CheckOutInfo == nil {
		return 0
	}
	d := session.CheckOutInfo.Time.Sub(session.CheckInInfo.Time)
	return int(math.Floor(d.Minutes()))
}
