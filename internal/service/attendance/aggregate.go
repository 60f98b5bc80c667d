package attendance

import (
	"github.com/shiftwise/timeclock-backend-go/internal/domain/attendance"
)

// StatusPolicy derives a single day-level label from a day's sessions.
// Two policies exist in the domain and answer different questions;
// they are never reconciled, so call sites must pick one explicitly.
type StatusPolicy interface {
	Name() string
	Evaluate(sessions []attendance.AttendanceSession) attendance.StatusTag
}

// DailyPrecedencePolicy is the dashboard/history policy: the worst
// tag present across all sessions wins, in a fixed precedence order.
type DailyPrecedencePolicy struct{}

func (DailyPrecedencePolicy) Name() string { return "daily-precedence" }

func (DailyPrecedencePolicy) Evaluate(sessions []attendance.AttendanceSession) attendance.StatusTag {
	return DeriveOverallStatus(sessions)
}

var statusPrecedence = []attendance.StatusTag{
	attendance.StatusLate,
	attendance.StatusUndertime,
	attendance.StatusPresent,
	attendance.StatusAbsent,
}

// DeriveOverallStatus flattens all sessions' tags and returns the
// first precedence match: late, undertime, present, absent. Defaults
// to absent when nothing matches.
func DeriveOverallStatus(sessions []attendance.AttendanceSession) attendance.StatusTag {
	for _, want := range statusPrecedence {
		for _, s := range sessions {
			for _, tag := range s.Status {
				if tag == want {
					return want
				}
			}
		}
	}
	return attendance.StatusAbsent
}

// TwoSessionMergePolicy combines a day of exactly two named sessions
// (e.g. AM/PM) into one label, with half-day as the mixed outcome.
type TwoSessionMergePolicy struct{}

func (TwoSessionMergePolicy) Name() string { return "two-session-merge" }

func (TwoSessionMergePolicy) Evaluate(sessions []attendance.AttendanceSession) attendance.StatusTag {
	var first, second attendance.StatusTag
	if len(sessions) > 0 {
		first = primaryStatus(sessions[0])
	}
	if len(sessions) > 1 {
		second = primaryStatus(sessions[1])
	}
	return MergeTwoSessionStatus(first, second)
}

// primaryStatus is the session's leading tag, or empty when the
// session has no derived status yet.
func primaryStatus(session attendance.AttendanceSession) attendance.StatusTag {
	if len(session.Status) == 0 {
		return ""
	}
	return session.Status[0]
}

func isWorkingStatus(s attendance.StatusTag) bool {
	switch s {
	case attendance.StatusPresent, attendance.StatusLate, attendance.StatusOvertime, attendance.StatusUndertime:
		return true
	}
	return false
}

func isAttendedStatus(s attendance.StatusTag) bool {
	return s != "" && s != attendance.StatusAbsent
}

// MergeTwoSessionStatus merges the two sessions' labels:
//   - both excused               -> excused
//   - both worked (any of present/late/overtime/undertime) -> present
//   - any other attended session (one worked, or one excused and one
//     worked)                    -> half-day
//   - otherwise                  -> absent
func MergeTwoSessionStatus(first, second attendance.StatusTag) attendance.StatusTag {
	if first == attendance.StatusExcused && second == attendance.StatusExcused {
		return attendance.StatusExcused
	}
	if isWorkingStatus(first) && isWorkingStatus(second) {
		return attendance.StatusPresent
	}
	if isAttendedStatus(first) || isAttendedStatus(second) {
		return attendance.StatusHalfDay
	}
	return attendance.StatusAbsent
}
