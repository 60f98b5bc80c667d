package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/attendance"
)

// at builds a clock time on a fixed reference day.
func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestIsLate(t *testing.T) {
	t.Parallel()

	scheduledStart := at(8, 0)

	tests := []struct {
		name    string
		checkIn time.Time
		want    bool
	}{
		{"within early window", at(7, 56), false},
		{"before grace limit", at(8, 14), false},
		{"exactly at grace limit", at(8, 15), false},
		{"past grace limit", at(8, 16), true},
		{"before early window opens", at(7, 54), false},
		{"well past grace limit", at(9, 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsLate(tt.checkIn, scheduledStart, 15, 5)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsLate_ZeroEarlyClockIn(t *testing.T) {
	t.Parallel()

	// With no early window, anything before the scheduled start is
	// "too early" and therefore never late.
	assert.False(t, IsLate(at(7, 59), at(8, 0), 15, 0))
	assert.True(t, IsLate(at(8, 16), at(8, 0), 15, 0))
}

func TestIsUndertime(t *testing.T) {
	t.Parallel()

	scheduledEnd := at(17, 0)

	tests := []struct {
		name     string
		checkOut time.Time
		want     bool
	}{
		{"before threshold", at(16, 29), true},
		{"exactly at threshold", at(16, 30), false},
		{"after threshold", at(16, 31), false},
		{"at scheduled end", at(17, 0), false},
		{"after scheduled end", at(17, 45), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsUndertime(tt.checkOut, scheduledEnd, 30)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveSessionStatus(t *testing.T) {
	t.Parallel()

	window := attendance.ScheduleWindow{
		Start:                  at(8, 0),
		End:                    at(17, 0),
		LateThresholdMins:      15,
		UndertimeThresholdMins: 30,
		EarlyClockInMins:       5,
	}

	tests := []struct {
		name    string
		session attendance.AttendanceSession
		want    []attendance.StatusTag
	}{
		{
			"malformed window",
			attendance.AttendanceSession{ID: "s1"},
			[]attendance.StatusTag{attendance.StatusAbsent},
		},
		{
			"no events",
			attendance.AttendanceSession{ID: "s1", Schedule: window},
			[]attendance.StatusTag{attendance.StatusAbsent},
		},
		{
			"on-time check-in only",
			attendance.AttendanceSession{
				ID:          "s1",
				Schedule:    window,
				CheckInInfo: &attendance.EventInfo{Time: at(8, 5)},
			},
			[]attendance.StatusTag{attendance.StatusPresent},
		},
		{
			"late check-in only",
			attendance.AttendanceSession{
				ID:          "s1",
				Schedule:    window,
				CheckInInfo: &attendance.EventInfo{Time: at(8, 20)},
			},
			[]attendance.StatusTag{attendance.StatusLate},
		},
		{
			"late check-in and undertime check-out",
			attendance.AttendanceSession{
				ID:           "s1",
				Schedule:     window,
				CheckInInfo:  &attendance.EventInfo{Time: at(8, 20)},
				CheckOutInfo: &attendance.EventInfo{Time: at(16, 0)},
			},
			[]attendance.StatusTag{attendance.StatusLate, attendance.StatusUndertime},
		},
		{
			"present full day",
			attendance.AttendanceSession{
				ID:           "s1",
				Schedule:     window,
				CheckInInfo:  &attendance.EventInfo{Time: at(8, 0)},
				CheckOutInfo: &attendance.EventInfo{Time: at(17, 0)},
			},
			[]attendance.StatusTag{attendance.StatusPresent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveSessionStatus(tt.session)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionDurationMinutes(t *testing.T) {
	t.Parallel()

	window := attendance.ScheduleWindow{Start: at(8, 0), End: at(12, 0)}

	session := attendance.AttendanceSession{
		ID:           "s1",
		Schedule:     window,
		CheckInInfo:  &attendance.EventInfo{Time: at(8, 5)},
		CheckOutInfo: &attendance.EventInfo{Time: at(12, 10)},
	}
	assert.Equal(t, 245, SessionDurationMinutes(session))

	session.CheckOutInfo = nil
	assert.Equal(t, 0, SessionDurationMinutes(session))

	session.CheckInInfo = nil
	assert.Equal(t, 0, SessionDurationMinutes(session))
}

func TestSessionDurationMinutes_FloorsPartialMinute(t *testing.T) {
	t.Parallel()

	session := attendance.AttendanceSession{
		ID:           "s1",
		Schedule:     attendance.ScheduleWindow{Start: at(8, 0), End: at(12, 0)},
		CheckInInfo:  &attendance.EventInfo{Time: at(8, 0)},
		CheckOutInfo: &attendance.EventInfo{Time: at(8, 30).Add(45 * time.Second)},
	}
	assert.Equal(t, 30, SessionDurationMinutes(session))
}
