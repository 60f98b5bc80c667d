package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/attendance"
)

func TestScheduledMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 240, ScheduledMinutes(attendance.ScheduleWindow{Start: at(8, 0), End: at(12, 0)}))
	assert.Equal(t, 245, ScheduledMinutes(attendance.ScheduleWindow{Start: at(8, 0), End: at(12, 5)}))
	assert.Equal(t, 0, ScheduledMinutes(attendance.ScheduleWindow{}))
}

func TestWorkedMinutes(t *testing.T) {
	t.Parallel()

	session := attendance.AttendanceSession{
		ID:           "s1",
		Schedule:     attendance.ScheduleWindow{Start: at(8, 0), End: at(12, 0)},
		CheckInInfo:  &attendance.EventInfo{Time: at(8, 5)},
		CheckOutInfo: &attendance.EventInfo{Time: at(12, 10)},
	}
	assert.Equal(t, 245, WorkedMinutes(session))

	session.CheckOutInfo = nil
	assert.Equal(t, 0, WorkedMinutes(session))
}

func TestOvertimeUndertime_MutuallyExclusive(t *testing.T) {
	t.Parallel()

	window := attendance.ScheduleWindow{Start: at(8, 0), End: at(12, 0)}

	tests := []struct {
		name          string
		checkOut      int // minutes past 08:00
		wantOvertime  int
		wantUndertime int
	}{
		{"worked exactly scheduled", 240, 0, 0},
		{"worked an hour over", 300, 60, 0},
		{"left an hour early", 180, 0, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := attendance.AttendanceSession{
				ID:           "s1",
				Schedule:     window,
				CheckInInfo:  &attendance.EventInfo{Time: at(8, 0)},
				CheckOutInfo: &attendance.EventInfo{Time: at(8, tt.checkOut)},
			}

			overtime := SessionOvertimeMinutes(session)
			undertime := SessionUndertimeMinutes(session)

			assert.Equal(t, tt.wantOvertime, overtime)
			assert.Equal(t, tt.wantUndertime, undertime)
			assert.GreaterOrEqual(t, overtime, 0)
			assert.GreaterOrEqual(t, undertime, 0)
			assert.True(t, overtime == 0 || undertime == 0,
				"overtime and undertime must be mutually exclusive")
		})
	}
}

func TestCalculateDayTotals(t *testing.T) {
	t.Parallel()

	morning := attendance.AttendanceSession{
		ID:           "am",
		Schedule:     attendance.ScheduleWindow{Start: at(8, 0), End: at(12, 0)},
		CheckInInfo:  &attendance.EventInfo{Time: at(8, 0)},
		CheckOutInfo: &attendance.EventInfo{Time: at(12, 30)},
	}
	afternoon := attendance.AttendanceSession{
		ID:       "pm",
		Schedule: attendance.ScheduleWindow{Start: at(13, 0), End: at(17, 0)},
	}

	totals := CalculateDayTotals([]attendance.AttendanceSession{morning, afternoon})

	assert.Equal(t, 480, totals.ScheduledMinutes)
	assert.Equal(t, 270, totals.WorkedMinutes)
	assert.Equal(t, 30, totals.OvertimeMinutes)
	assert.Equal(t, 240, totals.UndertimeMinutes)
}

func TestCalculateDayTotals_Idempotent(t *testing.T) {
	t.Parallel()

	sessions := []attendance.AttendanceSession{
		{
			ID:           "am",
			Schedule:     attendance.ScheduleWindow{Start: at(8, 0), End: at(12, 0)},
			CheckInInfo:  &attendance.EventInfo{Time: at(8, 10)},
			CheckOutInfo: &attendance.EventInfo{Time: at(11, 45)},
		},
	}

	first := CalculateDayTotals(sessions)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, CalculateDayTotals(sessions))
	}
}

func TestTotalsStatus(t *testing.T) {
	t.Parallel()

	window := attendance.ScheduleWindow{Start: at(8, 0), End: at(12, 0)}

	tests := []struct {
		name     string
		checkIn  *attendance.EventInfo
		checkOut *attendance.EventInfo
		want     attendance.StatusTag
	}{
		{"no events", nil, nil, attendance.StatusAbsent},
		{"open session", &attendance.EventInfo{Time: at(8, 0)}, nil, attendance.StatusAbsent},
		{
			"worked over",
			&attendance.EventInfo{Time: at(8, 0)},
			&attendance.EventInfo{Time: at(12, 30)},
			attendance.StatusOvertime,
		},
		{
			"worked under",
			&attendance.EventInfo{Time: at(8, 0)},
			&attendance.EventInfo{Time: at(11, 0)},
			attendance.StatusUndertime,
		},
		{
			"worked exactly",
			&attendance.EventInfo{Time: at(8, 0)},
			&attendance.EventInfo{Time: at(12, 0)},
			attendance.StatusPresent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := attendance.AttendanceSession{
				ID:           "s1",
				Schedule:     window,
				CheckInInfo:  tt.checkIn,
				CheckOutInfo: tt.checkOut,
			}
			assert.Equal(t, tt.want, TotalsStatus(session))
		})
	}
}

// The threshold rule and the totals rule can legitimately disagree on
// the same session; both outputs are preserved.
func TestThresholdAndTotalsRulesDiverge(t *testing.T) {
	t.Parallel()

	session := attendance.AttendanceSession{
		ID: "s1",
		Schedule: attendance.ScheduleWindow{
			Start:                  at(8, 0),
			End:                    at(12, 0),
			LateThresholdMins:      15,
			UndertimeThresholdMins: 30,
		},
		// Late by threshold, but stayed long enough to rack up overtime.
		CheckInInfo:  &attendance.EventInfo{Time: at(8, 30)},
		CheckOutInfo: &attendance.EventInfo{Time: at(13, 0)},
	}

	assert.Equal(t, []attendance.StatusTag{attendance.StatusLate}, DeriveSessionStatus(session))
	assert.Equal(t, attendance.StatusOvertime, TotalsStatus(session))
}
