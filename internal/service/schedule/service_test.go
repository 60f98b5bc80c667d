package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/attendance"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/schedule"
)

type fakeScheduleRepo struct {
	byID map[string]schedule.WorkSchedule
}

func newFakeScheduleRepo(schedules ...schedule.WorkSchedule) *fakeScheduleRepo {
	r := &fakeScheduleRepo{byID: make(map[string]schedule.WorkSchedule)}
	for _, ws := range schedules {
		r.byID[ws.ID] = ws
	}
	return r
}

func (r *fakeScheduleRepo) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	r.byID[ws.ID] = ws
	return ws, nil
}

func (r *fakeScheduleRepo) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	ws, ok := r.byID[id]
	if !ok {
		return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
	}
	return ws, nil
}

func (r *fakeScheduleRepo) CreateAssignment(ctx context.Context, a schedule.UserScheduleAssignment) (schedule.UserScheduleAssignment, error) {
	return a, nil
}

func (r *fakeScheduleRepo) GetAssignedSchedule(ctx context.Context, userID string, date time.Time) (schedule.WorkSchedule, error) {
	for _, ws := range r.byID {
		return ws, nil
	}
	return schedule.WorkSchedule{}, schedule.ErrAssignmentNotFound
}

type fakeAttendanceStore struct {
	created []attendance.Attendance
}

func (r *fakeAttendanceStore) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.created = append(r.created, att)
	return att, nil
}

func (r *fakeAttendanceStore) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceStore) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceStore) UpdateDerived(ctx context.Context, att attendance.Attendance) error {
	return nil
}

func (r *fakeAttendanceStore) UpdateMark(ctx context.Context, id string, status attendance.StatusTag, markedBy string) error {
	return nil
}

func (r *fakeAttendanceStore) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (r *fakeAttendanceStore) ListByUser(ctx context.Context, userID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func officeHoursSchedule() schedule.WorkSchedule {
	lat, lng := -6.2088, 106.8456
	return schedule.WorkSchedule{
		ID:   "sched-1",
		Name: "Office Hours",
		Windows: []schedule.TemplateWindow{
			{
				ID:                     "tw-mon-am",
				DayOfWeek:              1,
				Name:                   "morning",
				StartTime:              "08:00",
				EndTime:                "12:00",
				LateThresholdMins:      15,
				UndertimeThresholdMins: 30,
				EarlyClockInMins:       5,
				Latitude:               &lat,
				Longitude:              &lng,
				RadiusMeters:           100,
				SortOrder:              0,
			},
			{
				ID:                     "tw-mon-pm",
				DayOfWeek:              1,
				Name:                   "afternoon",
				StartTime:              "13:00",
				EndTime:                "17:00",
				LateThresholdMins:      15,
				UndertimeThresholdMins: 30,
				SortOrder:              1,
			},
			{
				ID:        "tw-tue",
				DayOfWeek: 2,
				Name:      "full day",
				StartTime: "09:00",
				EndTime:   "17:00",
			},
		},
		Overrides: []schedule.DayOverride{
			{
				ID:   "ov-1",
				Date: time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), // a Monday
				Windows: []schedule.TemplateWindow{
					{ID: "tw-ov", Name: "half day", StartTime: "08:00", EndTime: "12:00"},
				},
			},
			{
				ID:   "ov-2",
				Date: time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC), // Monday off
			},
		},
	}
}

func TestWindowsForDate(t *testing.T) {
	t.Parallel()

	ws := officeHoursSchedule()

	t.Run("weekday template", func(t *testing.T) {
		monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		windows := WindowsForDate(ws, monday)

		require.Len(t, windows, 2)
		assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), windows[0].Start)
		assert.Equal(t, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC), windows[1].End)
		require.NotNil(t, windows[0].GeoLocation)
		assert.Equal(t, 100.0, windows[0].GeoRadiusMeters)
		assert.Nil(t, windows[1].GeoLocation)
	})

	t.Run("override replaces template", func(t *testing.T) {
		overridden := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)
		windows := WindowsForDate(ws, overridden)

		require.Len(t, windows, 1)
		assert.Equal(t, time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC), windows[0].End)
	})

	t.Run("empty override is a day off", func(t *testing.T) {
		dayOff := time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, WindowsForDate(ws, dayOff))
	})

	t.Run("sunday maps to day seven", func(t *testing.T) {
		sunday := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, WindowsForDate(ws, sunday))
	})
}

func TestMaterializeDay(t *testing.T) {
	t.Parallel()

	store := &fakeAttendanceStore{}
	svc := NewScheduleService(nil, newFakeScheduleRepo(officeHoursSchedule()), store)

	resp, err := svc.MaterializeDay(context.Background(), schedule.MaterializeDayRequest{
		ScheduleID: "sched-1",
		UserID:     "user-1",
		UserName:   "Dewi",
		Date:       "2025-03-10",
	})
	require.NoError(t, err)

	require.Len(t, resp.Sessions, 2)
	assert.NotEmpty(t, resp.Sessions[0].ID)
	assert.NotEqual(t, resp.Sessions[0].ID, resp.Sessions[1].ID)
	assert.Equal(t, []attendance.StatusTag{attendance.StatusAbsent}, resp.Sessions[0].Status)
	assert.Equal(t, attendance.StatusAbsent, resp.OverallStatus)
	assert.Equal(t, 480, resp.ScheduledWorkMinutes)
	assert.Equal(t, "self", resp.MarkedBy)
	require.Len(t, store.created, 1)
}

func TestMaterializeDay_NoWindows(t *testing.T) {
	t.Parallel()

	svc := NewScheduleService(nil, newFakeScheduleRepo(officeHoursSchedule()), &fakeAttendanceStore{})

	_, err := svc.MaterializeDay(context.Background(), schedule.MaterializeDayRequest{
		ScheduleID: "sched-1",
		UserID:     "user-1",
		Date:       "2025-03-16", // Sunday, no template windows
	})
	assert.ErrorIs(t, err, schedule.ErrNoWindowsForDay)
}

func TestMaterializeDay_ScheduleNotFound(t *testing.T) {
	t.Parallel()

	svc := NewScheduleService(nil, newFakeScheduleRepo(), &fakeAttendanceStore{})

	_, err := svc.MaterializeDay(context.Background(), schedule.MaterializeDayRequest{
		ScheduleID: "missing",
		UserID:     "user-1",
		Date:       "2025-03-10",
	})
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestCreateSchedule_Validation(t *testing.T) {
	t.Parallel()

	svc := NewScheduleService(nil, newFakeScheduleRepo(), &fakeAttendanceStore{})

	_, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleRequest{
		Name: "Broken",
		Windows: []schedule.CreateWindowRequest{
			{DayOfWeek: 8, StartTime: "08:00", EndTime: "12:00"},
		},
	})
	assert.Error(t, err)
}
