package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/attendance"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/schedule"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/database"
	attendancesvc "github.com/shiftwise/timeclock-backend-go/internal/service/attendance"
)

type ScheduleServiceImpl struct {
	db *database.DB
	schedule.WorkScheduleRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewScheduleService(
	db *database.DB,
	scheduleRepo schedule.WorkScheduleRepository,
	attendanceRepo attendance.AttendanceRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:                     db,
		WorkScheduleRepository: scheduleRepo,
		attendanceRepo:         attendanceRepo,
	}
}

// CreateSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	ws := schedule.WorkSchedule{
		ID:   uuid.Must(uuid.NewV7()).String(),
		Name: req.Name,
	}

	for i, w := range req.Windows {
		ws.Windows = append(ws.Windows, schedule.TemplateWindow{
			ID:                     uuid.Must(uuid.NewV7()).String(),
			WorkScheduleID:         ws.ID,
			DayOfWeek:              w.DayOfWeek,
			Name:                   w.Name,
			StartTime:              w.StartTime,
			EndTime:                w.EndTime,
			LateThresholdMins:      w.LateThresholdMins,
			UndertimeThresholdMins: w.UndertimeThresholdMins,
			EarlyClockInMins:       w.EarlyClockInMins,
			Latitude:               w.Latitude,
			Longitude:              w.Longitude,
			RadiusMeters:           w.RadiusMeters,
			PhotoStart:             w.PhotoStart,
			PhotoEnd:               w.PhotoEnd,
			SortOrder:              i,
		})
	}

	created, err := s.WorkScheduleRepository.Create(ctx, ws)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return mapScheduleToResponse(created), nil
}

// GetSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context, id string) (schedule.ScheduleResponse, error) {
	ws, err := s.WorkScheduleRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.ScheduleResponse{}, schedule.ErrScheduleNotFound
		}
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return mapScheduleToResponse(ws), nil
}

// AssignUser implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) AssignUser(ctx context.Context, req schedule.AssignUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)

	assignment := schedule.UserScheduleAssignment{
		ID:             uuid.Must(uuid.NewV7()).String(),
		UserID:         req.UserID,
		WorkScheduleID: req.ScheduleID,
		StartDate:      startDate,
	}

	if req.EndDate != nil {
		endDate, _ := time.Parse("2006-01-02", *req.EndDate)
		assignment.EndDate = &endDate
	}

	if _, err := s.WorkScheduleRepository.CreateAssignment(ctx, assignment); err != nil {
		return fmt.Errorf("failed to assign schedule: %w", err)
	}

	return nil
}

// MaterializeDay implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) MaterializeDay(ctx context.Context, req schedule.MaterializeDayRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	var ws schedule.WorkSchedule
	var err error
	if req.ScheduleID != "" {
		ws, err = s.WorkScheduleRepository.GetByID(ctx, req.ScheduleID)
	} else {
		ws, err = s.WorkScheduleRepository.GetAssignedSchedule(ctx, req.UserID, date)
	}
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) || errors.Is(err, schedule.ErrAssignmentNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve work schedule: %w", err)
	}

	windows := WindowsForDate(ws, date)
	if len(windows) == 0 {
		return attendance.AttendanceResponse{}, schedule.ErrNoWindowsForDay
	}

	att := attendance.Attendance{
		ID: uuid.Must(uuid.NewV7()).String(),
		Schedule: attendance.ScheduleRef{
			ID:   ws.ID,
			Name: ws.Name,
			Date: date,
		},
		User: attendance.UserRef{
			ID:   req.UserID,
			Name: req.UserName,
		},
		MarkedBy: "self",
	}

	for _, w := range windows {
		session := attendance.AttendanceSession{
			ID:       uuid.Must(uuid.NewV7()).String(),
			Schedule: w,
		}
		session.Status = attendancesvc.DeriveSessionStatus(session)
		att.Sessions = append(att.Sessions, session)
	}

	totals := attendancesvc.CalculateDayTotals(att.Sessions)
	att.ScheduledWorkMinutes = totals.ScheduledMinutes
	att.OverallStatus = attendancesvc.DeriveOverallStatus(att.Sessions)

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceExists) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceExists
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.AttendanceResponse{
		ID:                   created.ID,
		Schedule:             created.Schedule,
		User:                 created.User,
		Sessions:             created.Sessions,
		OverallStatus:        created.OverallStatus,
		ScheduledWorkMinutes: created.ScheduledWorkMinutes,
		MarkedBy:             created.MarkedBy,
		CreatedAt:            created.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:            created.UpdatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// WindowsForDate materializes the concrete schedule windows for one
// date: the override for that date when one exists, otherwise the
// weekday template. Window order follows the template's sort order.
func WindowsForDate(ws schedule.WorkSchedule, date time.Time) []attendance.ScheduleWindow {
	templates := templatesForDate(ws, date)

	windows := make([]attendance.ScheduleWindow, 0, len(templates))
	for _, tw := range templates {
		windows = append(windows, buildWindow(tw, date))
	}
	return windows
}

func templatesForDate(ws schedule.WorkSchedule, date time.Time) []schedule.TemplateWindow {
	for _, ov := range ws.Overrides {
		if sameDay(ov.Date, date) {
			return ov.Windows
		}
	}

	dow := int(date.Weekday())
	if dow == 0 {
		dow = 7 // Sunday
	}

	var out []schedule.TemplateWindow
	for _, w := range ws.Windows {
		if w.DayOfWeek == dow {
			out = append(out, w)
		}
	}
	return out
}

func buildWindow(tw schedule.TemplateWindow, date time.Time) attendance.ScheduleWindow {
	w := attendance.ScheduleWindow{
		Start:                  combine(date, tw.StartTime),
		End:                    combine(date, tw.EndTime),
		LateThresholdMins:      tw.LateThresholdMins,
		UndertimeThresholdMins: tw.UndertimeThresholdMins,
		EarlyClockInMins:       tw.EarlyClockInMins,
		GeoRadiusMeters:        tw.RadiusMeters,
		PhotoStart:             tw.PhotoStart,
		PhotoEnd:               tw.PhotoEnd,
	}

	if tw.Latitude != nil && tw.Longitude != nil {
		w.GeoLocation = &attendance.GeoPoint{
			Latitude:  *tw.Latitude,
			Longitude: *tw.Longitude,
		}
	}

	return w
}

// combine composes a date with an HH:MM clock time. An unparsable
// clock time yields a zero instant, which the engine treats as a
// malformed window.
func combine(date time.Time, clockTime string) time.Time {
	t, err := time.Parse("15:04", clockTime)
	if err != nil {
		return time.Time{}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func mapScheduleToResponse(ws schedule.WorkSchedule) schedule.ScheduleResponse {
	resp := schedule.ScheduleResponse{
		ID:        ws.ID,
		Name:      ws.Name,
		CreatedAt: ws.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: ws.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	for _, w := range ws.Windows {
		resp.Windows = append(resp.Windows, schedule.WindowResponse{
			ID:                     w.ID,
			DayOfWeek:              w.DayOfWeek,
			Name:                   w.Name,
			StartTime:              w.StartTime,
			EndTime:                w.EndTime,
			LateThresholdMins:      w.LateThresholdMins,
			UndertimeThresholdMins: w.UndertimeThresholdMins,
			EarlyClockInMins:       w.EarlyClockInMins,
			Latitude:               w.Latitude,
			Longitude:              w.Longitude,
			RadiusMeters:           w.RadiusMeters,
			PhotoStart:             w.PhotoStart,
			PhotoEnd:               w.PhotoEnd,
		})
	}

	return resp
}
