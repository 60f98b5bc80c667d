package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/attendance"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/geocode"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/jwt"
)

// unknownAddress is the placeholder written when reverse geocoding
// fails. Geocode failures never abort a clock transition.
const unknownAddress = "Unknown address"

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	jwtService jwt.Service
	geocoder   geocode.Resolver
	now        func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	jwtService jwt.Service,
	geocoder geocode.Resolver,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		jwtService:           jwtService,
		geocoder:             geocoder,
		now:                  time.Now,
	}
}

// ToggleClock implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ToggleClock(ctx context.Context, req attendance.ToggleClockRequest) (attendance.ToggleClockResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ToggleClockResponse{}, err
	}

	identity, err := a.jwtService.Identity(ctx)
	if err != nil {
		return attendance.ToggleClockResponse{}, err
	}

	nowUTC := a.now().UTC()

	att, err := a.AttendanceRepository.GetByUserAndDate(ctx, identity.UserID, nowUTC.Truncate(24*time.Hour))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ToggleClockResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.ToggleClockResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}

	point := req.Geo()
	address := ""
	if point != nil {
		address, err = a.geocoder.Resolve(ctx, point.Latitude, point.Longitude)
		if err != nil {
			slog.Warn("reverse geocoding failed, using placeholder address",
				"attendance_id", att.ID, "error", err)
			address = unknownAddress
		}
	}

	updated, changed, err := ApplyClockToggle(att, nowUTC, point, address, req.PhotoURL, req.Remarks)
	if err != nil {
		return attendance.ToggleClockResponse{}, err
	}

	if err := a.AttendanceRepository.UpdateDerived(ctx, updated); err != nil {
		return attendance.ToggleClockResponse{}, fmt.Errorf("failed to persist clock transition: %w", err)
	}

	updated.UpdatedAt = nowUTC

	return attendance.ToggleClockResponse{
		Attendance:       mapAttendanceToResponse(updated),
		ChangedSessionID: changed.ID,
		ChangedSession:   changed,
	}, nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	identity, err := a.jwtService.Identity(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if identity.Role != "admin" && att.User.ID != identity.UserID {
		return attendance.AttendanceResponse{}, attendance.ErrUnauthorized
	}

	return mapAttendanceToResponse(att), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	identity, err := a.jwtService.Identity(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.AttendanceRepository.ListByUser(ctx, identity.UserID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get my attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return buildListResponse(responses, total, filter.Page, filter.Limit), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	return buildListResponse(responses, total, filter.Page, filter.Limit), nil
}

// MarkDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MarkDay(ctx context.Context, req attendance.MarkDayRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	identity, err := a.jwtService.Identity(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	if att.Locked() {
		return attendance.AttendanceResponse{}, attendance.ErrDayLocked
	}

	if err := a.AttendanceRepository.UpdateMark(ctx, req.ID, attendance.StatusTag(req.Status), identity.UserID); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to mark attendance day: %w", err)
	}

	marked, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated attendance: %w", err)
	}

	return mapAttendanceToResponse(marked), nil
}

func buildListResponse(responses []attendance.AttendanceResponse, total int64, page, limit int) attendance.ListAttendanceResponse {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	showing := fmt.Sprintf("%d-%d of %d", (page-1)*limit+1, min(page*limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                    att.ID,
		Schedule:              att.Schedule,
		User:                  att.User,
		Sessions:              att.Sessions,
		OverallStatus:         att.OverallStatus,
		ScheduledWorkMinutes:  att.ScheduledWorkMinutes,
		TotalWorkMinutes:      att.TotalWorkMinutes,
		TotalOvertimeMinutes:  att.TotalOvertimeMinutes,
		TotalUndertimeMinutes: att.TotalUndertimeMinutes,
		MarkedBy:              att.MarkedBy,
		CreatedAt:             att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:             att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
