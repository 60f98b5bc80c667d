package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/schedule"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/database"
)

type workScheduleRepository struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}

// Create implements schedule.WorkScheduleRepository. The schedule and
// its template windows are inserted in one transaction.
func (r *workScheduleRepository) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO work_schedules (id, name)
			VALUES ($1, $2)
			RETURNING created_at, updated_at
		`
		if err := tx.QueryRow(ctx, query, ws.ID, ws.Name).Scan(&ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return fmt.Errorf("failed to create work schedule: %w", err)
		}

		windowQuery := `
			INSERT INTO work_schedule_windows (
				id, work_schedule_id, day_of_week, name,
				start_time, end_time,
				late_threshold_mins, undertime_threshold_mins, early_clock_in_mins,
				latitude, longitude, radius_meters,
				photo_start, photo_end, sort_order
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
			)
		`
		for _, w := range ws.Windows {
			_, err := tx.Exec(ctx, windowQuery,
				w.ID, ws.ID, w.DayOfWeek, w.Name,
				w.StartTime, w.EndTime,
				w.LateThresholdMins, w.UndertimeThresholdMins, w.EarlyClockInMins,
				w.Latitude, w.Longitude, w.RadiusMeters,
				w.PhotoStart, w.PhotoEnd, w.SortOrder,
			)
			if err != nil {
				return fmt.Errorf("failed to create schedule window: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return schedule.WorkSchedule{}, err
	}

	return ws, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM work_schedules
		WHERE id = $1
	`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query, id).Scan(&ws.ID, &ws.Name, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	windows, err := r.windowsForSchedule(ctx, ws.ID)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	ws.Windows = windows

	overrides, err := r.overridesForSchedule(ctx, ws.ID)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	ws.Overrides = overrides

	return ws, nil
}

// CreateAssignment implements schedule.WorkScheduleRepository. An
// assignment whose range overlaps an existing one for the same user is
// rejected.
func (r *workScheduleRepository) CreateAssignment(ctx context.Context, assignment schedule.UserScheduleAssignment) (schedule.UserScheduleAssignment, error) {
	q := GetQuerier(ctx, r.db)

	overlapQuery := `
		SELECT EXISTS (
			SELECT 1
			FROM user_schedule_assignments
			WHERE user_id = $1
			  AND start_date <= COALESCE($3::date, 'infinity'::date)
			  AND COALESCE(end_date, 'infinity'::date) >= $2::date
		)
	`
	var overlaps bool
	if err := q.QueryRow(ctx, overlapQuery, assignment.UserID, assignment.StartDate, assignment.EndDate).Scan(&overlaps); err != nil {
		return schedule.UserScheduleAssignment{}, fmt.Errorf("failed to check assignment overlap: %w", err)
	}
	if overlaps {
		return schedule.UserScheduleAssignment{}, schedule.ErrAssignmentOverlap
	}

	query := `
		INSERT INTO user_schedule_assignments (id, user_id, work_schedule_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		assignment.ID,
		assignment.UserID,
		assignment.WorkScheduleID,
		assignment.StartDate,
		assignment.EndDate,
	).Scan(&assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return schedule.UserScheduleAssignment{}, fmt.Errorf("failed to create schedule assignment: %w", err)
	}

	return assignment, nil
}

// GetAssignedSchedule implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetAssignedSchedule(ctx context.Context, userID string, date time.Time) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT work_schedule_id
		FROM user_schedule_assignments
		WHERE user_id = $1
		  AND start_date <= $2
		  AND (end_date IS NULL OR end_date >= $2)
		ORDER BY start_date DESC
		LIMIT 1
	`

	var scheduleID string
	err := q.QueryRow(ctx, query, userID, date).Scan(&scheduleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrAssignmentNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to resolve schedule assignment: %w", err)
	}

	return r.GetByID(ctx, scheduleID)
}

func (r *workScheduleRepository) windowsForSchedule(ctx context.Context, scheduleID string) ([]schedule.TemplateWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, work_schedule_id, day_of_week, name,
			   start_time, end_time,
			   late_threshold_mins, undertime_threshold_mins, early_clock_in_mins,
			   latitude, longitude, radius_meters,
			   photo_start, photo_end, sort_order
		FROM work_schedule_windows
		WHERE work_schedule_id = $1
		ORDER BY day_of_week, sort_order
	`

	rows, err := q.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule windows: %w", err)
	}
	defer rows.Close()

	var windows []schedule.TemplateWindow
	for rows.Next() {
		var w schedule.TemplateWindow
		err := rows.Scan(
			&w.ID, &w.WorkScheduleID, &w.DayOfWeek, &w.Name,
			&w.StartTime, &w.EndTime,
			&w.LateThresholdMins, &w.UndertimeThresholdMins, &w.EarlyClockInMins,
			&w.Latitude, &w.Longitude, &w.RadiusMeters,
			&w.PhotoStart, &w.PhotoEnd, &w.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule window: %w", err)
		}
		windows = append(windows, w)
	}

	return windows, nil
}

func (r *workScheduleRepository) overridesForSchedule(ctx context.Context, scheduleID string) ([]schedule.DayOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, work_schedule_id, override_date
		FROM work_schedule_overrides
		WHERE work_schedule_id = $1
		ORDER BY override_date
	`

	rows, err := q.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule overrides: %w", err)
	}
	defer rows.Close()

	var overrides []schedule.DayOverride
	for rows.Next() {
		var ov schedule.DayOverride
		if err := rows.Scan(&ov.ID, &ov.WorkScheduleID, &ov.Date); err != nil {
			return nil, fmt.Errorf("failed to scan schedule override: %w", err)
		}
		overrides = append(overrides, ov)
	}

	if len(overrides) == 0 {
		return nil, nil
	}

	windowQuery := `
		SELECT id, override_id, name,
			   start_time, end_time,
			   late_threshold_mins, undertime_threshold_mins, early_clock_in_mins,
			   latitude, longitude, radius_meters,
			   photo_start, photo_end, sort_order
		FROM work_schedule_override_windows
		WHERE override_id = ANY($1)
		ORDER BY sort_order
	`

	ids := make([]string, 0, len(overrides))
	byID := make(map[string]*schedule.DayOverride, len(overrides))
	for i := range overrides {
		ids = append(ids, overrides[i].ID)
		byID[overrides[i].ID] = &overrides[i]
	}

	windowRows, err := q.Query(ctx, windowQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query override windows: %w", err)
	}
	defer windowRows.Close()

	for windowRows.Next() {
		var overrideID string
		var w schedule.TemplateWindow
		err := windowRows.Scan(
			&w.ID, &overrideID, &w.Name,
			&w.StartTime, &w.EndTime,
			&w.LateThresholdMins, &w.UndertimeThresholdMins, &w.EarlyClockInMins,
			&w.Latitude, &w.Longitude, &w.RadiusMeters,
			&w.PhotoStart, &w.PhotoEnd, &w.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan override window: %w", err)
		}
		if ov, ok := byID[overrideID]; ok {
			ov.Windows = append(ov.Windows, w)
		}
	}

	return overrides, nil
}
