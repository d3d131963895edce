package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmtkv/CourtBooker/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CoachBookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCoachBookingRepo(db *dbpg.DB) *CoachBookingRepository {
	return &CoachBookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// lockCoachProfile takes the coach profile row FOR UPDATE so that concurrent
// bookings for the same coach serialize before the conflict read. Shared with
// the event composite create, which books coach time inside its own tx.
func lockCoachProfile(ctx context.Context, tx *sql.Tx, coachProfileID string) error {
	query := `SELECT id FROM coach_profiles WHERE id = $1 FOR UPDATE`
	var id string
	if err := tx.QueryRowContext(ctx, query, coachProfileID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCoachProfileNotFound
		}
		return fmt.Errorf("lock coach profile: %w", err)
	}
	return nil
}

func checkCoachSlot(ctx context.Context, tx *sql.Tx, b *domain.CoachBooking) error {
	query := `SELECT start_time, end_time FROM coach_bookings
			  WHERE coach_profile_id = $1 AND date = $2 AND status = ANY($3)`
	rows, err := tx.QueryContext(ctx, query, b.CoachProfileID, b.Date, pq.Array(domain.BlockingStatuses))
	if err != nil {
		return fmt.Errorf("load booked slots: %w", err)
	}
	conflict, err := hasOverlap(rows, b.StartTime, b.EndTime)
	if err != nil {
		return fmt.Errorf("check slots: %w", err)
	}
	if conflict {
		return domain.ErrBookingConflict
	}
	return nil
}

func insertCoachBooking(ctx context.Context, tx *sql.Tx, b *domain.CoachBooking) error {
	query := `INSERT INTO coach_bookings
			  (id, client_id, coach_profile_id, sport, session_type, date, start_time, end_time,
			   total_price, status, notes, location, is_event, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := tx.ExecContext(
		ctx, query, b.ID, b.ClientID, b.CoachProfileID, b.Sport, b.SessionType,
		b.Date, b.StartTime, b.EndTime, b.TotalPrice, b.Status,
		b.Notes, b.Location, b.IsEvent, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrBookingConflict
		}
		return fmt.Errorf("insert coach booking: %w", err)
	}
	return nil
}

func (r *CoachBookingRepository) Create(ctx context.Context, b *domain.CoachBooking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockCoachProfile(ctx, tx, b.CoachProfileID); err != nil {
		return err
	}
	if err = checkCoachSlot(ctx, tx, b); err != nil {
		return err
	}
	if err = insertCoachBooking(ctx, tx, b); err != nil {
		return err
	}

	return tx.Commit()
}

const coachBookingColumns = `b.id, b.client_id, b.coach_profile_id, b.sport, b.session_type,
			b.date, b.start_time, b.end_time, b.total_price, b.status, b.notes, b.location,
			b.is_event, b.created_at, b.updated_at,
			u.id, u.username, u.telegram_chat_id, u.created_at,
			p.id, p.user_id, p.hourly_rate, p.is_available, p.created_at`

const coachBookingJoins = `FROM coach_bookings b
			JOIN users u ON u.id = b.client_id
			JOIN coach_profiles p ON p.id = b.coach_profile_id`

func scanCoachBooking(row interface{ Scan(dest ...any) error }) (*domain.CoachBooking, error) {
	var b domain.CoachBooking
	var u domain.User
	var p domain.CoachProfile
	err := row.Scan(
		&b.ID, &b.ClientID, &b.CoachProfileID, &b.Sport, &b.SessionType,
		&b.Date, &b.StartTime, &b.EndTime, &b.TotalPrice, &b.Status, &b.Notes, &b.Location,
		&b.IsEvent, &b.CreatedAt, &b.UpdatedAt,
		&u.ID, &u.Username, &u.TelegramChatID, &u.CreatedAt,
		&p.ID, &p.UserID, &p.HourlyRate, &p.IsAvailable, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Client = &u
	b.CoachProfile = &p
	return &b, nil
}

func (r *CoachBookingRepository) GetByID(ctx context.Context, id string) (*domain.CoachBooking, error) {
	query := `SELECT ` + coachBookingColumns + ` ` + coachBookingJoins + ` WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get coach booking: %w", err)
	}

	b, err := scanCoachBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan coach booking: %w", err)
	}

	return b, nil
}

func (r *CoachBookingRepository) ListByCoach(ctx context.Context, coachProfileID string) ([]*domain.CoachBooking, error) {
	query := `SELECT ` + coachBookingColumns + ` ` + coachBookingJoins + `
			  WHERE b.coach_profile_id = $1
			  ORDER BY b.date DESC, b.start_time DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, coachProfileID)
	if err != nil {
		return nil, fmt.Errorf("list coach bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.CoachBooking
	for rows.Next() {
		b, err := scanCoachBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coach booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *CoachBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE coach_bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update coach booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("coach booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *CoachBookingRepository) CompleteElapsed(ctx context.Context, today string) ([]*domain.CoachBooking, error) {
	query := `UPDATE coach_bookings
			  SET status = $1, updated_at = NOW()
			  WHERE status = $2 AND date < $3
			  RETURNING id, client_id, coach_profile_id, sport, session_type, date, start_time, end_time,
						total_price, status, notes, location, is_event, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusCompleted, domain.BookingStatusConfirmed, today,
	)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed coach bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.CoachBooking
	for rows.Next() {
		var b domain.CoachBooking
		if err = rows.Scan(
			&b.ID, &b.ClientID, &b.CoachProfileID, &b.Sport, &b.SessionType,
			&b.Date, &b.StartTime, &b.EndTime, &b.TotalPrice, &b.Status,
			&b.Notes, &b.Location, &b.IsEvent, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan coach booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
