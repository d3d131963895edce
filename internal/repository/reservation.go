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

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create inserts a reservation after a conflict check against every
// non-cancelled row for the same (stadium, court, date). The stadium row is
// locked first so concurrent writers for the same venue serialize; the
// partial unique slot index is the backstop.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT id FROM stadiums WHERE id = $1 FOR UPDATE`
	var stadiumID string
	if err = tx.QueryRowContext(ctx, lockQuery, res.StadiumID).Scan(&stadiumID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrStadiumNotFound
		}
		return fmt.Errorf("lock stadium: %w", err)
	}

	slotQuery := `SELECT start_time, end_time FROM reservations
				  WHERE stadium_id = $1 AND court_number = $2 AND date = $3 AND status = ANY($4)`
	rows, err := tx.QueryContext(ctx, slotQuery, res.StadiumID, res.CourtNumber, res.Date, pq.Array(domain.BlockingStatuses))
	if err != nil {
		return fmt.Errorf("load booked slots: %w", err)
	}
	conflict, err := hasOverlap(rows, res.StartTime, res.EndTime)
	if err != nil {
		return fmt.Errorf("check slots: %w", err)
	}
	if conflict {
		return domain.ErrBookingConflict
	}

	query := `INSERT INTO reservations
			  (id, user_id, stadium_id, court_number, sport, court_type, date, start_time, end_time, total_price, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.ExecContext(
		ctx, query, res.ID, res.UserID, res.StadiumID, res.CourtNumber,
		res.Sport, res.CourtType, res.Date, res.StartTime, res.EndTime,
		res.TotalPrice, res.Status, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrBookingConflict
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

const reservationColumns = `r.id, r.user_id, r.stadium_id, r.court_number, r.sport, r.court_type,
			r.date, r.start_time, r.end_time, r.total_price, r.status, r.created_at, r.updated_at,
			u.id, u.username, u.telegram_chat_id, u.created_at,
			s.id, s.name, s.address, s.owner_id, s.rating, s.created_at`

const reservationJoins = `FROM reservations r
			JOIN users u ON u.id = r.user_id
			JOIN stadiums s ON s.id = r.stadium_id`

func scanReservation(row interface{ Scan(dest ...any) error }) (*domain.Reservation, error) {
	var res domain.Reservation
	var u domain.User
	var s domain.Stadium
	err := row.Scan(
		&res.ID, &res.UserID, &res.StadiumID, &res.CourtNumber, &res.Sport, &res.CourtType,
		&res.Date, &res.StartTime, &res.EndTime, &res.TotalPrice, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		&u.ID, &u.Username, &u.TelegramChatID, &u.CreatedAt,
		&s.ID, &s.Name, &s.Address, &s.OwnerID, &s.Rating, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	res.User = &u
	res.Stadium = &s
	return &res, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` ` + reservationJoins + ` WHERE r.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) ListByStadiumDate(ctx context.Context, stadiumID, date string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` ` + reservationJoins + `
			  WHERE r.stadium_id = $1 AND r.date = $2
			  ORDER BY r.start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, stadiumID, date)
	if err != nil {
		return nil, fmt.Errorf("list stadium reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` ` + reservationJoins + `
			  WHERE r.user_id = $1
			  ORDER BY r.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reservations WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

// CompleteElapsed moves confirmed reservations whose date has passed to the
// completed terminal status and returns the transitioned rows.
func (r *ReservationRepository) CompleteElapsed(ctx context.Context, today string) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $1, updated_at = NOW()
			  WHERE status = $2 AND date < $3
			  RETURNING id, user_id, stadium_id, court_number, sport, court_type,
						date, start_time, end_time, total_price, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusCompleted, domain.BookingStatusConfirmed, today,
	)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err = rows.Scan(
			&rv.ID, &rv.UserID, &rv.StadiumID, &rv.CourtNumber, &rv.Sport, &rv.CourtType,
			&rv.Date, &rv.StartTime, &rv.EndTime, &rv.TotalPrice, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}
