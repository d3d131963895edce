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

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create persists the whole event composite in one transaction: the coach
// booking (conflict-gated exactly like a standalone booking), the event row,
// its sport links and the creator participant. Any failure rolls everything
// back.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event, booking *domain.CoachBooking, sportIDs []string, creator *domain.EventParticipant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockCoachProfile(ctx, tx, booking.CoachProfileID); err != nil {
		return err
	}
	if err = checkCoachSlot(ctx, tx, booking); err != nil {
		return err
	}
	if err = insertCoachBooking(ctx, tx, booking); err != nil {
		return err
	}

	eventQuery := `INSERT INTO events
				   (id, title, description, additional_notes, event_date, start_time, end_time,
					max_participants, is_private, is_shared_cost, stadium_id, coach_profile_id,
					coach_booking_id, creator_id, created_at, updated_at)
				   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = tx.ExecContext(
		ctx, eventQuery, e.ID, e.Title, e.Description, e.AdditionalNotes,
		e.EventDate, e.StartTime, e.EndTime, e.MaxParticipants, e.IsPrivate, e.IsSharedCost,
		e.StadiumID, e.CoachProfileID, e.CoachBookingID, e.CreatorID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	sportQuery := `INSERT INTO event_sports (event_id, sport_id) VALUES ($1, $2)`
	for _, sportID := range sportIDs {
		if _, err = tx.ExecContext(ctx, sportQuery, e.ID, sportID); err != nil {
			return fmt.Errorf("insert event sport: %w", err)
		}
	}

	if err = insertParticipant(ctx, tx, creator); err != nil {
		return err
	}

	return tx.Commit()
}

func insertParticipant(ctx context.Context, tx *sql.Tx, p *domain.EventParticipant) error {
	query := `INSERT INTO event_participants (id, event_id, user_id, status, joined_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.ExecContext(ctx, query, p.ID, p.EventID, p.UserID, p.Status, p.JoinedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyJoined
		}
		return fmt.Errorf("insert participant: %w", err)
	}
	return nil
}

const eventColumns = `id, title, description, additional_notes, event_date, start_time, end_time,
			max_participants, is_private, is_shared_cost, stadium_id, coach_profile_id,
			coach_booking_id, creator_id, created_at, updated_at`

func scanEvent(row interface{ Scan(dest ...any) error }) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.AdditionalNotes, &e.EventDate, &e.StartTime, &e.EndTime,
		&e.MaxParticipants, &e.IsPrivate, &e.IsSharedCost, &e.StadiumID, &e.CoachProfileID,
		&e.CoachBookingID, &e.CreatorID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	if e.Sports, err = r.listSports(ctx, id); err != nil {
		return nil, err
	}
	if e.Participants, err = r.listParticipants(ctx, id); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *EventRepository) listSports(ctx context.Context, eventID string) ([]domain.Sport, error) {
	query := `SELECT s.id, s.name
			  FROM event_sports es
			  JOIN sports s ON s.id = es.sport_id
			  WHERE es.event_id = $1
			  ORDER BY s.name ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event sports: %w", err)
	}
	defer rows.Close()

	var res []domain.Sport
	for rows.Next() {
		var s domain.Sport
		if err = rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan sport: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *EventRepository) listParticipants(ctx context.Context, eventID string) ([]domain.EventParticipant, error) {
	query := `SELECT p.id, p.event_id, p.user_id, p.status, p.joined_at,
					 u.id, u.username, u.telegram_chat_id, u.created_at
			  FROM event_participants p
			  JOIN users u ON u.id = p.user_id
			  WHERE p.event_id = $1
			  ORDER BY p.joined_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var res []domain.EventParticipant
	for rows.Next() {
		var p domain.EventParticipant
		var u domain.User
		if err = rows.Scan(
			&p.ID, &p.EventID, &p.UserID, &p.Status, &p.JoinedAt,
			&u.ID, &u.Username, &u.TelegramChatID, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		p.User = &u
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *EventRepository) ListPublic(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
			  WHERE is_private = false
			  ORDER BY event_date ASC, start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// AddParticipant inserts a joiner under the event row lock so that the
// capacity check and the insert observe the same roster.
func (r *EventRepository) AddParticipant(ctx context.Context, p *domain.EventParticipant) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT max_participants FROM events WHERE id = $1 FOR UPDATE`
	var maxParticipants int
	if err = tx.QueryRowContext(ctx, lockQuery, p.EventID).Scan(&maxParticipants); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	dupQuery := `SELECT EXISTS(SELECT 1 FROM event_participants WHERE event_id = $1 AND user_id = $2)`
	var exists bool
	if err = tx.QueryRowContext(ctx, dupQuery, p.EventID, p.UserID).Scan(&exists); err != nil {
		return fmt.Errorf("check participant: %w", err)
	}
	if exists {
		return domain.ErrAlreadyJoined
	}

	countQuery := `SELECT COUNT(*) FROM event_participants
				   WHERE event_id = $1 AND status = ANY($2)`
	var active int
	if err = tx.QueryRowContext(
		ctx, countQuery, p.EventID,
		pq.Array(domain.ActiveParticipantStatuses),
	).Scan(&active); err != nil {
		return fmt.Errorf("count participants: %w", err)
	}
	if active >= maxParticipants {
		return domain.ErrEventFull
	}

	if err = insertParticipant(ctx, tx, p); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *EventRepository) GetParticipant(ctx context.Context, eventID, userID string) (*domain.EventParticipant, error) {
	query := `SELECT p.id, p.event_id, p.user_id, p.status, p.joined_at,
					 u.id, u.username, u.telegram_chat_id, u.created_at
			  FROM event_participants p
			  JOIN users u ON u.id = p.user_id
			  WHERE p.event_id = $1 AND p.user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get participant: %w", err)
	}

	var p domain.EventParticipant
	var u domain.User
	if err = row.Scan(
		&p.ID, &p.EventID, &p.UserID, &p.Status, &p.JoinedAt,
		&u.ID, &u.Username, &u.TelegramChatID, &u.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotParticipant
		}
		return nil, fmt.Errorf("scan participant: %w", err)
	}
	p.User = &u

	return &p, nil
}

func (r *EventRepository) RemoveParticipant(ctx context.Context, eventID, userID string) error {
	query := `DELETE FROM event_participants WHERE event_id = $1 AND user_id = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("participant rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotParticipant
	}

	return nil
}
