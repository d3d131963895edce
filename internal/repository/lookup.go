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

// Read-only repositories backing the lookup ports. Users, stadiums, coach
// profiles and sports are owned by other parts of the platform; the booking
// core only resolves them.

type StadiumRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStadiumRepo(db *dbpg.DB) *StadiumRepository {
	return &StadiumRepository{db: db, strategy: defaultStrategy()}
}

func (r *StadiumRepository) GetByID(ctx context.Context, id string) (*domain.Stadium, error) {
	query := `SELECT id, name, address, owner_id, rating, created_at
			  FROM stadiums
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get stadium: %w", err)
	}

	var s domain.Stadium
	if err = row.Scan(&s.ID, &s.Name, &s.Address, &s.OwnerID, &s.Rating, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStadiumNotFound
		}
		return nil, fmt.Errorf("scan stadium: %w", err)
	}

	return &s, nil
}

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{db: db, strategy: defaultStrategy()}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, username, telegram_chat_id, created_at
			  FROM users
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Username, &u.TelegramChatID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

type CoachProfileRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCoachProfileRepo(db *dbpg.DB) *CoachProfileRepository {
	return &CoachProfileRepository{db: db, strategy: defaultStrategy()}
}

func (r *CoachProfileRepository) GetByID(ctx context.Context, id string) (*domain.CoachProfile, error) {
	return r.get(ctx, `id`, id)
}

func (r *CoachProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.CoachProfile, error) {
	return r.get(ctx, `user_id`, userID)
}

func (r *CoachProfileRepository) get(ctx context.Context, column, value string) (*domain.CoachProfile, error) {
	query := `SELECT id, user_id, hourly_rate, is_available, created_at
			  FROM coach_profiles
			  WHERE ` + column + ` = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, value)
	if err != nil {
		return nil, fmt.Errorf("get coach profile: %w", err)
	}

	var p domain.CoachProfile
	if err = row.Scan(&p.ID, &p.UserID, &p.HourlyRate, &p.IsAvailable, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCoachProfileNotFound
		}
		return nil, fmt.Errorf("scan coach profile: %w", err)
	}

	return &p, nil
}

type SportRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSportRepo(db *dbpg.DB) *SportRepository {
	return &SportRepository{db: db, strategy: defaultStrategy()}
}

func (r *SportRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Sport, error) {
	query := `SELECT id, name FROM sports WHERE id = ANY($1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	defer rows.Close()

	var res []*domain.Sport
	for rows.Next() {
		var s domain.Sport
		if err = rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scan sport: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
