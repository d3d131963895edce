package repository

import (
	"context"
	"fmt"

	"github.com/dmtkv/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{db: db, strategy: defaultStrategy()}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (id, reservation_id, stadium_id, user_id, rating, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rv.ID, rv.ReservationID, rv.StadiumID, rv.UserID, rv.Rating, rv.Comment, rv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrReviewExists
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

// RatingRepository implements the rating collaborator against the same
// database: the stadium's rating becomes the average of its review ratings.
type RatingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRatingRepo(db *dbpg.DB) *RatingRepository {
	return &RatingRepository{db: db, strategy: defaultStrategy()}
}

func (r *RatingRepository) RecalculateStadiumRating(ctx context.Context, stadiumID string) error {
	query := `UPDATE stadiums
			  SET rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE stadium_id = $1), 0)
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, stadiumID)
	if err != nil {
		return fmt.Errorf("recalculate rating: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("stadium rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrStadiumNotFound
	}

	return nil
}
