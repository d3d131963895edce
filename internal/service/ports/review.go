package ports

import (
	"context"

	"github.com/dmtkv/CourtBooker/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, rv *domain.Review) error
}

// RatingCollaborator recomputes a stadium's aggregate rating after a review
// lands. Calls are best-effort: a failure is logged, never propagated into
// the review transaction.
type RatingCollaborator interface {
	RecalculateStadiumRating(ctx context.Context, stadiumID string) error
}
