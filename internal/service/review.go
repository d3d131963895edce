package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmtkv/CourtBooker/internal/domain"
	"github.com/dmtkv/CourtBooker/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ReviewService struct {
	reviews      ports.ReviewRepo
	reservations ports.ReservationRepo
	ratings      ports.RatingCollaborator
	logger       logger.Logger
}

func NewReviewService(
	reviews ports.ReviewRepo,
	reservations ports.ReservationRepo,
	ratings ports.RatingCollaborator,
	logger logger.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:      reviews,
		reservations: reservations,
		ratings:      ratings,
		logger:       logger,
	}
}

// Create stores a review for a completed reservation of the author. The
// stadium rating recomputation runs in the background and never fails the
// review itself.
func (s *ReviewService) Create(ctx context.Context, in domain.CreateReviewInput) (*domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	comment := strings.TrimSpace(in.Comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", domain.ErrValidation)
	}

	res, err := s.reservations.GetByID(ctx, in.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if res.UserID != in.UserID {
		return nil, fmt.Errorf("%w: reservation belongs to another user", domain.ErrValidation)
	}
	if res.StadiumID != in.StadiumID {
		return nil, fmt.Errorf("%w: reservation belongs to another stadium", domain.ErrValidation)
	}
	if res.Status != domain.BookingStatusCompleted {
		return nil, fmt.Errorf("%w: only completed reservations can be reviewed", domain.ErrValidation)
	}

	review := &domain.Review{
		ID:            uuid.New().String(),
		ReservationID: in.ReservationID,
		StadiumID:     in.StadiumID,
		UserID:        in.UserID,
		Rating:        in.Rating,
		Comment:       comment,
		CreatedAt:     time.Now().UTC(),
	}
	if err = s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.Info("review created",
		logger.String("review_id", review.ID),
		logger.String("stadium_id", in.StadiumID),
		logger.Int("rating", in.Rating),
	)

	go func(ctx context.Context, stadiumID string) {
		if err := s.ratings.RecalculateStadiumRating(ctx, stadiumID); err != nil {
			s.logger.Error("failed to recalculate stadium rating",
				logger.String("stadium_id", stadiumID),
				logger.Any("error", err),
			)
		}
	}(context.WithoutCancel(ctx), in.StadiumID)

	return review, nil
}
