package ports

import (
	"context"

	"github.com/dmtkv/CourtBooker/internal/domain"
)

type CoachBookingRepo interface {
	Create(ctx context.Context, b *domain.CoachBooking) error
	GetByID(ctx context.Context, id string) (*domain.CoachBooking, error)
	ListByCoach(ctx context.Context, coachProfileID string) ([]*domain.CoachBooking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	CompleteElapsed(ctx context.Context, today string) ([]*domain.CoachBooking, error)
}
