package ports

import (
	"context"

	"github.com/dmtkv/CourtBooker/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByStadiumDate(ctx context.Context, stadiumID, date string) ([]*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Delete(ctx context.Context, id string) error
	CompleteElapsed(ctx context.Context, today string) ([]*domain.Reservation, error)
}
