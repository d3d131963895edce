package ports

import (
	"context"

	"github.com/dmtkv/CourtBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyReservationCreated(ctx context.Context, user *domain.User, r *domain.Reservation)
	NotifyCoachBookingConfirmed(ctx context.Context, user *domain.User, b *domain.CoachBooking)
	NotifyEventJoined(ctx context.Context, user *domain.User, e *domain.Event)
}
