package ports

import (
	"context"

	"github.com/dmtkv/CourtBooker/internal/domain"
)

type EventRepo interface {
	// Create persists the event composite (coach booking, event, sport links,
	// creator participant) in a single transaction.
	Create(ctx context.Context, e *domain.Event, booking *domain.CoachBooking, sportIDs []string, creator *domain.EventParticipant) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListPublic(ctx context.Context) ([]*domain.Event, error)
	AddParticipant(ctx context.Context, p *domain.EventParticipant) error
	GetParticipant(ctx context.Context, eventID, userID string) (*domain.EventParticipant, error)
	RemoveParticipant(ctx context.Context, eventID, userID string) error
}
