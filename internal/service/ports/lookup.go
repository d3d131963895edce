package ports

import (
	"context"

	"github.com/dmtkv/CourtBooker/internal/domain"
)

// Lookup ports cover the collaborators the booking core depends on but does
// not own: identity, venues, coach profiles and the sport catalogue.

type StadiumLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Stadium, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type CoachProfileLookup interface {
	GetByID(ctx context.Context, id string) (*domain.CoachProfile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.CoachProfile, error)
}

type SportLookup interface {
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Sport, error)
}
