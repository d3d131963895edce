package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmtkv/CourtBooker/internal/domain"
	"github.com/dmtkv/CourtBooker/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	events   ports.EventRepo
	stadiums ports.StadiumLookup
	users    ports.UserLookup
	coaches  ports.CoachProfileLookup
	sports   ports.SportLookup
	notifier ports.BookingNotifier
	logger   logger.Logger
}

func NewEventService(
	events ports.EventRepo,
	stadiums ports.StadiumLookup,
	users ports.UserLookup,
	coaches ports.CoachProfileLookup,
	sports ports.SportLookup,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *EventService {
	return &EventService{
		events:   events,
		stadiums: stadiums,
		users:    users,
		coaches:  coaches,
		sports:   sports,
		notifier: notifier,
		logger:   logger,
	}
}

// Create builds the event composite and hands it to the repository as one
// transaction: the coach booking pays for the coach's time, the event wraps
// it, and the creator joins as a confirmed participant. If the coach's slot is
// taken nothing is persisted.
func (s *EventService) Create(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	if err := domain.ValidateSlot(in.Date, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}
	if in.Date < domain.Today() {
		return nil, fmt.Errorf("%w: event date is in the past", domain.ErrValidation)
	}
	if in.MaxParticipants < 2 {
		return nil, fmt.Errorf("%w: event needs at least 2 participants", domain.ErrValidation)
	}
	if len(in.SportIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one sport is required", domain.ErrValidation)
	}
	seen := make(map[string]struct{}, len(in.SportIDs))
	for _, id := range in.SportIDs {
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: duplicate sport id %q", domain.ErrValidation, id)
		}
		seen[id] = struct{}{}
	}

	if _, err := s.stadiums.GetByID(ctx, in.StadiumID); err != nil {
		return nil, fmt.Errorf("check stadium: %w", err)
	}
	if _, err := s.users.GetByID(ctx, in.CreatorID); err != nil {
		return nil, fmt.Errorf("check creator: %w", err)
	}

	sports, err := s.sports.ListByIDs(ctx, in.SportIDs)
	if err != nil {
		return nil, fmt.Errorf("check sports: %w", err)
	}
	if len(sports) != len(in.SportIDs) {
		return nil, domain.ErrSportNotFound
	}

	profile, err := s.coaches.GetByUserID(ctx, in.CoachID)
	if err != nil {
		return nil, fmt.Errorf("check coach: %w", err)
	}
	if !profile.IsAvailable {
		return nil, domain.ErrCoachProfileNotFound
	}

	hours, err := domain.SlotDurationHours(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.CoachBooking{
		ID:             uuid.New().String(),
		ClientID:       in.CreatorID,
		CoachProfileID: profile.ID,
		Sport:          sports[0].Name,
		SessionType:    "event",
		Date:           in.Date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		TotalPrice:     profile.HourlyRate * hours,
		Status:         domain.BookingStatusConfirmed,
		Notes:          in.AdditionalNotes,
		IsEvent:        true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	event := &domain.Event{
		ID:              uuid.New().String(),
		Title:           in.Title,
		Description:     in.Description,
		AdditionalNotes: in.AdditionalNotes,
		EventDate:       in.Date,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		MaxParticipants: in.MaxParticipants,
		IsPrivate:       in.IsPrivate,
		IsSharedCost:    in.IsSharedCost,
		StadiumID:       in.StadiumID,
		CoachProfileID:  profile.ID,
		CoachBookingID:  booking.ID,
		CreatorID:       in.CreatorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	creator := &domain.EventParticipant{
		ID:       uuid.New().String(),
		EventID:  event.ID,
		UserID:   in.CreatorID,
		Status:   domain.ParticipantStatusConfirmed,
		JoinedAt: now,
	}

	if err = s.events.Create(ctx, event, booking, in.SportIDs, creator); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("coach_booking_id", booking.ID),
		logger.String("creator_id", in.CreatorID),
		logger.String("date", in.Date),
	)

	return s.events.GetByID(ctx, event.ID)
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *EventService) ListPublic(ctx context.Context) ([]*domain.Event, error) {
	return s.events.ListPublic(ctx)
}

func (s *EventService) Join(ctx context.Context, eventID, userID string) (*domain.EventParticipant, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.EventDate < domain.Today() {
		return nil, domain.ErrPastEvent
	}
	if event.IsPrivate {
		return nil, domain.ErrPrivateEvent
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	participant := &domain.EventParticipant{
		ID:       uuid.New().String(),
		EventID:  eventID,
		UserID:   userID,
		Status:   domain.ParticipantStatusPending,
		JoinedAt: time.Now().UTC(),
	}
	if err = s.events.AddParticipant(ctx, participant); err != nil {
		return nil, fmt.Errorf("join event: %w", err)
	}

	s.logger.Info("participant joined",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyEventJoined(context.WithoutCancel(ctx), user, event)

	return s.events.GetParticipant(ctx, eventID, userID)
}

func (s *EventService) Leave(ctx context.Context, eventID, userID string) error {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if event.CreatorID == userID {
		return domain.ErrCreatorCannotLeave
	}

	if _, err = s.events.GetParticipant(ctx, eventID, userID); err != nil {
		return fmt.Errorf("get participant: %w", err)
	}

	if err = s.events.RemoveParticipant(ctx, eventID, userID); err != nil {
		return fmt.Errorf("leave event: %w", err)
	}

	s.logger.Info("participant left",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	return nil
}
