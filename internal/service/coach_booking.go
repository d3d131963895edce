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

type CoachBookingService struct {
	bookings ports.CoachBookingRepo
	coaches  ports.CoachProfileLookup
	users    ports.UserLookup
	notifier ports.BookingNotifier
	logger   logger.Logger
}

func NewCoachBookingService(
	bookings ports.CoachBookingRepo,
	coaches ports.CoachProfileLookup,
	users ports.UserLookup,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *CoachBookingService {
	return &CoachBookingService{
		bookings: bookings,
		coaches:  coaches,
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *CoachBookingService) Create(ctx context.Context, in domain.CreateCoachBookingInput) (*domain.CoachBooking, error) {
	if err := domain.ValidateSlot(in.Date, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	profile, err := s.coaches.GetByID(ctx, in.CoachProfileID)
	if err != nil {
		return nil, fmt.Errorf("check coach profile: %w", err)
	}
	if !profile.IsAvailable {
		return nil, domain.ErrCoachProfileNotFound
	}

	if _, err = s.users.GetByID(ctx, in.ClientID); err != nil {
		return nil, fmt.Errorf("check client: %w", err)
	}

	status := in.Status
	if status == "" {
		status = domain.BookingStatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, in.Status)
	}

	booking := &domain.CoachBooking{
		ID:             uuid.New().String(),
		ClientID:       in.ClientID,
		CoachProfileID: in.CoachProfileID,
		Sport:          in.Sport,
		SessionType:    in.SessionType,
		Date:           in.Date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		TotalPrice:     in.TotalPrice,
		Status:         status,
		Notes:          in.Notes,
		Location:       in.Location,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
	if err = s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create coach booking: %w", err)
	}

	s.logger.Info("coach booking created",
		logger.String("booking_id", booking.ID),
		logger.String("coach_profile_id", in.CoachProfileID),
		logger.String("client_id", in.ClientID),
		logger.String("date", in.Date),
	)

	return s.bookings.GetByID(ctx, booking.ID)
}

func (s *CoachBookingService) Get(ctx context.Context, id string) (*domain.CoachBooking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *CoachBookingService) ListByCoach(ctx context.Context, coachProfileID string) ([]*domain.CoachBooking, error) {
	if _, err := s.coaches.GetByID(ctx, coachProfileID); err != nil {
		return nil, fmt.Errorf("check coach profile: %w", err)
	}
	return s.bookings.ListByCoach(ctx, coachProfileID)
}

func (s *CoachBookingService) Confirm(ctx context.Context, id string) (*domain.CoachBooking, error) {
	booking, err := s.transition(ctx, id, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}

	client, err := s.users.GetByID(ctx, booking.ClientID)
	if err != nil {
		s.logger.Error("failed to get client for notification",
			logger.String("booking_id", id),
			logger.Any("error", err),
		)
		return booking, nil
	}
	go s.notifier.NotifyCoachBookingConfirmed(context.WithoutCancel(ctx), client, booking)

	return booking, nil
}

func (s *CoachBookingService) Cancel(ctx context.Context, id string) (*domain.CoachBooking, error) {
	return s.transition(ctx, id, domain.BookingStatusCancelled)
}

// transition moves a booking to status. Event-owned rows are rejected, they
// change only through the event flow. Repeating the current status is a no-op.
func (s *CoachBookingService) transition(ctx context.Context, id string, status domain.BookingStatus) (*domain.CoachBooking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get coach booking: %w", err)
	}

	if booking.IsEvent {
		return nil, domain.ErrEventBooking
	}
	if booking.Status == status {
		return booking, nil
	}
	if booking.Status.Terminal() {
		return nil, fmt.Errorf("%w: booking is already %s", domain.ErrValidation, booking.Status)
	}

	if err = s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update coach booking status: %w", err)
	}

	s.logger.Info("coach booking status updated",
		logger.String("booking_id", id),
		logger.String("status", string(status)),
	)

	return s.bookings.GetByID(ctx, id)
}

func (s *CoachBookingService) CompleteElapsed(ctx context.Context) (int, error) {
	completed, err := s.bookings.CompleteElapsed(ctx, domain.Today())
	if err != nil {
		return 0, fmt.Errorf("complete elapsed coach bookings: %w", err)
	}

	for _, b := range completed {
		s.logger.Info("coach booking completed",
			logger.String("booking_id", b.ID),
			logger.String("date", b.Date),
		)
	}

	return len(completed), nil
}
