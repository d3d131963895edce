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

type ReservationService struct {
	reservations ports.ReservationRepo
	stadiums     ports.StadiumLookup
	users        ports.UserLookup
	notifier     ports.BookingNotifier
	logger       logger.Logger
}

func NewReservationService(
	reservations ports.ReservationRepo,
	stadiums ports.StadiumLookup,
	users ports.UserLookup,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		stadiums:     stadiums,
		users:        users,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error) {
	if err := domain.ValidateSlot(in.Date, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	if _, err := s.stadiums.GetByID(ctx, in.StadiumID); err != nil {
		return nil, fmt.Errorf("check stadium: %w", err)
	}

	user, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	status := in.Status
	if status == "" {
		status = domain.BookingStatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, in.Status)
	}

	res := &domain.Reservation{
		ID:          uuid.New().String(),
		UserID:      in.UserID,
		StadiumID:   in.StadiumID,
		CourtNumber: in.CourtNumber,
		Sport:       in.Sport,
		CourtType:   in.CourtType,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		TotalPrice:  in.TotalPrice,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err = s.reservations.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("stadium_id", in.StadiumID),
		logger.String("user_id", in.UserID),
		logger.String("date", in.Date),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), user, res)

	created, err := s.reservations.GetByID(ctx, res.ID)
	if err != nil {
		return nil, fmt.Errorf("reload reservation: %w", err)
	}

	return created, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// StadiumReservations returns all reservations of a stadium on a date,
// cancelled ones included, ordered by start time.
func (s *ReservationService) StadiumReservations(ctx context.Context, stadiumID, date string) ([]*domain.Reservation, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, date)
	}
	return s.reservations.ListByStadiumDate(ctx, stadiumID, date)
}

func (s *ReservationService) UserReservations(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return s.reservations.ListByUser(ctx, userID)
}

// UpdateStatus transitions a reservation. Repeating the current status is a
// no-op; any other transition out of a terminal status is rejected.
func (s *ReservationService) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Reservation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if res.Status == status {
		return res, nil
	}
	if res.Status.Terminal() {
		return nil, fmt.Errorf("%w: reservation is already %s", domain.ErrValidation, res.Status)
	}

	if err = s.reservations.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}

	s.logger.Info("reservation status updated",
		logger.String("reservation_id", id),
		logger.String("status", string(status)),
	)

	return s.reservations.GetByID(ctx, id)
}

func (s *ReservationService) Remove(ctx context.Context, id string) error {
	if err := s.reservations.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	s.logger.Info("reservation removed", logger.String("reservation_id", id))
	return nil
}

// CompleteElapsed finishes confirmed reservations whose date has passed.
// Called by the scheduler.
func (s *ReservationService) CompleteElapsed(ctx context.Context) (int, error) {
	completed, err := s.reservations.CompleteElapsed(ctx, domain.Today())
	if err != nil {
		return 0, fmt.Errorf("complete elapsed reservations: %w", err)
	}

	for _, res := range completed {
		s.logger.Info("reservation completed",
			logger.String("reservation_id", res.ID),
			logger.String("date", res.Date),
		)
	}

	return len(completed), nil
}
