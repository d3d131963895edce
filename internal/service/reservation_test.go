package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmtkv/CourtBooker/internal/domain"
	"github.com/dmtkv/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newReservationService(t *testing.T) (*mocks.MockReservationRepo, *mocks.MockStadiumLookup, *mocks.MockUserLookup, *mocks.MockBookingNotifier, *ReservationService) {
	t.Helper()
	reservations := mocks.NewMockReservationRepo(t)
	stadiums := mocks.NewMockStadiumLookup(t)
	users := mocks.NewMockUserLookup(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewReservationService(reservations, stadiums, users, notifier, newTestLogger(t))
	return reservations, stadiums, users, notifier, svc
}

func TestReservationService_Create(t *testing.T) {
	reservations, stadiums, users, notifier, svc := newReservationService(t)

	stadium := &domain.Stadium{ID: "st1", Name: "Arena"}
	user := &domain.User{ID: "u1", Username: "alice"}

	stadiums.EXPECT().GetByID(mock.Anything, "st1").Return(stadium, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	var createdID string
	reservations.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, r *domain.Reservation) {
			createdID = r.ID
			assert.Equal(t, domain.BookingStatusPending, r.Status)
			assert.Equal(t, "2030-06-01", r.Date)
		}).
		Return(nil)
	reservations.EXPECT().GetByID(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, id string) (*domain.Reservation, error) {
			return &domain.Reservation{ID: id, UserID: "u1", StadiumID: "st1", Status: domain.BookingStatusPending}, nil
		})
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, user, mock.Anything).Return()

	res, err := svc.Create(context.Background(), domain.CreateReservationInput{
		UserID:      "u1",
		StadiumID:   "st1",
		CourtNumber: 2,
		Sport:       "football",
		Date:        "2030-06-01",
		StartTime:   "18:00",
		EndTime:     "19:30",
		TotalPrice:  150000,
	})

	require.NoError(t, err)
	assert.Equal(t, createdID, res.ID)
	assert.Equal(t, domain.BookingStatusPending, res.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_InvalidSlot(t *testing.T) {
	_, _, _, _, svc := newReservationService(t)

	cases := []struct {
		name  string
		date  string
		start string
		end   string
	}{
		{"bad date", "01-06-2030", "18:00", "19:00"},
		{"non-canonical time", "2030-06-01", "9:00", "10:00"},
		{"start after end", "2030-06-01", "19:00", "18:00"},
		{"zero length", "2030-06-01", "18:00", "18:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), domain.CreateReservationInput{
				UserID:    "u1",
				StadiumID: "st1",
				Date:      tc.date,
				StartTime: tc.start,
				EndTime:   tc.end,
			})
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestReservationService_Create_StadiumMissing(t *testing.T) {
	_, stadiums, _, _, svc := newReservationService(t)

	stadiums.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrStadiumNotFound)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		UserID:    "u1",
		StadiumID: "missing",
		Date:      "2030-06-01",
		StartTime: "18:00",
		EndTime:   "19:00",
	})

	assert.ErrorIs(t, err, domain.ErrStadiumNotFound)
}

func TestReservationService_Create_Conflict(t *testing.T) {
	reservations, stadiums, users, _, svc := newReservationService(t)

	stadiums.EXPECT().GetByID(mock.Anything, "st1").Return(&domain.Stadium{ID: "st1"}, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrBookingConflict)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		UserID:    "u1",
		StadiumID: "st1",
		Date:      "2030-06-01",
		StartTime: "18:00",
		EndTime:   "19:00",
	})

	assert.ErrorIs(t, err, domain.ErrBookingConflict)
}

func TestReservationService_UpdateStatus(t *testing.T) {
	reservations, _, _, _, svc := newReservationService(t)

	pending := &domain.Reservation{ID: "r1", Status: domain.BookingStatusPending}
	confirmed := &domain.Reservation{ID: "r1", Status: domain.BookingStatusConfirmed}

	reservations.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil).Once()
	reservations.EXPECT().UpdateStatus(mock.Anything, "r1", domain.BookingStatusConfirmed).Return(nil)
	reservations.EXPECT().GetByID(mock.Anything, "r1").Return(confirmed, nil).Once()

	res, err := svc.UpdateStatus(context.Background(), "r1", domain.BookingStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, res.Status)
}

func TestReservationService_UpdateStatus_SameStatusNoop(t *testing.T) {
	reservations, _, _, _, svc := newReservationService(t)

	confirmed := &domain.Reservation{ID: "r1", Status: domain.BookingStatusConfirmed}
	reservations.EXPECT().GetByID(mock.Anything, "r1").Return(confirmed, nil)

	res, err := svc.UpdateStatus(context.Background(), "r1", domain.BookingStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, confirmed, res)
}

func TestReservationService_UpdateStatus_Terminal(t *testing.T) {
	reservations, _, _, _, svc := newReservationService(t)

	for _, status := range []domain.BookingStatus{domain.BookingStatusCompleted, domain.BookingStatusCancelled} {
		reservations.EXPECT().GetByID(mock.Anything, "r1").
			Return(&domain.Reservation{ID: "r1", Status: status}, nil).Once()

		_, err := svc.UpdateStatus(context.Background(), "r1", domain.BookingStatusConfirmed)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestReservationService_UpdateStatus_UnknownStatus(t *testing.T) {
	_, _, _, _, svc := newReservationService(t)

	_, err := svc.UpdateStatus(context.Background(), "r1", "blocked")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_StadiumReservations_BadDate(t *testing.T) {
	_, _, _, _, svc := newReservationService(t)

	_, err := svc.StadiumReservations(context.Background(), "st1", "tomorrow")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Remove_NotFound(t *testing.T) {
	reservations, _, _, _, svc := newReservationService(t)

	reservations.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrReservationNotFound)

	err := svc.Remove(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_CompleteElapsed(t *testing.T) {
	reservations, _, _, _, svc := newReservationService(t)

	completed := []*domain.Reservation{
		{ID: "r1", Status: domain.BookingStatusCompleted},
		{ID: "r2", Status: domain.BookingStatusCompleted},
	}
	reservations.EXPECT().CompleteElapsed(mock.Anything, domain.Today()).Return(completed, nil)

	n, err := svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestReservationService_CompleteElapsed_Error(t *testing.T) {
	reservations, _, _, _, svc := newReservationService(t)

	dbErr := errors.New("db down")
	reservations.EXPECT().CompleteElapsed(mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := svc.CompleteElapsed(context.Background())
	assert.ErrorIs(t, err, dbErr)
}
