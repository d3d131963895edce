package service

import (
	"context"
	"testing"
	"time"

	"github.com/dmtkv/CourtBooker/internal/domain"
	"github.com/dmtkv/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCoachBookingService(t *testing.T) (*mocks.MockCoachBookingRepo, *mocks.MockCoachProfileLookup, *mocks.MockUserLookup, *mocks.MockBookingNotifier, *CoachBookingService) {
	t.Helper()
	bookings := mocks.NewMockCoachBookingRepo(t)
	coaches := mocks.NewMockCoachProfileLookup(t)
	users := mocks.NewMockUserLookup(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewCoachBookingService(bookings, coaches, users, notifier, newTestLogger(t))
	return bookings, coaches, users, notifier, svc
}

func TestCoachBookingService_Create(t *testing.T) {
	bookings, coaches, users, _, svc := newCoachBookingService(t)

	profile := &domain.CoachProfile{ID: "cp1", UserID: "coach1", HourlyRate: 100000, IsAvailable: true}
	coaches.EXPECT().GetByID(mock.Anything, "cp1").Return(profile, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	var createdID string
	bookings.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, b *domain.CoachBooking) {
			createdID = b.ID
			assert.Equal(t, domain.BookingStatusPending, b.Status)
			assert.False(t, b.IsEvent)
		}).
		Return(nil)
	bookings.EXPECT().GetByID(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, id string) (*domain.CoachBooking, error) {
			return &domain.CoachBooking{ID: id, Status: domain.BookingStatusPending}, nil
		})

	b, err := svc.Create(context.Background(), domain.CreateCoachBookingInput{
		ClientID:       "u1",
		CoachProfileID: "cp1",
		Sport:          "tennis",
		SessionType:    "individual",
		Date:           "2030-06-01",
		StartTime:      "10:00",
		EndTime:        "11:00",
		TotalPrice:     100000,
	})

	require.NoError(t, err)
	assert.Equal(t, createdID, b.ID)
}

func TestCoachBookingService_Create_Unavailable(t *testing.T) {
	_, coaches, _, _, svc := newCoachBookingService(t)

	profile := &domain.CoachProfile{ID: "cp1", IsAvailable: false}
	coaches.EXPECT().GetByID(mock.Anything, "cp1").Return(profile, nil)

	_, err := svc.Create(context.Background(), domain.CreateCoachBookingInput{
		ClientID:       "u1",
		CoachProfileID: "cp1",
		Date:           "2030-06-01",
		StartTime:      "10:00",
		EndTime:        "11:00",
	})

	assert.ErrorIs(t, err, domain.ErrCoachProfileNotFound)
}

func TestCoachBookingService_Create_Conflict(t *testing.T) {
	bookings, coaches, users, _, svc := newCoachBookingService(t)

	coaches.EXPECT().GetByID(mock.Anything, "cp1").
		Return(&domain.CoachProfile{ID: "cp1", IsAvailable: true}, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrBookingConflict)

	_, err := svc.Create(context.Background(), domain.CreateCoachBookingInput{
		ClientID:       "u1",
		CoachProfileID: "cp1",
		Date:           "2030-06-01",
		StartTime:      "10:00",
		EndTime:        "11:00",
	})

	assert.ErrorIs(t, err, domain.ErrBookingConflict)
}

func TestCoachBookingService_Confirm(t *testing.T) {
	bookings, _, users, notifier, svc := newCoachBookingService(t)

	pending := &domain.CoachBooking{ID: "b1", ClientID: "u1", Status: domain.BookingStatusPending}
	confirmed := &domain.CoachBooking{ID: "b1", ClientID: "u1", Status: domain.BookingStatusConfirmed}
	client := &domain.User{ID: "u1", Username: "alice"}

	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(pending, nil).Once()
	bookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed).Return(nil)
	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(confirmed, nil).Once()
	users.EXPECT().GetByID(mock.Anything, "u1").Return(client, nil)
	notifier.EXPECT().NotifyCoachBookingConfirmed(mock.Anything, client, confirmed).Return()

	b, err := svc.Confirm(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCoachBookingService_Confirm_EventOwned(t *testing.T) {
	bookings, _, _, _, svc := newCoachBookingService(t)

	bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.CoachBooking{ID: "b1", IsEvent: true, Status: domain.BookingStatusConfirmed}, nil)

	_, err := svc.Confirm(context.Background(), "b1")
	assert.ErrorIs(t, err, domain.ErrEventBooking)
}

func TestCoachBookingService_Cancel_Idempotent(t *testing.T) {
	bookings, _, _, _, svc := newCoachBookingService(t)

	cancelled := &domain.CoachBooking{ID: "b1", Status: domain.BookingStatusCancelled}
	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(cancelled, nil)

	b, err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)
}

func TestCoachBookingService_Cancel_Completed(t *testing.T) {
	bookings, _, _, _, svc := newCoachBookingService(t)

	bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.CoachBooking{ID: "b1", Status: domain.BookingStatusCompleted}, nil)

	_, err := svc.Cancel(context.Background(), "b1")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCoachBookingService_ListByCoach_ProfileMissing(t *testing.T) {
	_, coaches, _, _, svc := newCoachBookingService(t)

	coaches.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCoachProfileNotFound)

	_, err := svc.ListByCoach(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCoachProfileNotFound)
}

func TestCoachBookingService_CompleteElapsed(t *testing.T) {
	bookings, _, _, _, svc := newCoachBookingService(t)

	bookings.EXPECT().CompleteElapsed(mock.Anything, domain.Today()).
		Return([]*domain.CoachBooking{{ID: "b1", Status: domain.BookingStatusCompleted}}, nil)

	n, err := svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
