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

type eventServiceMocks struct {
	events   *mocks.MockEventRepo
	stadiums *mocks.MockStadiumLookup
	users    *mocks.MockUserLookup
	coaches  *mocks.MockCoachProfileLookup
	sports   *mocks.MockSportLookup
	notifier *mocks.MockBookingNotifier
}

func newEventService(t *testing.T) (eventServiceMocks, *EventService) {
	t.Helper()
	m := eventServiceMocks{
		events:   mocks.NewMockEventRepo(t),
		stadiums: mocks.NewMockStadiumLookup(t),
		users:    mocks.NewMockUserLookup(t),
		coaches:  mocks.NewMockCoachProfileLookup(t),
		sports:   mocks.NewMockSportLookup(t),
		notifier: mocks.NewMockBookingNotifier(t),
	}
	svc := NewEventService(m.events, m.stadiums, m.users, m.coaches, m.sports, m.notifier, newTestLogger(t))
	return m, svc
}

func validEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		CreatorID:       "u1",
		Title:           "Friday tennis",
		Date:            "2030-06-01",
		StartTime:       "18:00",
		EndTime:         "19:30",
		MaxParticipants: 4,
		StadiumID:       "st1",
		CoachID:         "coach1",
		SportIDs:        []string{"sp1"},
	}
}

func TestEventService_Create(t *testing.T) {
	m, svc := newEventService(t)

	m.stadiums.EXPECT().GetByID(mock.Anything, "st1").Return(&domain.Stadium{ID: "st1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.sports.EXPECT().ListByIDs(mock.Anything, []string{"sp1"}).
		Return([]*domain.Sport{{ID: "sp1", Name: "tennis"}}, nil)
	m.coaches.EXPECT().GetByUserID(mock.Anything, "coach1").
		Return(&domain.CoachProfile{ID: "cp1", UserID: "coach1", HourlyRate: 100000, IsAvailable: true}, nil)

	var eventID string
	m.events.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, []string{"sp1"}, mock.Anything).
		Run(func(ctx context.Context, e *domain.Event, booking *domain.CoachBooking, sportIDs []string, creator *domain.EventParticipant) {
			eventID = e.ID

			// 1.5h at 100000/h
			assert.Equal(t, 150000.0, booking.TotalPrice)
			assert.True(t, booking.IsEvent)
			assert.Equal(t, "event", booking.SessionType)
			assert.Equal(t, "tennis", booking.Sport)
			assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

			assert.Equal(t, booking.ID, e.CoachBookingID)
			assert.Equal(t, "cp1", e.CoachProfileID)

			assert.Equal(t, e.ID, creator.EventID)
			assert.Equal(t, "u1", creator.UserID)
			assert.Equal(t, domain.ParticipantStatusConfirmed, creator.Status)
		}).
		Return(nil)
	m.events.EXPECT().GetByID(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, id string) (*domain.Event, error) {
			return &domain.Event{ID: id, Title: "Friday tennis"}, nil
		})

	event, err := svc.Create(context.Background(), validEventInput())

	require.NoError(t, err)
	assert.Equal(t, eventID, event.ID)
}

func TestEventService_Create_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{"past date", func(in *domain.CreateEventInput) { in.Date = "2020-01-01" }},
		{"too few participants", func(in *domain.CreateEventInput) { in.MaxParticipants = 1 }},
		{"no sports", func(in *domain.CreateEventInput) { in.SportIDs = nil }},
		{"duplicate sports", func(in *domain.CreateEventInput) { in.SportIDs = []string{"sp1", "sp1"} }},
		{"bad time", func(in *domain.CreateEventInput) { in.StartTime = "25:00" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, svc := newEventService(t)
			in := validEventInput()
			tc.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Create_SportMissing(t *testing.T) {
	m, svc := newEventService(t)

	m.stadiums.EXPECT().GetByID(mock.Anything, "st1").Return(&domain.Stadium{ID: "st1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.sports.EXPECT().ListByIDs(mock.Anything, []string{"sp1"}).Return(nil, nil)

	_, err := svc.Create(context.Background(), validEventInput())
	assert.ErrorIs(t, err, domain.ErrSportNotFound)
}

func TestEventService_Create_CoachUnavailable(t *testing.T) {
	m, svc := newEventService(t)

	m.stadiums.EXPECT().GetByID(mock.Anything, "st1").Return(&domain.Stadium{ID: "st1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.sports.EXPECT().ListByIDs(mock.Anything, []string{"sp1"}).
		Return([]*domain.Sport{{ID: "sp1", Name: "tennis"}}, nil)
	m.coaches.EXPECT().GetByUserID(mock.Anything, "coach1").
		Return(&domain.CoachProfile{ID: "cp1", IsAvailable: false}, nil)

	_, err := svc.Create(context.Background(), validEventInput())
	assert.ErrorIs(t, err, domain.ErrCoachProfileNotFound)
}

func TestEventService_Create_CoachSlotTaken(t *testing.T) {
	m, svc := newEventService(t)

	m.stadiums.EXPECT().GetByID(mock.Anything, "st1").Return(&domain.Stadium{ID: "st1"}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.sports.EXPECT().ListByIDs(mock.Anything, []string{"sp1"}).
		Return([]*domain.Sport{{ID: "sp1", Name: "tennis"}}, nil)
	m.coaches.EXPECT().GetByUserID(mock.Anything, "coach1").
		Return(&domain.CoachProfile{ID: "cp1", HourlyRate: 100000, IsAvailable: true}, nil)
	m.events.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrBookingConflict)

	_, err := svc.Create(context.Background(), validEventInput())
	assert.ErrorIs(t, err, domain.ErrBookingConflict)
}

func TestEventService_Join(t *testing.T) {
	m, svc := newEventService(t)

	event := &domain.Event{ID: "e1", EventDate: "2030-06-01", MaxParticipants: 4}
	user := &domain.User{ID: "u2", Username: "bob"}
	participant := &domain.EventParticipant{ID: "p1", EventID: "e1", UserID: "u2", Status: domain.ParticipantStatusPending}

	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(user, nil)
	m.events.EXPECT().AddParticipant(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, p *domain.EventParticipant) {
			assert.Equal(t, domain.ParticipantStatusPending, p.Status)
		}).
		Return(nil)
	m.events.EXPECT().GetParticipant(mock.Anything, "e1", "u2").Return(participant, nil)
	m.notifier.EXPECT().NotifyEventJoined(mock.Anything, user, event).Return()

	p, err := svc.Join(context.Background(), "e1", "u2")

	require.NoError(t, err)
	assert.Equal(t, "u2", p.UserID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_Join_PastEvent(t *testing.T) {
	m, svc := newEventService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", EventDate: "2020-01-01"}, nil)

	_, err := svc.Join(context.Background(), "e1", "u2")
	assert.ErrorIs(t, err, domain.ErrPastEvent)
}

func TestEventService_Join_PrivateEvent(t *testing.T) {
	m, svc := newEventService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", EventDate: "2030-06-01", IsPrivate: true}, nil)

	_, err := svc.Join(context.Background(), "e1", "u2")
	assert.ErrorIs(t, err, domain.ErrPrivateEvent)
}

func TestEventService_Join_Full(t *testing.T) {
	m, svc := newEventService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", EventDate: "2030-06-01", MaxParticipants: 2}, nil)
	m.users.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	m.events.EXPECT().AddParticipant(mock.Anything, mock.Anything).Return(domain.ErrEventFull)

	_, err := svc.Join(context.Background(), "e1", "u2")
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestEventService_Leave(t *testing.T) {
	m, svc := newEventService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "u1"}, nil)
	m.events.EXPECT().GetParticipant(mock.Anything, "e1", "u2").
		Return(&domain.EventParticipant{ID: "p1", EventID: "e1", UserID: "u2"}, nil)
	m.events.EXPECT().RemoveParticipant(mock.Anything, "e1", "u2").Return(nil)

	err := svc.Leave(context.Background(), "e1", "u2")
	require.NoError(t, err)
}

func TestEventService_Leave_Creator(t *testing.T) {
	m, svc := newEventService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "u1"}, nil)

	err := svc.Leave(context.Background(), "e1", "u1")
	assert.ErrorIs(t, err, domain.ErrCreatorCannotLeave)
}

func TestEventService_Leave_NotParticipant(t *testing.T) {
	m, svc := newEventService(t)

	m.events.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", CreatorID: "u1"}, nil)
	m.events.EXPECT().GetParticipant(mock.Anything, "e1", "u3").
		Return(nil, domain.ErrNotParticipant)

	err := svc.Leave(context.Background(), "e1", "u3")
	assert.ErrorIs(t, err, domain.ErrNotParticipant)
}
