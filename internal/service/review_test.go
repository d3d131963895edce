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
)

func newReviewService(t *testing.T) (*mocks.MockReviewRepo, *mocks.MockReservationRepo, *mocks.MockRatingCollaborator, *ReviewService) {
	t.Helper()
	reviews := mocks.NewMockReviewRepo(t)
	reservations := mocks.NewMockReservationRepo(t)
	ratings := mocks.NewMockRatingCollaborator(t)
	svc := NewReviewService(reviews, reservations, ratings, newTestLogger(t))
	return reviews, reservations, ratings, svc
}

func completedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        "r1",
		UserID:    "u1",
		StadiumID: "st1",
		Status:    domain.BookingStatusCompleted,
	}
}

func TestReviewService_Create(t *testing.T) {
	reviews, reservations, ratings, svc := newReviewService(t)

	reservations.EXPECT().GetByID(mock.Anything, "r1").Return(completedReservation(), nil)
	reviews.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, rv *domain.Review) {
			assert.Equal(t, "great court", rv.Comment)
			assert.Equal(t, 5, rv.Rating)
		}).
		Return(nil)
	ratings.EXPECT().RecalculateStadiumRating(mock.Anything, "st1").Return(nil)

	review, err := svc.Create(context.Background(), domain.CreateReviewInput{
		UserID:        "u1",
		ReservationID: "r1",
		StadiumID:     "st1",
		Rating:        5,
		Comment:       "  great court  ",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)

	time.Sleep(50 * time.Millisecond) // goroutine recalc
}

func TestReviewService_Create_RatingOutOfRange(t *testing.T) {
	_, _, _, svc := newReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), domain.CreateReviewInput{
			UserID:        "u1",
			ReservationID: "r1",
			StadiumID:     "st1",
			Rating:        rating,
			Comment:       "ok",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestReviewService_Create_BlankComment(t *testing.T) {
	_, _, _, svc := newReviewService(t)

	_, err := svc.Create(context.Background(), domain.CreateReviewInput{
		UserID:        "u1",
		ReservationID: "r1",
		StadiumID:     "st1",
		Rating:        4,
		Comment:       "   ",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReviewService_Create_WrongUser(t *testing.T) {
	_, reservations, _, svc := newReviewService(t)

	reservations.EXPECT().GetByID(mock.Anything, "r1").Return(completedReservation(), nil)

	_, err := svc.Create(context.Background(), domain.CreateReviewInput{
		UserID:        "u2",
		ReservationID: "r1",
		StadiumID:     "st1",
		Rating:        4,
		Comment:       "ok",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReviewService_Create_NotCompleted(t *testing.T) {
	_, reservations, _, svc := newReviewService(t)

	res := completedReservation()
	res.Status = domain.BookingStatusConfirmed
	reservations.EXPECT().GetByID(mock.Anything, "r1").Return(res, nil)

	_, err := svc.Create(context.Background(), domain.CreateReviewInput{
		UserID:        "u1",
		ReservationID: "r1",
		StadiumID:     "st1",
		Rating:        4,
		Comment:       "ok",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	reviews, reservations, _, svc := newReviewService(t)

	reservations.EXPECT().GetByID(mock.Anything, "r1").Return(completedReservation(), nil)
	reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrReviewExists)

	_, err := svc.Create(context.Background(), domain.CreateReviewInput{
		UserID:        "u1",
		ReservationID: "r1",
		StadiumID:     "st1",
		Rating:        4,
		Comment:       "ok",
	})

	assert.ErrorIs(t, err, domain.ErrReviewExists)
}

func TestReviewService_Create_RecalcFailureIgnored(t *testing.T) {
	reviews, reservations, ratings, svc := newReviewService(t)

	reservations.EXPECT().GetByID(mock.Anything, "r1").Return(completedReservation(), nil)
	reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	ratings.EXPECT().RecalculateStadiumRating(mock.Anything, "st1").Return(errors.New("db down"))

	review, err := svc.Create(context.Background(), domain.CreateReviewInput{
		UserID:        "u1",
		ReservationID: "r1",
		StadiumID:     "st1",
		Rating:        3,
		Comment:       "fine",
	})

	require.NoError(t, err)
	assert.NotNil(t, review)

	time.Sleep(50 * time.Millisecond) // goroutine recalc
}
