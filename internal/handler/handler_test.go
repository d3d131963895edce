package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmtkv/CourtBooker/internal/domain"
	"github.com/dmtkv/CourtBooker/internal/handler/dto"
	hmocks "github.com/dmtkv/CourtBooker/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type handlerMocks struct {
	reservations  *hmocks.MockReservationSvc
	coachBookings *hmocks.MockCoachBookingSvc
	events        *hmocks.MockEventSvc
	reviews       *hmocks.MockReviewSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		reservations:  hmocks.NewMockReservationSvc(t),
		coachBookings: hmocks.NewMockCoachBookingSvc(t),
		events:        hmocks.NewMockEventSvc(t),
		reviews:       hmocks.NewMockReviewSvc(t),
	}

	h := NewHandler(m.reservations, m.coachBookings, m.events, m.reviews)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.PATCH("/reservations/:id/status", h.UpdateReservationStatus)
		api.DELETE("/reservations/:id", h.DeleteReservation)
		api.GET("/stadiums/:id/reservations", h.GetStadiumReservations)
		api.GET("/users/:id/reservations", h.GetUserReservations)

		api.POST("/coach-bookings", h.CreateCoachBooking)
		api.GET("/coach-bookings/:id", h.GetCoachBooking)
		api.POST("/coach-bookings/:id/confirm", h.ConfirmCoachBooking)
		api.POST("/coach-bookings/:id/cancel", h.CancelCoachBooking)
		api.GET("/coaches/:id/bookings", h.GetCoachBookings)

		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/join", h.JoinEvent)
		api.POST("/events/:id/leave", h.LeaveEvent)

		api.POST("/reviews", h.CreateReview)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	m, r := setupRouter(t)

	res := &domain.Reservation{
		ID:        uuid.New().String(),
		UserID:    uuid.New().String(),
		StadiumID: uuid.New().String(),
		Date:      "2030-06-01",
		StartTime: "18:00",
		EndTime:   "19:30",
		Status:    domain.BookingStatusPending,
	}
	m.reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(res, nil)

	w := doJSON(t, r, http.MethodPost, "/api/reservations", dto.CreateReservationRequest{
		UserID:      res.UserID,
		StadiumID:   res.StadiumID,
		CourtNumber: 1,
		Sport:       "football",
		Date:        "2030-06-01",
		StartTime:   "18:00",
		EndTime:     "19:30",
		TotalPrice:  150000,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, res.ID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateReservation_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/reservations", map[string]any{"user_id": "not-a-uuid"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	m.reservations.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrBookingConflict)

	w := doJSON(t, r, http.MethodPost, "/api/reservations", dto.CreateReservationRequest{
		UserID:      uuid.New().String(),
		StadiumID:   uuid.New().String(),
		CourtNumber: 1,
		Sport:       "football",
		Date:        "2030-06-01",
		StartTime:   "18:00",
		EndTime:     "19:30",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reservations.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrReservationNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/reservations/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetReservation_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/reservations/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetStadiumReservations_RequiresDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/stadiums/"+uuid.New().String()+"/reservations", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetStadiumReservations_Success(t *testing.T) {
	m, r := setupRouter(t)

	stadiumID := uuid.New().String()
	m.reservations.EXPECT().StadiumReservations(mock.Anything, stadiumID, "2030-06-01").
		Return([]*domain.Reservation{{ID: "r1"}, {ID: "r2"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/stadiums/"+stadiumID+"/reservations?date=2030-06-01", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_UpdateReservationStatus_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reservations.EXPECT().UpdateStatus(mock.Anything, id, domain.BookingStatusConfirmed).
		Return(&domain.Reservation{ID: id, Status: domain.BookingStatusConfirmed}, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/reservations/"+id+"/status",
		dto.UpdateReservationStatusRequest{Status: "confirmed"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteReservation_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.reservations.EXPECT().Remove(mock.Anything, id).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/reservations/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Coach bookings ---

func TestHandler_CreateCoachBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	booking := &domain.CoachBooking{
		ID:     uuid.New().String(),
		Status: domain.BookingStatusPending,
	}
	m.coachBookings.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/coach-bookings", dto.CreateCoachBookingRequest{
		ClientID:       uuid.New().String(),
		CoachProfileID: uuid.New().String(),
		Sport:          "tennis",
		SessionType:    "individual",
		Date:           "2030-06-01",
		StartTime:      "10:00",
		EndTime:        "11:00",
		TotalPrice:     100000,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_ConfirmCoachBooking_EventOwned(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.coachBookings.EXPECT().Confirm(mock.Anything, id).Return(nil, domain.ErrEventBooking)

	w := doJSON(t, r, http.MethodPost, "/api/coach-bookings/"+id+"/confirm", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelCoachBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.coachBookings.EXPECT().Cancel(mock.Anything, id).
		Return(&domain.CoachBooking{ID: id, Status: domain.BookingStatusCancelled}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/coach-bookings/"+id+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CoachBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{
		ID:        uuid.New().String(),
		Title:     "Friday tennis",
		EventDate: "2030-06-01",
		Sports:    []domain.Sport{{ID: "sp1", Name: "tennis"}},
	}
	m.events.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		CreatorID:       uuid.New().String(),
		Title:           "Friday tennis",
		Date:            "2030-06-01",
		StartTime:       "18:00",
		EndTime:         "19:30",
		MaxParticipants: 4,
		StadiumID:       uuid.New().String(),
		CoachID:         uuid.New().String(),
		SportIDs:        []string{uuid.New().String()},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Friday tennis", resp.Title)
	assert.Len(t, resp.Sports, 1)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]any{"title": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_JoinEvent_Full(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.events.EXPECT().Join(mock.Anything, eventID, userID).Return(nil, domain.ErrEventFull)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/join",
		dto.JoinEventRequest{UserID: userID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_JoinEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.events.EXPECT().Join(mock.Anything, eventID, userID).
		Return(&domain.EventParticipant{ID: "p1", EventID: eventID, UserID: userID, Status: domain.ParticipantStatusConfirmed}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/join",
		dto.JoinEventRequest{UserID: userID})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_LeaveEvent_Creator(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.events.EXPECT().Leave(mock.Anything, eventID, userID).Return(domain.ErrCreatorCannotLeave)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/leave",
		dto.LeaveEventRequest{UserID: userID})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reviews ---

func TestHandler_CreateReview_Success(t *testing.T) {
	m, r := setupRouter(t)

	review := &domain.Review{ID: uuid.New().String(), Rating: 5}
	m.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(review, nil)

	w := doJSON(t, r, http.MethodPost, "/api/reviews", dto.CreateReviewRequest{
		UserID:        uuid.New().String(),
		ReservationID: uuid.New().String(),
		StadiumID:     uuid.New().String(),
		Rating:        5,
		Comment:       "great court",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateReview_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	m.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrReviewExists)

	w := doJSON(t, r, http.MethodPost, "/api/reviews", dto.CreateReviewRequest{
		UserID:        uuid.New().String(),
		ReservationID: uuid.New().String(),
		StadiumID:     uuid.New().String(),
		Rating:        4,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateReview_RatingOutOfRange(t *testing.T) {
	_, r := setupRouter(t)

	// binding rejects before the service is reached
	w := doJSON(t, r, http.MethodPost, "/api/reviews", dto.CreateReviewRequest{
		UserID:        uuid.New().String(),
		ReservationID: uuid.New().String(),
		StadiumID:     uuid.New().String(),
		Rating:        9,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
