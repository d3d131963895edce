package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmtkv/CourtBooker/internal/domain"
	"github.com/dmtkv/CourtBooker/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	Create(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	StadiumReservations(ctx context.Context, stadiumID, date string) ([]*domain.Reservation, error)
	UserReservations(ctx context.Context, userID string) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Reservation, error)
	Remove(ctx context.Context, id string) error
}

type CoachBookingSvc interface {
	Create(ctx context.Context, in domain.CreateCoachBookingInput) (*domain.CoachBooking, error)
	Get(ctx context.Context, id string) (*domain.CoachBooking, error)
	ListByCoach(ctx context.Context, coachProfileID string) ([]*domain.CoachBooking, error)
	Confirm(ctx context.Context, id string) (*domain.CoachBooking, error)
	Cancel(ctx context.Context, id string) (*domain.CoachBooking, error)
}

type EventSvc interface {
	Create(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	ListPublic(ctx context.Context) ([]*domain.Event, error)
	Join(ctx context.Context, eventID, userID string) (*domain.EventParticipant, error)
	Leave(ctx context.Context, eventID, userID string) error
}

type ReviewSvc interface {
	Create(ctx context.Context, in domain.CreateReviewInput) (*domain.Review, error)
}

type Handler struct {
	reservationService  ReservationSvc
	coachBookingService CoachBookingSvc
	eventService        EventSvc
	reviewService       ReviewSvc
}

func NewHandler(
	reservationService ReservationSvc,
	coachBookingService CoachBookingSvc,
	eventService EventSvc,
	reviewService ReviewSvc,
) *Handler {
	return &Handler{
		reservationService:  reservationService,
		coachBookingService: coachBookingService,
		eventService:        eventService,
		reviewService:       reviewService,
	}
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateReservationInput{
		UserID:      req.UserID,
		StadiumID:   req.StadiumID,
		CourtNumber: req.CourtNumber,
		Sport:       req.Sport,
		CourtType:   req.CourtType,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		TotalPrice:  req.TotalPrice,
		Status:      domain.BookingStatus(req.Status),
	}

	res, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	res, err := h.reservationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) GetStadiumReservations(c *ginext.Context) {
	stadiumID := c.Param("id")
	if _, err := uuid.Parse(stadiumID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid stadium id"})
		return
	}
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	reservations, err := h.reservationService.StadiumReservations(c.Request.Context(), stadiumID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserReservations(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	reservations, err := h.reservationService.UserReservations(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateReservationStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	var req dto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.reservationService.UpdateStatus(c.Request.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) DeleteReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Remove(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Coach bookings

func (h *Handler) CreateCoachBooking(c *ginext.Context) {
	var req dto.CreateCoachBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateCoachBookingInput{
		ClientID:       req.ClientID,
		CoachProfileID: req.CoachProfileID,
		Sport:          req.Sport,
		SessionType:    req.SessionType,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		TotalPrice:     req.TotalPrice,
		Notes:          req.Notes,
		Location:       req.Location,
	}

	booking, err := h.coachBookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCoachBookingResponse(booking))
}

func (h *Handler) GetCoachBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.coachBookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCoachBookingResponse(booking))
}

func (h *Handler) GetCoachBookings(c *ginext.Context) {
	coachProfileID := c.Param("id")
	if _, err := uuid.Parse(coachProfileID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid coach profile id"})
		return
	}

	bookings, err := h.coachBookingService.ListByCoach(c.Request.Context(), coachProfileID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CoachBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToCoachBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ConfirmCoachBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.coachBookingService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCoachBookingResponse(booking))
}

func (h *Handler) CancelCoachBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.coachBookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCoachBookingResponse(booking))
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateEventInput{
		CreatorID:       req.CreatorID,
		Title:           req.Title,
		Description:     req.Description,
		AdditionalNotes: req.AdditionalNotes,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		MaxParticipants: req.MaxParticipants,
		IsPrivate:       req.IsPrivate,
		IsSharedCost:    req.IsSharedCost,
		StadiumID:       req.StadiumID,
		CoachID:         req.CoachID,
		SportIDs:        req.SportIDs,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.ListPublic(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) JoinEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.JoinEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	participant, err := h.eventService.Join(c.Request.Context(), eventID, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToParticipantResponse(participant))
}

func (h *Handler) LeaveEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.LeaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.eventService.Leave(c.Request.Context(), eventID, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "left"})
}

// Reviews

func (h *Handler) CreateReview(c *ginext.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateReviewInput{
		UserID:        req.UserID,
		ReservationID: req.ReservationID,
		StadiumID:     req.StadiumID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	review, err := h.reviewService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrStadiumNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCoachProfileNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingConflict),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrAlreadyJoined),
		errors.Is(err, domain.ErrReviewExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrSportNotFound),
		errors.Is(err, domain.ErrPastEvent),
		errors.Is(err, domain.ErrPrivateEvent),
		errors.Is(err, domain.ErrCreatorCannotLeave),
		errors.Is(err, domain.ErrNotParticipant),
		errors.Is(err, domain.ErrEventBooking):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
