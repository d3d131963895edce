package dto

import (
	"time"

	"github.com/dmtkv/CourtBooker/internal/domain"
)

type ReservationResponse struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	StadiumID   string           `json:"stadium_id"`
	CourtNumber int              `json:"court_number"`
	Sport       string           `json:"sport"`
	CourtType   string           `json:"court_type,omitempty"`
	Date        string           `json:"date"`
	StartTime   string           `json:"start_time"`
	EndTime     string           `json:"end_time"`
	TotalPrice  float64          `json:"total_price"`
	Status      string           `json:"status"`
	User        *UserResponse    `json:"user,omitempty"`
	Stadium     *StadiumResponse `json:"stadium,omitempty"`
	CreatedAt   string           `json:"created_at"`
}

type CoachBookingResponse struct {
	ID             string        `json:"id"`
	ClientID       string        `json:"client_id"`
	CoachProfileID string        `json:"coach_profile_id"`
	Sport          string        `json:"sport"`
	SessionType    string        `json:"session_type"`
	Date           string        `json:"date"`
	StartTime      string        `json:"start_time"`
	EndTime        string        `json:"end_time"`
	TotalPrice     float64       `json:"total_price"`
	Status         string        `json:"status"`
	Notes          string        `json:"notes,omitempty"`
	Location       string        `json:"location,omitempty"`
	IsEvent        bool          `json:"is_event"`
	Client         *UserResponse `json:"client,omitempty"`
	CreatedAt      string        `json:"created_at"`
}

type EventResponse struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	AdditionalNotes string                `json:"additional_notes,omitempty"`
	EventDate       string                `json:"event_date"`
	StartTime       string                `json:"start_time"`
	EndTime         string                `json:"end_time"`
	MaxParticipants int                   `json:"max_participants"`
	IsPrivate       bool                  `json:"is_private"`
	IsSharedCost    bool                  `json:"is_shared_cost"`
	StadiumID       string                `json:"stadium_id"`
	CoachBookingID  string                `json:"coach_booking_id"`
	CreatorID       string                `json:"creator_id"`
	Sports          []SportResponse       `json:"sports,omitempty"`
	Participants    []ParticipantResponse `json:"participants,omitempty"`
	CreatedAt       string                `json:"created_at"`
}

type ParticipantResponse struct {
	ID       string        `json:"id"`
	EventID  string        `json:"event_id"`
	UserID   string        `json:"user_id"`
	Status   string        `json:"status"`
	User     *UserResponse `json:"user,omitempty"`
	JoinedAt string        `json:"joined_at"`
}

type ReviewResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	StadiumID     string `json:"stadium_id"`
	UserID        string `json:"user_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type StadiumResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address,omitempty"`
	Rating  float64 `json:"rating"`
}

type SportResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		StadiumID:   r.StadiumID,
		CourtNumber: r.CourtNumber,
		Sport:       r.Sport,
		CourtType:   r.CourtType,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		TotalPrice:  r.TotalPrice,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
	if r.User != nil {
		resp.User = &UserResponse{ID: r.User.ID, Username: r.User.Username}
	}
	if r.Stadium != nil {
		resp.Stadium = &StadiumResponse{
			ID:      r.Stadium.ID,
			Name:    r.Stadium.Name,
			Address: r.Stadium.Address,
			Rating:  r.Stadium.Rating,
		}
	}
	return resp
}

func ToCoachBookingResponse(b *domain.CoachBooking) CoachBookingResponse {
	resp := CoachBookingResponse{
		ID:             b.ID,
		ClientID:       b.ClientID,
		CoachProfileID: b.CoachProfileID,
		Sport:          b.Sport,
		SessionType:    b.SessionType,
		Date:           b.Date,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		TotalPrice:     b.TotalPrice,
		Status:         string(b.Status),
		Notes:          b.Notes,
		Location:       b.Location,
		IsEvent:        b.IsEvent,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
	if b.Client != nil {
		resp.Client = &UserResponse{ID: b.Client.ID, Username: b.Client.Username}
	}
	return resp
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		AdditionalNotes: e.AdditionalNotes,
		EventDate:       e.EventDate,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		MaxParticipants: e.MaxParticipants,
		IsPrivate:       e.IsPrivate,
		IsSharedCost:    e.IsSharedCost,
		StadiumID:       e.StadiumID,
		CoachBookingID:  e.CoachBookingID,
		CreatorID:       e.CreatorID,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
	for _, s := range e.Sports {
		resp.Sports = append(resp.Sports, SportResponse{ID: s.ID, Name: s.Name})
	}
	for i := range e.Participants {
		p := ToParticipantResponse(&e.Participants[i])
		resp.Participants = append(resp.Participants, p)
	}
	return resp
}

func ToParticipantResponse(p *domain.EventParticipant) ParticipantResponse {
	resp := ParticipantResponse{
		ID:       p.ID,
		EventID:  p.EventID,
		UserID:   p.UserID,
		Status:   string(p.Status),
		JoinedAt: p.JoinedAt.Format(time.RFC3339),
	}
	if p.User != nil {
		resp.User = &UserResponse{ID: p.User.ID, Username: p.User.Username}
	}
	return resp
}

func ToReviewResponse(rv *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:            rv.ID,
		ReservationID: rv.ReservationID,
		StadiumID:     rv.StadiumID,
		UserID:        rv.UserID,
		Rating:        rv.Rating,
		Comment:       rv.Comment,
		CreatedAt:     rv.CreatedAt.Format(time.RFC3339),
	}
}
