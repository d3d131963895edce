package domain

import "time"

type ParticipantStatus string

const (
	ParticipantStatusPending   ParticipantStatus = "pending"
	ParticipantStatusConfirmed ParticipantStatus = "confirmed"
	ParticipantStatusDeclined  ParticipantStatus = "declined"
)

// ActiveParticipantStatuses count against an event's capacity.
var ActiveParticipantStatuses = []ParticipantStatus{
	ParticipantStatusPending,
	ParticipantStatusConfirmed,
}

// Event is a social gathering wrapping exactly one coach booking plus a
// participant roster. The event and its booking are created together and
// share one lifecycle.
type Event struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	AdditionalNotes string             `json:"additional_notes,omitempty"`
	EventDate       string             `json:"event_date"`
	StartTime       string             `json:"start_time"`
	EndTime         string             `json:"end_time"`
	MaxParticipants int                `json:"max_participants"`
	IsPrivate       bool               `json:"is_private"`
	IsSharedCost    bool               `json:"is_shared_cost"`
	StadiumID       string             `json:"stadium_id"`
	CoachProfileID  string             `json:"coach_profile_id"`
	CoachBookingID  string             `json:"coach_booking_id"`
	CreatorID       string             `json:"creator_id"`
	Sports          []Sport            `json:"sports,omitempty"`
	Participants    []EventParticipant `json:"participants,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type EventParticipant struct {
	ID       string            `json:"id"`
	EventID  string            `json:"event_id"`
	UserID   string            `json:"user_id"`
	Status   ParticipantStatus `json:"status"`
	JoinedAt time.Time         `json:"joined_at"`
	User     *User             `json:"user,omitempty"`
}

type CreateEventInput struct {
	CreatorID       string
	Title           string
	Description     string
	AdditionalNotes string
	Date            string
	StartTime       string
	EndTime         string
	MaxParticipants int
	IsPrivate       bool
	IsSharedCost    bool
	StadiumID       string
	CoachID         string // user id of the coach, resolved to a profile
	SportIDs        []string
}
