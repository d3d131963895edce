package domain

import "time"

// CoachBooking is a claim on a coach's time for [StartTime, EndTime) on Date.
// The resource key is CoachProfileID. IsEvent marks bookings owned by an
// event; such rows are mutated only through the event flow.
type CoachBooking struct {
	ID             string        `json:"id"`
	ClientID       string        `json:"client_id"`
	CoachProfileID string        `json:"coach_profile_id"`
	Sport          string        `json:"sport"`
	SessionType    string        `json:"session_type"`
	Date           string        `json:"date"`
	StartTime      string        `json:"start_time"`
	EndTime        string        `json:"end_time"`
	TotalPrice     float64       `json:"total_price"`
	Status         BookingStatus `json:"status"`
	Notes          string        `json:"notes,omitempty"`
	Location       string        `json:"location,omitempty"`
	IsEvent        bool          `json:"is_event"`
	Client         *User         `json:"client,omitempty"`
	CoachProfile   *CoachProfile `json:"coach_profile,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type CreateCoachBookingInput struct {
	ClientID       string
	CoachProfileID string
	Sport          string
	SessionType    string
	Date           string
	StartTime      string
	EndTime        string
	TotalPrice     float64
	Notes          string
	Location       string
	Status         BookingStatus
}
