package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BlockingStatuses are the statuses that keep a slot occupied. Cancelled rows
// never block a new booking.
var BlockingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// Reservation is a claim on a stadium court for [StartTime, EndTime) on Date.
// The resource key is (StadiumID, CourtNumber).
type Reservation struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	StadiumID   string        `json:"stadium_id"`
	CourtNumber int           `json:"court_number"`
	Sport       string        `json:"sport"`
	CourtType   string        `json:"court_type"`
	Date        string        `json:"date"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time"`
	TotalPrice  float64       `json:"total_price"`
	Status      BookingStatus `json:"status"`
	User        *User         `json:"user,omitempty"`
	Stadium     *Stadium      `json:"stadium,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CreateReservationInput struct {
	UserID      string
	StadiumID   string
	CourtNumber int
	Sport       string
	CourtType   string
	Date        string
	StartTime   string
	EndTime     string
	TotalPrice  float64
	Status      BookingStatus
}
