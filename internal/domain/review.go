package domain

import "time"

// Review is left once per completed reservation. Creating one triggers a
// best-effort recomputation of the stadium's aggregate rating.
type Review struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservation_id"`
	StadiumID     string    `json:"stadium_id"`
	UserID        string    `json:"user_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateReviewInput struct {
	UserID        string
	ReservationID string
	StadiumID     string
	Rating        int
	Comment       string
}
