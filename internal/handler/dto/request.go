package dto

type CreateReservationRequest struct {
	UserID      string  `json:"user_id" binding:"required,uuid"`
	StadiumID   string  `json:"stadium_id" binding:"required,uuid"`
	CourtNumber int     `json:"court_number" binding:"required,gt=0"`
	Sport       string  `json:"sport" binding:"required"`
	CourtType   string  `json:"court_type"`
	Date        string  `json:"date" binding:"required"`
	StartTime   string  `json:"start_time" binding:"required"`
	EndTime     string  `json:"end_time" binding:"required"`
	TotalPrice  float64 `json:"total_price" binding:"gte=0"`
	Status      string  `json:"status"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateCoachBookingRequest struct {
	ClientID       string  `json:"client_id" binding:"required,uuid"`
	CoachProfileID string  `json:"coach_profile_id" binding:"required,uuid"`
	Sport          string  `json:"sport" binding:"required"`
	SessionType    string  `json:"session_type" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	StartTime      string  `json:"start_time" binding:"required"`
	EndTime        string  `json:"end_time" binding:"required"`
	TotalPrice     float64 `json:"total_price" binding:"gte=0"`
	Notes          string  `json:"notes"`
	Location       string  `json:"location"`
}

type CreateEventRequest struct {
	CreatorID       string   `json:"creator_id" binding:"required,uuid"`
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	AdditionalNotes string   `json:"additional_notes"`
	Date            string   `json:"date" binding:"required"`
	StartTime       string   `json:"start_time" binding:"required"`
	EndTime         string   `json:"end_time" binding:"required"`
	MaxParticipants int      `json:"max_participants" binding:"required,gt=0"`
	IsPrivate       bool     `json:"is_private"`
	IsSharedCost    bool     `json:"is_shared_cost"`
	StadiumID       string   `json:"stadium_id" binding:"required,uuid"`
	CoachID         string   `json:"coach_id" binding:"required,uuid"`
	SportIDs        []string `json:"sport_ids" binding:"required,min=1,dive,uuid"`
}

type JoinEventRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type LeaveEventRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CreateReviewRequest struct {
	UserID        string `json:"user_id" binding:"required,uuid"`
	ReservationID string `json:"reservation_id" binding:"required,uuid"`
	StadiumID     string `json:"stadium_id" binding:"required,uuid"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}
