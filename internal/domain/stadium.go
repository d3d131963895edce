package domain

import "time"

type Stadium struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	OwnerID   string    `json:"owner_id"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type Sport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
