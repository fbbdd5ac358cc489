package models

import "time"

type Experience struct {
	ID          string    `json:"_id"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Dates       string    `json:"dates"`
	Description []string  `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
