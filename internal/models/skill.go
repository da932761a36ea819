package models

import "time"

// Skill is a single technology/competence entry on a portfolio.
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IconURL   string    `json:"iconUrl,omitempty"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
