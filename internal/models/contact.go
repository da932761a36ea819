package models

import "time"

// Contact is a labelled link or address, e.g. type "GitHub" with a URL value.
type Contact struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Value     string    `json:"value"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
