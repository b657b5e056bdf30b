package model

import "github.com/google/uuid"

// User owns zero or more picks, at most one per week.
type User struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
