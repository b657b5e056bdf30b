package model

import "github.com/google/uuid"

// Team is immutable reference data. Teams are looked up by code when a pick
// is submitted ("SF") and by display name when mapping provider results
// ("San Francisco 49ers", case-insensitive).
type Team struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}
