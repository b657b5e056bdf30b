package model

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardPick is one entry in a user's ordered pick history.
type LeaderboardPick struct {
	Week     int        `json:"week"`
	TeamCode string     `json:"team_code"`
	Status   PickStatus `json:"status"`
	StartsAt time.Time  `json:"starts_at"`
}

type LeaderboardRow struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Eliminated bool              `json:"eliminated"`
	Picks      []LeaderboardPick `json:"picks"`
}

// Leaderboard partitions every user into exactly one of the two lists. It is
// recomputed from the store on every read and never cached.
type Leaderboard struct {
	StillIn    []LeaderboardRow `json:"stillIn"`
	Eliminated []LeaderboardRow `json:"eliminated"`
}
