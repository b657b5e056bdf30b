package model

import (
	"time"

	"github.com/google/uuid"
)

type PickStatus string

const (
	PickPending PickStatus = "pending"
	PickWin     PickStatus = "win"
	PickLoss    PickStatus = "loss"
	PickPush    PickStatus = "push"
)

// ParsePickStatus maps stored status text to a PickStatus. Old rows may have
// a null status, which means pending.
func ParsePickStatus(s string) PickStatus {
	switch s {
	case "win":
		return PickWin
	case "loss":
		return PickLoss
	case "push":
		return PickPush
	default:
		return PickPending
	}
}

// Pick is a user's single selection for a week, resolved against exactly one
// game. At most one pick exists per (user, week), and settlement only ever
// moves it out of pending.
type Pick struct {
	ID      uuid.UUID  `json:"id"`
	UserID  uuid.UUID  `json:"user_id"`
	Week    int        `json:"week"`
	TeamID  uuid.UUID  `json:"team_id"`
	GameID  uuid.UUID  `json:"game_id"`
	Status  PickStatus `json:"status"`
	Created time.Time  `json:"created"`
}

// PickDetail is a pick joined with its team and the game's start time, the
// shape read by the history and leaderboard queries.
type PickDetail struct {
	Pick
	TeamCode  string    `json:"team_code"`
	TeamName  string    `json:"team_name"`
	GameStart time.Time `json:"starts_at"`
}
