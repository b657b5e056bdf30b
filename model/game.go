package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	GameStatusScheduled  = "scheduled"
	GameStatusInProgress = "in_progress"
	GameStatusFinal      = "final"
)

// Game is one scheduled or played matchup. Season, phase and week are
// denormalized onto every row so downstream queries can filter without
// joins. (Source, ProviderGameID) is the natural key used to keep result
// syncs idempotent regardless of the internal id.
type Game struct {
	ID         uuid.UUID `json:"id"`
	Season     int       `json:"season"`
	Phase      Phase     `json:"phase"`
	Week       int       `json:"week"`
	StartTime  time.Time `json:"start_time"`
	HomeTeamID uuid.UUID `json:"home_team_id"`
	AwayTeamID uuid.UUID `json:"away_team_id"`
	HomeScore  *int      `json:"home_score"`
	AwayScore  *int      `json:"away_score"`
	// Status is an advisory label. Finality is decided from the scores, not
	// from this text.
	Status string `json:"status"`

	Source         string `json:"-"`
	ProviderGameID string `json:"-"`
}

// IsFinal reports whether the game can be settled. A game with both scores
// recorded is final no matter what the status label says; provider status
// text is unreliable near the end of a game.
func (g *Game) IsFinal() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

// Outcome returns the winning team and whether the game was a tie. ok is
// false until the game is final. Ties have no winning team.
func (g *Game) Outcome() (winner uuid.UUID, tie bool, ok bool) {
	if !g.IsFinal() {
		return uuid.Nil, false, false
	}
	switch {
	case *g.HomeScore > *g.AwayScore:
		return g.HomeTeamID, false, true
	case *g.AwayScore > *g.HomeScore:
		return g.AwayTeamID, false, true
	default:
		return uuid.Nil, true, true
	}
}
