package controller

import (
	"context"
	"sync"
	"time"

	"github.com/duanerilli/NFL-Pool-Backend/db"
	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/duanerilli/NFL-Pool-Backend/platforms/rapidapi"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// ResolveCurrentWeek infers the active (phase, week) from the schedule:
	// the week of the earliest upcoming game, checking phases in
	// [reg, pre, post] order; then the latest recorded week of the first
	// phase that has any games; (reg, 1) when the store is empty.
	ResolveCurrentWeek(ctx context.Context) (model.Phase, int, error)
	// ResolveWeek runs the same future-first-then-max logic restricted to
	// one phase, defaulting to week 1 when the phase has no games.
	ResolveWeek(ctx context.Context, phase model.Phase) (int, error)

	// SyncGames pulls the provider's season feed, keeps the events for
	// (phase, week), and upserts them into the games table. Events that
	// cannot be mapped to known teams are skipped, not fatal. Returns the
	// number of rows written.
	SyncGames(ctx context.Context, season int, phase model.Phase, week int) (int, error)
	// SettlePicks turns finished games for (season, phase, week) into
	// win/loss/push outcomes on the pending picks referencing them. Safe to
	// re-run: only pending picks are ever selected. Returns the number of
	// picks updated.
	SettlePicks(ctx context.Context, season int, phase model.Phase, week int) (int, error)

	GetLeaderboard(ctx context.Context) (*model.Leaderboard, error)

	// SubmitPick records the user's selection of a team for a week. The
	// team's game must not have started yet, and a user gets one pick per
	// week.
	SubmitPick(ctx context.Context, userID uuid.UUID, phase model.Phase, week int, teamCode string) (*model.PickDetail, error)
	GetPickHistory(ctx context.Context, userID uuid.UUID) ([]model.PickDetail, error)
	// AvailableTeams lists the team codes the user can still pick for
	// (phase, week). An empty phase or week < 1 is filled in from the
	// resolver. Teams already picked in any week are excluded, as are teams
	// whose game has kicked off, unless ignoreLock is set.
	AvailableTeams(ctx context.Context, userID uuid.UUID, phase model.Phase, week int, ignoreLock bool) (model.Phase, int, []string, error)

	CreateUser(ctx context.Context, name string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListGamesForWeek(ctx context.Context, week int, year int) ([]model.Game, error)

	RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock    clock.Clock
	provider rapidapi.Client
	db       db.DB
}

func New(clock clock.Clock, provider rapidapi.Client, db db.DB) (C, error) {
	c := &controller{
		clock:    clock,
		provider: provider,
		db:       db,
	}
	return c, nil
}
