package db

import (
	"context"
	"time"

	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/google/uuid"
)

type DB interface {
	// Teams are immutable reference data seeded by the schema.
	GetTeamByCode(ctx context.Context, code string) (*model.Team, error)
	// Lists every team ordered by code.
	ListTeams(ctx context.Context) ([]model.Team, error)

	// GetNextGame returns the game in the phase with the earliest start time
	// strictly after the given instant, or ErrGameNotFound.
	GetNextGame(ctx context.Context, phase model.Phase, after time.Time) (*model.Game, error)
	// GetMaxWeek returns the largest week number recorded for the phase, or
	// 0 if the phase has no games at all.
	GetMaxWeek(ctx context.Context, phase model.Phase) (int, error)
	// ListGamesForWeek returns the games for a week across all phases,
	// ordered by start time. A year > 0 restricts the result to games whose
	// start time falls in that calendar year.
	ListGamesForWeek(ctx context.Context, week int, year int) ([]model.Game, error)
	// ListScoredGames returns the games for (phase, week) that have both
	// scores recorded and start within [from, to).
	ListScoredGames(ctx context.Context, phase model.Phase, week int, from, to time.Time) ([]model.Game, error)
	// ListStartedGames returns the games for (phase, week) whose start time
	// is at or before asOf. Used to lock teams that have already kicked off.
	ListStartedGames(ctx context.Context, phase model.Phase, week int, asOf time.Time) ([]model.Game, error)
	// FindOpenGameForTeam finds the game in week involving the team that
	// starts strictly after the given instant, or ErrGameNotFound. An empty
	// phase matches any phase.
	FindOpenGameForTeam(ctx context.Context, phase model.Phase, week int, teamID uuid.UUID, after time.Time) (*model.Game, error)
	// UpsertGames writes the rows in a single batch keyed on
	// (source, provider_game_id): insert when absent, overwrite the mutable
	// fields when present. Returns the number of rows written.
	UpsertGames(ctx context.Context, games []model.Game) (int, error)

	// GetPickForWeek returns the user's pick for the week, or ErrPickNotFound.
	GetPickForWeek(ctx context.Context, userID uuid.UUID, week int) (*model.Pick, error)
	// InsertPick saves a new pick and fills in its generated id and created
	// time. A second pick for the same (user, week) fails with
	// ErrDuplicatePick.
	InsertPick(ctx context.Context, p *model.Pick) error
	// ListPendingPicks returns the picks referencing any of the games whose
	// status is still pending (or null, which means the same thing).
	ListPendingPicks(ctx context.Context, gameIDs []uuid.UUID) ([]model.Pick, error)
	// UpdatePickStatuses sets the status on exactly the given picks and
	// returns the number of rows updated.
	UpdatePickStatuses(ctx context.Context, ids []uuid.UUID, status model.PickStatus) (int, error)
	// ListPicksForUser returns the user's picks joined with team and game
	// start, ordered by week.
	ListPicksForUser(ctx context.Context, userID uuid.UUID) ([]model.PickDetail, error)
	// ListPickedTeams returns the ids of every team the user has picked in
	// any week.
	ListPickedTeams(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// ListPickDetails returns every pick in the system joined with team code
	// and game start time, ordered by week.
	ListPickDetails(ctx context.Context) ([]model.PickDetail, error)

	// Lists every user ordered by name.
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	InsertUser(ctx context.Context, name string) (*model.User, error)
}
