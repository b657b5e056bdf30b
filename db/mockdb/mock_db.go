package mockdb

import (
	"context"
	"time"

	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetTeamByCode(ctx context.Context, code string) (*model.Team, error) {
	args := db.Called(ctx, code)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := db.Called(ctx)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) GetNextGame(ctx context.Context, phase model.Phase, after time.Time) (*model.Game, error) {
	args := db.Called(ctx, phase, after)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) GetMaxWeek(ctx context.Context, phase model.Phase) (int, error) {
	args := db.Called(ctx, phase)
	return args.Int(0), args.Error(1)
}

func (db *DB) ListGamesForWeek(ctx context.Context, week int, year int) ([]model.Game, error) {
	args := db.Called(ctx, week, year)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) ListScoredGames(ctx context.Context, phase model.Phase, week int, from, to time.Time) ([]model.Game, error) {
	args := db.Called(ctx, phase, week, from, to)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) ListStartedGames(ctx context.Context, phase model.Phase, week int, asOf time.Time) ([]model.Game, error) {
	args := db.Called(ctx, phase, week, asOf)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) FindOpenGameForTeam(ctx context.Context, phase model.Phase, week int, teamID uuid.UUID, after time.Time) (*model.Game, error) {
	args := db.Called(ctx, phase, week, teamID, after)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) UpsertGames(ctx context.Context, games []model.Game) (int, error) {
	args := db.Called(ctx, games)
	return args.Int(0), args.Error(1)
}

func (db *DB) GetPickForWeek(ctx context.Context, userID uuid.UUID, week int) (*model.Pick, error) {
	args := db.Called(ctx, userID, week)

	var p *model.Pick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Pick)
	}
	return p, args.Error(1)
}

func (db *DB) InsertPick(ctx context.Context, p *model.Pick) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) ListPendingPicks(ctx context.Context, gameIDs []uuid.UUID) ([]model.Pick, error) {
	args := db.Called(ctx, gameIDs)

	var r []model.Pick
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Pick)
	}
	return r, args.Error(1)
}

func (db *DB) UpdatePickStatuses(ctx context.Context, ids []uuid.UUID, status model.PickStatus) (int, error) {
	args := db.Called(ctx, ids, status)
	return args.Int(0), args.Error(1)
}

func (db *DB) ListPicksForUser(ctx context.Context, userID uuid.UUID) ([]model.PickDetail, error) {
	args := db.Called(ctx, userID)

	var r []model.PickDetail
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PickDetail)
	}
	return r, args.Error(1)
}

func (db *DB) ListPickedTeams(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := db.Called(ctx, userID)

	var r []uuid.UUID
	if args.Get(0) != nil {
		r = args.Get(0).([]uuid.UUID)
	}
	return r, args.Error(1)
}

func (db *DB) ListPickDetails(ctx context.Context) ([]model.PickDetail, error) {
	args := db.Called(ctx)

	var r []model.PickDetail
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PickDetail)
	}
	return r, args.Error(1)
}

func (db *DB) ListUsers(ctx context.Context) ([]model.User, error) {
	args := db.Called(ctx)

	var r []model.User
	if args.Get(0) != nil {
		r = args.Get(0).([]model.User)
	}
	return r, args.Error(1)
}

func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := db.Called(ctx, id)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) InsertUser(ctx context.Context, name string) (*model.User, error) {
	args := db.Called(ctx, name)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}
