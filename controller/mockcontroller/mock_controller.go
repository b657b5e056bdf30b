package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) ResolveCurrentWeek(ctx context.Context) (model.Phase, int, error) {
	args := c.Called(ctx)
	return args.Get(0).(model.Phase), args.Int(1), args.Error(2)
}

func (c *C) ResolveWeek(ctx context.Context, phase model.Phase) (int, error) {
	args := c.Called(ctx, phase)
	return args.Int(0), args.Error(1)
}

func (c *C) SyncGames(ctx context.Context, season int, phase model.Phase, week int) (int, error) {
	args := c.Called(ctx, season, phase, week)
	return args.Int(0), args.Error(1)
}

func (c *C) SettlePicks(ctx context.Context, season int, phase model.Phase, week int) (int, error) {
	args := c.Called(ctx, season, phase, week)
	return args.Int(0), args.Error(1)
}

func (c *C) GetLeaderboard(ctx context.Context) (*model.Leaderboard, error) {
	args := c.Called(ctx)

	var lb *model.Leaderboard
	if args.Get(0) != nil {
		lb = args.Get(0).(*model.Leaderboard)
	}

	return lb, args.Error(1)
}

func (c *C) SubmitPick(ctx context.Context, userID uuid.UUID, phase model.Phase, week int, teamCode string) (*model.PickDetail, error) {
	args := c.Called(ctx, userID, phase, week, teamCode)

	var p *model.PickDetail
	if args.Get(0) != nil {
		p = args.Get(0).(*model.PickDetail)
	}

	return p, args.Error(1)
}

func (c *C) GetPickHistory(ctx context.Context, userID uuid.UUID) ([]model.PickDetail, error) {
	args := c.Called(ctx, userID)

	var res []model.PickDetail
	if args.Get(0) != nil {
		res = args.Get(0).([]model.PickDetail)
	}

	return res, args.Error(1)
}

func (c *C) AvailableTeams(ctx context.Context, userID uuid.UUID, phase model.Phase, week int, ignoreLock bool) (model.Phase, int, []string, error) {
	args := c.Called(ctx, userID, phase, week, ignoreLock)

	var codes []string
	if args.Get(2) != nil {
		codes = args.Get(2).([]string)
	}

	return args.Get(0).(model.Phase), args.Int(1), codes, args.Error(3)
}

func (c *C) CreateUser(ctx context.Context, name string) (*model.User, error) {
	args := c.Called(ctx, name)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}

	return u, args.Error(1)
}

func (c *C) ListUsers(ctx context.Context) ([]model.User, error) {
	args := c.Called(ctx)

	var res []model.User
	if args.Get(0) != nil {
		res = args.Get(0).([]model.User)
	}

	return res, args.Error(1)
}

func (c *C) ListGamesForWeek(ctx context.Context, week int, year int) ([]model.Game, error) {
	args := c.Called(ctx, week, year)

	var res []model.Game
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Game)
	}

	return res, args.Error(1)
}

func (c *C) RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
