package mockrapidapi

import (
	"context"

	"github.com/duanerilli/NFL-Pool-Backend/platforms/rapidapi"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadGames(ctx context.Context, season int) ([]rapidapi.Event, error) {
	args := c.Called(ctx, season)

	var res []rapidapi.Event
	if args.Get(0) != nil {
		res = args.Get(0).([]rapidapi.Event)
	}

	return res, args.Error(1)
}
