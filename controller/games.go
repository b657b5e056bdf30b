package controller

import (
	"context"
	"fmt"

	"github.com/duanerilli/NFL-Pool-Backend/model"
)

func (c *controller) ListGamesForWeek(ctx context.Context, week int, year int) ([]model.Game, error) {
	if week < 1 {
		return nil, fmt.Errorf("week must be a positive number, got: %d", week)
	}
	return c.db.ListGamesForWeek(ctx, week, year)
}
