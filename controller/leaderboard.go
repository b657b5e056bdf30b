package controller

import (
	"context"

	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/google/uuid"
)

func (c *controller) GetLeaderboard(ctx context.Context) (*model.Leaderboard, error) {
	users, err := c.db.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	// Already ordered by week, so each user's history comes out sorted.
	picks, err := c.db.ListPickDetails(ctx)
	if err != nil {
		return nil, err
	}

	byUser := make(map[uuid.UUID][]model.PickDetail, len(users))
	for _, p := range picks {
		byUser[p.UserID] = append(byUser[p.UserID], p)
	}

	lb := &model.Leaderboard{
		StillIn:    make([]model.LeaderboardRow, 0, len(users)),
		Eliminated: make([]model.LeaderboardRow, 0, len(users)),
	}
	for _, u := range users {
		history := byUser[u.ID]
		row := model.LeaderboardRow{
			ID:    u.ID,
			Name:  u.Name,
			Picks: make([]model.LeaderboardPick, 0, len(history)),
		}
		for _, p := range history {
			row.Picks = append(row.Picks, model.LeaderboardPick{
				Week:     p.Week,
				TeamCode: p.TeamCode,
				Status:   p.Status,
				StartsAt: p.GameStart,
			})
			// House rule: a win knocks you out of this pool.
			if p.Status == model.PickWin {
				row.Eliminated = true
			}
		}

		if row.Eliminated {
			lb.Eliminated = append(lb.Eliminated, row)
		} else {
			lb.StillIn = append(lb.StillIn, row)
		}
	}

	return lb, nil
}
