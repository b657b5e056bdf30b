package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/google/uuid"
)

func (c *controller) SettlePicks(ctx context.Context, season int, phase model.Phase, week int) (int, error) {
	if week < 1 {
		return 0, fmt.Errorf("week must be a positive number, got: %d", week)
	}

	// Season is the calendar year of the kickoff.
	from := time.Date(season, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	games, err := c.db.ListScoredGames(ctx, phase, week, from, to)
	if err != nil {
		return 0, err
	}
	if len(games) == 0 {
		log.Printf("settle: no final games for %s, season %d", model.WeekLabel(phase, week), season)
		return 0, nil
	}

	type outcome struct {
		winner uuid.UUID
		tie    bool
	}
	outcomes := make(map[uuid.UUID]outcome, len(games))
	gameIDs := make([]uuid.UUID, 0, len(games))
	for i := range games {
		g := &games[i]
		winner, tie, ok := g.Outcome()
		if !ok {
			continue
		}
		outcomes[g.ID] = outcome{winner: winner, tie: tie}
		gameIDs = append(gameIDs, g.ID)
	}

	picks, err := c.db.ListPendingPicks(ctx, gameIDs)
	if err != nil {
		return 0, err
	}
	if len(picks) == 0 {
		log.Printf("settle: no pending picks for %s, season %d", model.WeekLabel(phase, week), season)
		return 0, nil
	}

	var wins, losses, pushes []uuid.UUID
	for _, p := range picks {
		o, ok := outcomes[p.GameID]
		if !ok {
			continue
		}
		switch {
		case o.tie:
			pushes = append(pushes, p.ID)
		case p.TeamID == o.winner:
			wins = append(wins, p.ID)
		default:
			losses = append(losses, p.ID)
		}
	}

	// Three id-scoped bulk updates rather than one transaction. A failure
	// part way through leaves the later buckets pending; re-running settles
	// them because only pending picks are ever selected.
	buckets := []struct {
		ids    []uuid.UUID
		status model.PickStatus
	}{
		{ids: wins, status: model.PickWin},
		{ids: losses, status: model.PickLoss},
		{ids: pushes, status: model.PickPush},
	}

	total := 0
	for _, b := range buckets {
		if len(b.ids) == 0 {
			continue
		}
		n, err := c.db.UpdatePickStatuses(ctx, b.ids, b.status)
		if err != nil {
			return total, fmt.Errorf("error settling %s picks: %w", b.status, err)
		}
		total += n
	}

	log.Printf("settle: settled %d picks across %d final games for %s", total, len(games), model.WeekLabel(phase, week))
	return total, nil
}
