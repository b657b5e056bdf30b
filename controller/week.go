package controller

import (
	"context"
	"errors"

	"github.com/duanerilli/NFL-Pool-Backend/db"
	"github.com/duanerilli/NFL-Pool-Backend/model"
)

// The current week is always re-derived from the schedule instead of being
// maintained by a writer, so it self-heals after every sync.

func (c *controller) ResolveCurrentWeek(ctx context.Context) (model.Phase, int, error) {
	now := c.clock.Now().UTC()

	// 1) The earliest future kickoff, checking phases in preference order.
	for _, phase := range model.PhasePreference {
		g, err := c.db.GetNextGame(ctx, phase, now)
		if err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				continue
			}
			return "", 0, err
		}
		return phase, g.Week, nil
	}

	// 2) No phase has upcoming games; treat the latest known week as current.
	for _, phase := range model.PhasePreference {
		week, err := c.db.GetMaxWeek(ctx, phase)
		if err != nil {
			return "", 0, err
		}
		if week > 0 {
			return phase, week, nil
		}
	}

	// 3) Empty store.
	return model.PhaseReg, 1, nil
}

func (c *controller) ResolveWeek(ctx context.Context, phase model.Phase) (int, error) {
	now := c.clock.Now().UTC()

	g, err := c.db.GetNextGame(ctx, phase, now)
	if err == nil {
		return g.Week, nil
	}
	if !errors.Is(err, db.ErrGameNotFound) {
		return 0, err
	}

	week, err := c.db.GetMaxWeek(ctx, phase)
	if err != nil {
		return 0, err
	}
	if week == 0 {
		week = 1
	}
	return week, nil
}
