package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/duanerilli/NFL-Pool-Backend/db"
	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/google/uuid"
)

func (c *controller) SubmitPick(ctx context.Context, userID uuid.UUID, phase model.Phase, week int, teamCode string) (*model.PickDetail, error) {
	if week < 1 {
		return nil, fmt.Errorf("week must be a positive number, got: %d", week)
	}

	code := strings.ToUpper(strings.TrimSpace(teamCode))
	team, err := c.db.GetTeamByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now().UTC()
	game, err := c.db.FindOpenGameForTeam(ctx, phase, week, team.ID, now)
	if err != nil {
		return nil, err
	}

	// Reject a second pick for the week up front. The unique index on
	// (user_id, week) backstops this read against races.
	if _, err := c.db.GetPickForWeek(ctx, userID, week); err == nil {
		return nil, db.ErrDuplicatePick
	} else if !errors.Is(err, db.ErrPickNotFound) {
		return nil, err
	}

	p := &model.Pick{
		UserID: userID,
		Week:   week,
		TeamID: team.ID,
		GameID: game.ID,
		Status: model.PickPending,
	}
	if err := c.db.InsertPick(ctx, p); err != nil {
		return nil, err
	}

	return &model.PickDetail{
		Pick:      *p,
		TeamCode:  team.Code,
		TeamName:  team.Name,
		GameStart: game.StartTime,
	}, nil
}

func (c *controller) GetPickHistory(ctx context.Context, userID uuid.UUID) ([]model.PickDetail, error) {
	return c.db.ListPicksForUser(ctx, userID)
}

func (c *controller) AvailableTeams(ctx context.Context, userID uuid.UUID, phase model.Phase, week int, ignoreLock bool) (model.Phase, int, []string, error) {
	// Fill in whatever the caller left out from the schedule.
	if phase == "" {
		p, w, err := c.ResolveCurrentWeek(ctx)
		if err != nil {
			return "", 0, nil, err
		}
		phase = p
		if week < 1 {
			week = w
		}
	} else if week < 1 {
		w, err := c.ResolveWeek(ctx, phase)
		if err != nil {
			return "", 0, nil, err
		}
		week = w
	}

	picked, err := c.db.ListPickedTeams(ctx, userID)
	if err != nil {
		return "", 0, nil, err
	}
	pickedIDs := make(map[uuid.UUID]bool, len(picked))
	for _, id := range picked {
		pickedIDs[id] = true
	}

	lockedIDs := make(map[uuid.UUID]bool)
	if !ignoreLock {
		started, err := c.db.ListStartedGames(ctx, phase, week, c.clock.Now().UTC())
		if err != nil {
			return "", 0, nil, err
		}
		for _, g := range started {
			lockedIDs[g.HomeTeamID] = true
			lockedIDs[g.AwayTeamID] = true
		}
	}

	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return "", 0, nil, err
	}

	available := make([]string, 0, len(teams))
	for _, t := range teams {
		if pickedIDs[t.ID] || lockedIDs[t.ID] {
			continue
		}
		available = append(available, t.Code)
	}

	return phase, week, available, nil
}
