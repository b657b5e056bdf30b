package controller

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/duanerilli/NFL-Pool-Backend/platforms/rapidapi"
	"github.com/google/uuid"
)

func (c *controller) SyncGames(ctx context.Context, season int, phase model.Phase, week int) (int, error) {
	if week < 1 {
		return 0, fmt.Errorf("week must be a positive number, got: %d", week)
	}

	// The provider cannot filter by week server-side, so pull the whole
	// season and filter here.
	events, err := c.provider.LoadGames(ctx, season)
	if err != nil {
		return 0, err
	}

	teams, err := c.db.ListTeams(ctx)
	if err != nil {
		return 0, err
	}
	nameToID := make(map[string]uuid.UUID, len(teams))
	for _, t := range teams {
		nameToID[normName(t.Name)] = t.ID
	}

	now := c.clock.Now().UTC()
	rows := make([]model.Game, 0, 16)
	for i := range events {
		e := &events[i]
		if normalizeWeek(e.WeekToken()) != week {
			continue
		}

		rid := e.GameID()
		homeID, homeOK := nameToID[normName(e.HomeName())]
		awayID, awayOK := nameToID[normName(e.AwayName())]
		if rid == "" || !homeOK || !awayOK {
			log.Printf("sync: skipping game (missing mapping): id=%q week=%q home=%q away=%q",
				rid, e.WeekToken(), e.HomeName(), e.AwayName())
			continue
		}

		var kickoff time.Time
		if epoch := e.Kickoff(); epoch != 0 {
			kickoff = time.Unix(epoch, 0).UTC()
		}
		start := kickoff
		if start.IsZero() {
			start = now
		}

		homeScore, awayScore := e.HomeScore(), e.AwayScore()
		rows = append(rows, model.Game{
			Season:         season,
			Phase:          phase,
			Week:           week,
			StartTime:      start,
			HomeTeamID:     homeID,
			AwayTeamID:     awayID,
			HomeScore:      homeScore,
			AwayScore:      awayScore,
			Status:         deriveStatus(e.StatusToken(), kickoff, homeScore, awayScore, now),
			Source:         rapidapi.Source,
			ProviderGameID: rid,
		})
	}

	if len(rows) == 0 {
		log.Printf("sync: no mappable games for season=%d %s", season, model.WeekLabel(phase, week))
		return 0, nil
	}

	count, err := c.db.UpsertGames(ctx, rows)
	if err != nil {
		return 0, err
	}

	log.Printf("sync: upserted %d games for %s, season %d", count, model.WeekLabel(phase, week), season)
	return count, nil
}

var weekDigits = regexp.MustCompile(`[0-9]+`)

// normalizeWeek reduces a raw week token like "Week 2" to its leading
// integer, returning 0 when the token has no digits.
func normalizeWeek(raw string) int {
	m := weekDigits.FindString(raw)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

func normName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var (
	finishedStatuses = map[string]bool{
		"final": true, "finished": true, "ft": true, "ended": true, "completed": true,
	}
	liveStatuses = map[string]bool{
		"in progress": true, "live": true, "halftime": true, "ot": true,
		"q1": true, "q2": true, "q3": true, "q4": true,
	}
)

// deriveStatus maps the provider's status vocabulary onto ours. When both
// scores are present the game is treated as final whatever the label says;
// provider status text is unreliable near the end of a game. A zero kickoff
// means the kickoff time is unknown.
func deriveStatus(raw string, kickoff time.Time, homeScore, awayScore *int, now time.Time) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	if finishedStatuses[token] {
		return model.GameStatusFinal
	}
	if liveStatuses[token] {
		return model.GameStatusInProgress
	}

	if homeScore != nil && awayScore != nil {
		return model.GameStatusFinal
	}
	if kickoff.IsZero() || now.Before(kickoff) {
		return model.GameStatusScheduled
	}
	return model.GameStatusInProgress
}
