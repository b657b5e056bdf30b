package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const gameColumns = `id, season, phase, week, start_time, home_team_id,
						away_team_id, home_score, away_score, status,
						source, provider_game_id`

func (db *postgresDB) GetNextGame(ctx context.Context, phase model.Phase, after time.Time) (*model.Game, error) {
	const query = `SELECT ` + gameColumns + `
					FROM games
					WHERE phase=@phase AND start_time > @after
					ORDER BY start_time ASC
					LIMIT 1`

	args := pgx.NamedArgs{
		"phase": string(phase),
		"after": timestamptz(after),
	}
	g, err := scanGame(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error reading next game for phase %s: %w", phase, err)
	}
	return g, nil
}

func (db *postgresDB) GetMaxWeek(ctx context.Context, phase model.Phase) (int, error) {
	const query = `SELECT COALESCE(MAX(week), 0) FROM games WHERE phase=@phase`

	args := pgx.NamedArgs{
		"phase": string(phase),
	}
	var week int
	if err := db.pool.QueryRow(ctx, query, args).Scan(&week); err != nil {
		return 0, fmt.Errorf("error reading max week for phase %s: %w", phase, err)
	}
	return week, nil
}

func (db *postgresDB) ListGamesForWeek(ctx context.Context, week int, year int) ([]model.Game, error) {
	const query = `SELECT ` + gameColumns + `
					FROM games
					WHERE week=@week
					ORDER BY start_time ASC`

	const yearQuery = `SELECT ` + gameColumns + `
					FROM games
					WHERE week=@week AND start_time >= @from AND start_time < @to
					ORDER BY start_time ASC`

	args := pgx.NamedArgs{
		"week": week,
	}
	q := query
	if year > 0 {
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		args["from"] = timestamptz(from)
		args["to"] = timestamptz(from.AddDate(1, 0, 0))
		q = yearQuery
	}

	rows, err := db.pool.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("error listing games for week %d: %w", week, err)
	}
	return scanGames(rows)
}

func (db *postgresDB) ListScoredGames(ctx context.Context, phase model.Phase, week int, from, to time.Time) ([]model.Game, error) {
	const query = `SELECT ` + gameColumns + `
					FROM games
					WHERE phase=@phase AND week=@week
						AND start_time >= @from AND start_time < @to
						AND home_score IS NOT NULL AND away_score IS NOT NULL
					ORDER BY start_time ASC`

	args := pgx.NamedArgs{
		"phase": string(phase),
		"week":  week,
		"from":  timestamptz(from),
		"to":    timestamptz(to),
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing scored games for %s: %w", model.WeekLabel(phase, week), err)
	}
	return scanGames(rows)
}

func (db *postgresDB) ListStartedGames(ctx context.Context, phase model.Phase, week int, asOf time.Time) ([]model.Game, error) {
	const query = `SELECT ` + gameColumns + `
					FROM games
					WHERE phase=@phase AND week=@week AND start_time <= @asOf
					ORDER BY start_time ASC`

	args := pgx.NamedArgs{
		"phase": string(phase),
		"week":  week,
		"asOf":  timestamptz(asOf),
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing started games for %s: %w", model.WeekLabel(phase, week), err)
	}
	return scanGames(rows)
}

func (db *postgresDB) FindOpenGameForTeam(ctx context.Context, phase model.Phase, week int, teamID uuid.UUID, after time.Time) (*model.Game, error) {
	const query = `SELECT ` + gameColumns + `
					FROM games
					WHERE week=@week
						AND (home_team_id=@teamID OR away_team_id=@teamID)
						AND start_time > @after
						AND (@phase = '' OR phase=@phase)
					ORDER BY start_time ASC
					LIMIT 1`

	args := pgx.NamedArgs{
		"week":   week,
		"teamID": teamID,
		"after":  timestamptz(after),
		"phase":  string(phase),
	}
	g, err := scanGame(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error finding open game for team %s in week %d: %w", teamID, week, err)
	}
	return g, nil
}

func (db *postgresDB) UpsertGames(ctx context.Context, games []model.Game) (int, error) {
	const upsert = `INSERT INTO games (
			source,
			provider_game_id,
			season,
			phase,
			week,
			start_time,
			home_team_id,
			away_team_id,
			home_score,
			away_score,
			status
		) VALUES (
			@source,
			@providerGameID,
			@season,
			@phase,
			@week,
			@startTime,
			@homeTeamID,
			@awayTeamID,
			@homeScore,
			@awayScore,
			@status
		) ON CONFLICT (source, provider_game_id) DO UPDATE SET
			season=EXCLUDED.season,
			phase=EXCLUDED.phase,
			week=EXCLUDED.week,
			start_time=EXCLUDED.start_time,
			home_team_id=EXCLUDED.home_team_id,
			away_team_id=EXCLUDED.away_team_id,
			home_score=EXCLUDED.home_score,
			away_score=EXCLUDED.away_score,
			status=EXCLUDED.status`

	if len(games) == 0 {
		return 0, nil
	}

	// All rows go in one transaction so a partial provider payload never
	// leaves the week half written.
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("error starting game upsert transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	count := 0
	for i := range games {
		g := &games[i]
		args := pgx.NamedArgs{
			"source":         g.Source,
			"providerGameID": g.ProviderGameID,
			"season":         g.Season,
			"phase":          string(g.Phase),
			"week":           g.Week,
			"startTime":      timestamptz(g.StartTime),
			"homeTeamID":     g.HomeTeamID,
			"awayTeamID":     g.AwayTeamID,
			"homeScore":      nullInt(g.HomeScore),
			"awayScore":      nullInt(g.AwayScore),
			"status": sql.NullString{
				String: g.Status,
				Valid:  g.Status != "",
			},
		}
		if _, err := tx.Exec(ctx, upsert, args); err != nil {
			return 0, fmt.Errorf("error upserting game %s/%s: %w", g.Source, g.ProviderGameID, err)
		}
		count++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("error commiting game upsert transaction: %w", err)
	}
	return count, nil
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var g model.Game
	var phase string
	var start pgtype.Timestamptz
	var homeScore, awayScore sql.NullInt32
	var status, source, providerGameID sql.NullString
	err := row.Scan(
		&g.ID,
		&g.Season,
		&phase,
		&g.Week,
		&start,
		&g.HomeTeamID,
		&g.AwayTeamID,
		&homeScore,
		&awayScore,
		&status,
		&source,
		&providerGameID)

	if err != nil {
		return nil, err
	}

	g.Phase = model.Phase(phase)
	g.StartTime = start.Time
	g.HomeScore = intOrNil(homeScore)
	g.AwayScore = intOrNil(awayScore)
	g.Status = valueOrEmpty(status)
	g.Source = valueOrEmpty(source)
	g.ProviderGameID = valueOrEmpty(providerGameID)

	return &g, nil
}

func scanGames(rows pgx.Rows) ([]model.Game, error) {
	defer rows.Close()

	results := make([]model.Game, 0, 16)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning game: %w", err)
		}
		results = append(results, *g)
	}
	return results, rows.Err()
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             t.UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}

func nullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func intOrNil(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
