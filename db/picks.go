package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (db *postgresDB) GetPickForWeek(ctx context.Context, userID uuid.UUID, week int) (*model.Pick, error) {
	const query = `SELECT id, user_id, week, team_id, game_id, status, created
					FROM picks
					WHERE user_id=@userID AND week=@week`

	args := pgx.NamedArgs{
		"userID": userID,
		"week":   week,
	}
	p, err := scanPick(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPickNotFound
		}
		return nil, fmt.Errorf("error reading pick for user %s week %d: %w", userID, week, err)
	}
	return p, nil
}

func (db *postgresDB) InsertPick(ctx context.Context, p *model.Pick) error {
	const query = `INSERT INTO picks (
			user_id,
			week,
			team_id,
			game_id,
			status
		) VALUES (
			@userID,
			@week,
			@teamID,
			@gameID,
			@status
		) RETURNING id, created`

	args := pgx.NamedArgs{
		"userID": p.UserID,
		"week":   p.Week,
		"teamID": p.TeamID,
		"gameID": p.GameID,
		"status": string(p.Status),
	}
	var created pgtype.Timestamptz
	err := db.pool.QueryRow(ctx, query, args).Scan(&p.ID, &created)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePick
		}
		return fmt.Errorf("error inserting pick for user %s week %d: %w", p.UserID, p.Week, err)
	}
	p.Created = created.Time
	return nil
}

func (db *postgresDB) ListPendingPicks(ctx context.Context, gameIDs []uuid.UUID) ([]model.Pick, error) {
	const query = `SELECT id, user_id, week, team_id, game_id, status, created
					FROM picks
					WHERE game_id = ANY(@gameIDs)
						AND (status IS NULL OR status='pending')`

	if len(gameIDs) == 0 {
		return nil, nil
	}

	args := pgx.NamedArgs{
		"gameIDs": gameIDs,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing pending picks: %w", err)
	}
	defer rows.Close()

	results := make([]model.Pick, 0, 16)
	for rows.Next() {
		p, err := scanPick(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning pick: %w", err)
		}
		results = append(results, *p)
	}
	return results, rows.Err()
}

func (db *postgresDB) UpdatePickStatuses(ctx context.Context, ids []uuid.UUID, status model.PickStatus) (int, error) {
	const query = `UPDATE picks SET status=@status WHERE id = ANY(@ids)`

	if len(ids) == 0 {
		return 0, nil
	}

	args := pgx.NamedArgs{
		"ids":    ids,
		"status": string(status),
	}
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return 0, fmt.Errorf("error updating picks to %s: %w", status, err)
	}
	return int(tag.RowsAffected()), nil
}

const pickDetailColumns = `p.id, p.user_id, p.week, p.team_id, p.game_id,
							p.status, p.created, t.code, t.name, g.start_time`

func (db *postgresDB) ListPicksForUser(ctx context.Context, userID uuid.UUID) ([]model.PickDetail, error) {
	const query = `SELECT ` + pickDetailColumns + `
					FROM picks p
						JOIN teams t ON t.id = p.team_id
						JOIN games g ON g.id = p.game_id
					WHERE p.user_id=@userID
					ORDER BY p.week ASC`

	args := pgx.NamedArgs{
		"userID": userID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing picks for user %s: %w", userID, err)
	}
	return scanPickDetails(rows)
}

func (db *postgresDB) ListPickedTeams(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `SELECT team_id FROM picks WHERE user_id=@userID`

	args := pgx.NamedArgs{
		"userID": userID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing picked teams for user %s: %w", userID, err)
	}
	defer rows.Close()

	results := make([]uuid.UUID, 0, 8)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning picked team: %w", err)
		}
		results = append(results, id)
	}
	return results, rows.Err()
}

func (db *postgresDB) ListPickDetails(ctx context.Context) ([]model.PickDetail, error) {
	const query = `SELECT ` + pickDetailColumns + `
					FROM picks p
						JOIN teams t ON t.id = p.team_id
						JOIN games g ON g.id = p.game_id
					ORDER BY p.week ASC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing pick details: %w", err)
	}
	return scanPickDetails(rows)
}

func scanPick(row pgx.Row) (*model.Pick, error) {
	var p model.Pick
	var status sql.NullString
	var created pgtype.Timestamptz
	err := row.Scan(&p.ID, &p.UserID, &p.Week, &p.TeamID, &p.GameID, &status, &created)
	if err != nil {
		return nil, err
	}

	// A null status means the pick has not been settled yet.
	p.Status = model.ParsePickStatus(valueOrEmpty(status))
	p.Created = created.Time
	return &p, nil
}

func scanPickDetails(rows pgx.Rows) ([]model.PickDetail, error) {
	defer rows.Close()

	results := make([]model.PickDetail, 0, 32)
	for rows.Next() {
		var d model.PickDetail
		var status sql.NullString
		var created, start pgtype.Timestamptz
		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.Week,
			&d.TeamID,
			&d.GameID,
			&status,
			&created,
			&d.TeamCode,
			&d.TeamName,
			&start)
		if err != nil {
			return nil, fmt.Errorf("error scanning pick detail: %w", err)
		}

		d.Status = model.ParsePickStatus(valueOrEmpty(status))
		d.Created = created.Time
		d.GameStart = start.Time
		results = append(results, d)
	}
	return results, rows.Err()
}
