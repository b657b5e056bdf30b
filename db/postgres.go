package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/duanerilli/NFL-Pool-Backend/model"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTeamNotFound  error = errors.New("team not found")
	ErrGameNotFound  error = errors.New("game not found")
	ErrPickNotFound  error = errors.New("pick not found")
	ErrUserNotFound  error = errors.New("user not found")
	ErrDuplicatePick error = errors.New("pick already submitted for this week")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) GetTeamByCode(ctx context.Context, code string) (*model.Team, error) {
	const query = `SELECT id, code, name FROM teams WHERE code=@code`

	args := pgx.NamedArgs{
		"code": code,
	}
	var t model.Team
	err := db.pool.QueryRow(ctx, query, args).Scan(&t.ID, &t.Code, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error reading team %s: %w", code, err)
	}
	return &t, nil
}

func (db *postgresDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT id, code, name FROM teams ORDER BY code`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	defer rows.Close()

	results := make([]model.Team, 0, 32)
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Code, &t.Name); err != nil {
			return nil, fmt.Errorf("error scanning team: %w", err)
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

func (db *postgresDB) ListUsers(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, name FROM users ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	results := make([]model.User, 0, 16)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		results = append(results, u)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const query = `SELECT id, name FROM users WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	var u model.User
	err := db.pool.QueryRow(ctx, query, args).Scan(&u.ID, &u.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error reading user %s: %w", id, err)
	}
	return &u, nil
}

func (db *postgresDB) InsertUser(ctx context.Context, name string) (*model.User, error) {
	const query = `INSERT INTO users (name) VALUES (@name) RETURNING id, name`

	args := pgx.NamedArgs{
		"name": name,
	}
	var u model.User
	err := db.pool.QueryRow(ctx, query, args).Scan(&u.ID, &u.Name)
	if err != nil {
		return nil, fmt.Errorf("error inserting user: %w", err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
