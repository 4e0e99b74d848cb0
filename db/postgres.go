package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abalcs/sleeper-app/model"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrCacheMiss     error = errors.New("player cache entry not found")
	ErrRecapNotFound error = errors.New("recap not found")
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

func (db *postgresDB) GetPlayerCache(ctx context.Context, sport string) (*model.PlayerCacheEntry, error) {
	const query = `SELECT sport, blob, updated FROM player_cache WHERE sport=@sport`

	args := pgx.NamedArgs{
		"sport": sport,
	}
	row := db.pool.QueryRow(ctx, query, args)

	var entry model.PlayerCacheEntry
	var blob []byte
	var updated pgtype.Timestamptz
	if err := row.Scan(&entry.Sport, &blob, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("error scanning player cache for %s: %w", sport, err)
	}

	if err := json.Unmarshal(blob, &entry.Blob); err != nil {
		return nil, fmt.Errorf("error parsing player cache blob for %s: %w", sport, err)
	}
	entry.Updated = updated.Time

	return &entry, nil
}

func (db *postgresDB) UpsertPlayerCache(ctx context.Context, sport string, blob model.PlayerDirectory) error {
	const query = `INSERT INTO player_cache (sport, blob, updated)
					VALUES (@sport, @blob, @updated)
					ON CONFLICT (sport) DO UPDATE
						SET blob=excluded.blob, updated=excluded.updated`

	b, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("error encoding player cache blob: %w", err)
	}

	args := pgx.NamedArgs{
		"sport":   sport,
		"blob":    b,
		"updated": db.clock.Now().UTC(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error upserting player cache for %s: %w", sport, err)
	}
	return nil
}

func (db *postgresDB) GetRecap(ctx context.Context, leagueID string, week int) (*model.Recap, error) {
	const query = `SELECT league_id, week, style, recap, updated FROM recaps
					WHERE league_id=@leagueID AND week=@week`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
		"week":     week,
	}
	row := db.pool.QueryRow(ctx, query, args)

	var recap model.Recap
	var updated pgtype.Timestamptz
	if err := row.Scan(&recap.LeagueID, &recap.Week, &recap.Style, &recap.Text, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecapNotFound
		}
		return nil, fmt.Errorf("error scanning recap for %s week %d: %w", leagueID, week, err)
	}
	recap.Updated = updated.Time

	return &recap, nil
}

func (db *postgresDB) UpsertRecap(ctx context.Context, recap *model.Recap) error {
	const query = `INSERT INTO recaps (league_id, week, style, recap, updated)
					VALUES (@leagueID, @week, @style, @recap, @updated)
					ON CONFLICT (league_id, week) DO UPDATE
						SET style=excluded.style, recap=excluded.recap, updated=excluded.updated`

	args := pgx.NamedArgs{
		"leagueID": recap.LeagueID,
		"week":     recap.Week,
		"style":    recap.Style,
		"recap":    recap.Text,
		"updated":  db.clock.Now().UTC(),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error upserting recap for %s week %d: %w", recap.LeagueID, recap.Week, err)
	}
	return nil
}
