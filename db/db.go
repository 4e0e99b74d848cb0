package db

import (
	"context"

	"github.com/abalcs/sleeper-app/model"
)

type DB interface {
	// GetPlayerCache returns the cached player directory for a sport,
	// or ErrCacheMiss when no entry has ever been written.
	GetPlayerCache(ctx context.Context, sport string) (*model.PlayerCacheEntry, error)
	// UpsertPlayerCache replaces the blob and timestamp for a sport.
	// There is exactly one row per sport and rows are never removed.
	UpsertPlayerCache(ctx context.Context, sport string, blob model.PlayerDirectory) error

	// GetRecap returns the stored recap for (leagueID, week), or
	// ErrRecapNotFound.
	GetRecap(ctx context.Context, leagueID string, week int) (*model.Recap, error)
	// UpsertRecap writes a recap, overwriting any existing recap for
	// the same (leagueID, week).
	UpsertRecap(ctx context.Context, recap *model.Recap) error
}
