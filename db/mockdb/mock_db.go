package mockdb

import (
	"context"

	"github.com/abalcs/sleeper-app/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayerCache(ctx context.Context, sport string) (*model.PlayerCacheEntry, error) {
	args := db.Called(ctx, sport)

	var e *model.PlayerCacheEntry
	if args.Get(0) != nil {
		e = args.Get(0).(*model.PlayerCacheEntry)
	}
	return e, args.Error(1)
}

func (db *DB) UpsertPlayerCache(ctx context.Context, sport string, blob model.PlayerDirectory) error {
	args := db.Called(ctx, sport, blob)
	return args.Error(0)
}

func (db *DB) GetRecap(ctx context.Context, leagueID string, week int) (*model.Recap, error) {
	args := db.Called(ctx, leagueID, week)

	var r *model.Recap
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Recap)
	}
	return r, args.Error(1)
}

func (db *DB) UpsertRecap(ctx context.Context, recap *model.Recap) error {
	args := db.Called(ctx, recap)
	return args.Error(0)
}
