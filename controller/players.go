package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/abalcs/sleeper-app/db"
	"github.com/abalcs/sleeper-app/model"
)

// playerCacheTTL is how long a persisted player directory stays fresh.
// The directory changes slowly, so refreshing just under daily keeps it
// current without hammering the upstream.
const playerCacheTTL = 22 * time.Hour

// getPlayers returns the player directory, refreshing the persisted
// copy when it is missing or older than playerCacheTTL. A failed
// refresh fails the call; stale data is never served from the refresh
// path.
func (c *controller) getPlayers(ctx context.Context) (model.PlayerDirectory, error) {
	entry, err := c.db.GetPlayerCache(ctx, model.SportNFL)
	if err != nil && !errors.Is(err, db.ErrCacheMiss) {
		return nil, fmt.Errorf("error reading player cache: %w", err)
	}
	if entry != nil && c.clock.Now().Sub(entry.Updated) <= playerCacheTTL {
		return entry.Blob, nil
	}

	blob, err := c.sleeper.LoadPlayers()
	if err != nil {
		return nil, fmt.Errorf("error loading players from sleeper: %w", err)
	}
	if err := c.db.UpsertPlayerCache(ctx, model.SportNFL, blob); err != nil {
		return nil, fmt.Errorf("error saving player cache: %w", err)
	}
	return blob, nil
}

// RunPeriodicPlayerRefresh keeps the player cache warm so the first
// request after a quiet stretch doesn't pay for the full directory
// download. It runs through the same staleness check as request-path
// reads.
func (c *controller) RunPeriodicPlayerRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)

			start := c.clock.Now()
			if _, err := c.getPlayers(ctx); err != nil {
				log.Printf("error refreshing player cache: %v", err)
			} else {
				log.Printf("player cache refresh finished, took %v", c.clock.Now().Sub(start))
			}
			cancel()
		}
	}
}
