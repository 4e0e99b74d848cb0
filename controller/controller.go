package controller

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/abalcs/sleeper-app/db"
	"github.com/abalcs/sleeper-app/model"
	"github.com/abalcs/sleeper-app/sleeper"
	"github.com/abalcs/sleeper-app/textgen"
	"github.com/itbasis/go-clock"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// GetLeague passes the raw league document through unmodified.
	GetLeague(ctx context.Context, leagueID string) (json.RawMessage, error)
	// GetStandings returns every roster with its platform-reported
	// record, sorted by wins then points-for, with a 1-based rank.
	GetStandings(ctx context.Context, leagueID string) ([]model.Standing, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]model.EnrichedMatchup, error)
	GetChallenge(ctx context.Context, leagueID string, week int) (*model.ChallengeResult, error)
	// GetPositionTotals sums every roster's player points at one
	// position across weeks 1 through the current week.
	GetPositionTotals(ctx context.Context, leagueID, position string) (*model.PositionTotals, error)
	// GetTradeRecommendations flags the roster's below-median positions,
	// finds above-median positions on other rosters, and asks the text
	// provider for advice. A roster with no weaknesses short-circuits
	// with a fixed message and no provider call.
	GetTradeRecommendations(ctx context.Context, leagueID string, rosterID int) (*model.TradeRecommendation, error)
	// GetRecap returns the stored recap for (leagueID, week), or nil
	// when none has been generated yet.
	GetRecap(ctx context.Context, leagueID string, week int) (*model.Recap, error)
	GenerateRecap(ctx context.Context, leagueID string, week int, style string, force bool) (*model.Recap, error)
	RunPeriodicPlayerRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock   clock.Clock
	db      db.DB
	sleeper sleeper.Client
	textgen textgen.Client
}

func New(clock clock.Clock, db db.DB, sleeper sleeper.Client, textgen textgen.Client) (C, error) {
	c := &controller{
		clock:   clock,
		db:      db,
		sleeper: sleeper,
		textgen: textgen,
	}
	return c, nil
}

func (c *controller) GetLeague(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return c.sleeper.GetLeague(leagueID)
}
