package mockcontroller

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/abalcs/sleeper-app/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetLeague(ctx context.Context, leagueID string) (json.RawMessage, error) {
	args := c.Called(ctx, leagueID)

	var l json.RawMessage
	if args.Get(0) != nil {
		l = args.Get(0).(json.RawMessage)
	}
	return l, args.Error(1)
}

func (c *C) GetStandings(ctx context.Context, leagueID string) ([]model.Standing, error) {
	args := c.Called(ctx, leagueID)

	var s []model.Standing
	if args.Get(0) != nil {
		s = args.Get(0).([]model.Standing)
	}
	return s, args.Error(1)
}

func (c *C) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.EnrichedMatchup, error) {
	args := c.Called(ctx, leagueID, week)

	var m []model.EnrichedMatchup
	if args.Get(0) != nil {
		m = args.Get(0).([]model.EnrichedMatchup)
	}
	return m, args.Error(1)
}

func (c *C) GetChallenge(ctx context.Context, leagueID string, week int) (*model.ChallengeResult, error) {
	args := c.Called(ctx, leagueID, week)

	var r *model.ChallengeResult
	if args.Get(0) != nil {
		r = args.Get(0).(*model.ChallengeResult)
	}
	return r, args.Error(1)
}

func (c *C) GetPositionTotals(ctx context.Context, leagueID, position string) (*model.PositionTotals, error) {
	args := c.Called(ctx, leagueID, position)

	var t *model.PositionTotals
	if args.Get(0) != nil {
		t = args.Get(0).(*model.PositionTotals)
	}
	return t, args.Error(1)
}

func (c *C) GetTradeRecommendations(ctx context.Context, leagueID string, rosterID int) (*model.TradeRecommendation, error) {
	args := c.Called(ctx, leagueID, rosterID)

	var r *model.TradeRecommendation
	if args.Get(0) != nil {
		r = args.Get(0).(*model.TradeRecommendation)
	}
	return r, args.Error(1)
}

func (c *C) GetRecap(ctx context.Context, leagueID string, week int) (*model.Recap, error) {
	args := c.Called(ctx, leagueID, week)

	var r *model.Recap
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Recap)
	}
	return r, args.Error(1)
}

func (c *C) GenerateRecap(ctx context.Context, leagueID string, week int, style string, force bool) (*model.Recap, error) {
	args := c.Called(ctx, leagueID, week, style, force)

	var r *model.Recap
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Recap)
	}
	return r, args.Error(1)
}

func (c *C) RunPeriodicPlayerRefresh(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
