package mocksleeper

import (
	"encoding/json"

	"github.com/abalcs/sleeper-app/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetLeague(leagueID string) (json.RawMessage, error) {
	args := c.Called(leagueID)

	var l json.RawMessage
	if args.Get(0) != nil {
		l = args.Get(0).(json.RawMessage)
	}
	return l, args.Error(1)
}

func (c *Client) GetUsers(leagueID string) ([]model.User, error) {
	args := c.Called(leagueID)

	var u []model.User
	if args.Get(0) != nil {
		u = args.Get(0).([]model.User)
	}
	return u, args.Error(1)
}

func (c *Client) GetRosters(leagueID string) ([]model.Roster, error) {
	args := c.Called(leagueID)

	var r []model.Roster
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Roster)
	}
	return r, args.Error(1)
}

func (c *Client) GetMatchups(leagueID string, week int) ([]model.Matchup, error) {
	args := c.Called(leagueID, week)

	var m []model.Matchup
	if args.Get(0) != nil {
		m = args.Get(0).([]model.Matchup)
	}
	return m, args.Error(1)
}

func (c *Client) GetState() (*model.NFLState, error) {
	args := c.Called()

	var s *model.NFLState
	if args.Get(0) != nil {
		s = args.Get(0).(*model.NFLState)
	}
	return s, args.Error(1)
}

func (c *Client) GetProjections(season string, week int) (map[string]model.Projection, error) {
	args := c.Called(season, week)

	var p map[string]model.Projection
	if args.Get(0) != nil {
		p = args.Get(0).(map[string]model.Projection)
	}
	return p, args.Error(1)
}

func (c *Client) LoadPlayers() (model.PlayerDirectory, error) {
	args := c.Called()

	var d model.PlayerDirectory
	if args.Get(0) != nil {
		d = args.Get(0).(model.PlayerDirectory)
	}
	return d, args.Error(1)
}

func (c *Client) GetLeaguePlayers(leagueID string) (map[string]model.PlayerInfo, error) {
	args := c.Called(leagueID)

	var p map[string]model.PlayerInfo
	if args.Get(0) != nil {
		p = args.Get(0).(map[string]model.PlayerInfo)
	}
	return p, args.Error(1)
}
