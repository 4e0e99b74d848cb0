package sleeper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/abalcs/sleeper-app/model"
)

const SleeperURL = "https://api.sleeper.app"

// requestTimeout is the full budget for a single upstream call. There
// are no retries; a failure propagates straight to the caller.
const requestTimeout = 15 * time.Second

type Client interface {
	// GetLeague returns the raw league document unmodified. The shape
	// is owned by sleeper and passed through to the dashboard as-is.
	GetLeague(leagueID string) (json.RawMessage, error)
	GetUsers(leagueID string) ([]model.User, error)
	GetRosters(leagueID string) ([]model.Roster, error)
	GetMatchups(leagueID string, week int) ([]model.Matchup, error)
	GetState() (*model.NFLState, error)
	GetProjections(season string, week int) (map[string]model.Projection, error)
	// LoadPlayers fetches the entire player directory. The response is
	// large (several MB) so callers are expected to cache it.
	LoadPlayers() (model.PlayerDirectory, error)
	// GetLeaguePlayers returns the league's player pool, including
	// unrostered players used for free-agent suggestions.
	GetLeaguePlayers(leagueID string) (map[string]model.PlayerInfo, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: SleeperURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
	return c, nil
}

// NewForTest returns a client pointed at a fake sleeper server.
func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *client) GetLeague(leagueID string) (json.RawMessage, error) {
	var league json.RawMessage
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s", leagueID), &league); err != nil {
		return nil, err
	}
	return league, nil
}

func (c *client) GetUsers(leagueID string) ([]model.User, error) {
	var users []model.User
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s/users", leagueID), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *client) GetRosters(leagueID string) ([]model.Roster, error) {
	var rosters []model.Roster
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s/rosters", leagueID), &rosters); err != nil {
		return nil, err
	}
	return rosters, nil
}

func (c *client) GetMatchups(leagueID string, week int) ([]model.Matchup, error) {
	var matchups []model.Matchup
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s/matchups/%d", leagueID, week), &matchups); err != nil {
		return nil, err
	}
	return matchups, nil
}

func (c *client) GetState() (*model.NFLState, error) {
	var state model.NFLState
	if err := c.getJSON("/v1/state/nfl", &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *client) GetProjections(season string, week int) (map[string]model.Projection, error) {
	var projections map[string]model.Projection
	if err := c.getJSON(fmt.Sprintf("/v1/projections/nfl/%s/%d", season, week), &projections); err != nil {
		return nil, err
	}
	return projections, nil
}

func (c *client) LoadPlayers() (model.PlayerDirectory, error) {
	var players model.PlayerDirectory
	if err := c.getJSON("/v1/players/nfl", &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (c *client) GetLeaguePlayers(leagueID string) (map[string]model.PlayerInfo, error) {
	var players map[string]model.PlayerInfo
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s/players", leagueID), &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (c *client) getJSON(path string, v any) error {
	req, err := http.NewRequest(http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
