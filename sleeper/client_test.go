package sleeper

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abalcs/sleeper-app/testutils"
)

func TestGetUsers(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	users, err := c.GetUsers("99001122334455")
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("wrong number of users, expected 3, got %d", len(users))
	}

	if users[0].UserID != "100001" || users[0].DisplayName != "graysonfan" {
		t.Errorf("unexpected first user: %+v", users[0])
	}
	if users[0].TeamName() != "Gridiron Gurus" {
		t.Errorf("expected team name from metadata, got %q", users[0].TeamName())
	}
	if users[2].TeamName() != "" {
		t.Errorf("expected empty team name for null metadata, got %q", users[2].TeamName())
	}
}

func TestGetRosters(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	rosters, err := c.GetRosters("99001122334455")
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(rosters) != 4 {
		t.Fatalf("wrong number of rosters, expected 4, got %d", len(rosters))
	}

	first := rosters[0]
	if first.RosterID != 1 || first.OwnerID != "100001" {
		t.Errorf("unexpected first roster: %+v", first)
	}
	if first.Settings == nil || first.Settings.Wins != 1 || first.Settings.Fpts != 120.5 {
		t.Errorf("unexpected roster settings: %+v", first.Settings)
	}
}

func TestGetState(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	state, err := c.GetState()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if state.Week != 1 {
		t.Errorf("expected week 1, got %d", state.Week)
	}
	if state.Season != "2025" {
		t.Errorf("expected season 2025, got %s", state.Season)
	}
}

func TestGetMatchups(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	matchups, err := c.GetMatchups("99001122334455", 1)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(matchups) != 4 {
		t.Fatalf("wrong number of matchups, expected 4, got %d", len(matchups))
	}

	first := matchups[0]
	if first.RosterID != 1 || first.MatchupID != 1 {
		t.Errorf("unexpected first matchup: %+v", first)
	}
	if first.Points != 120.5 {
		t.Errorf("expected 120.5 points, got %f", first.Points)
	}
	if first.PlayersPoints["4881"] != 80.5 {
		t.Errorf("expected 80.5 points for 4881, got %f", first.PlayersPoints["4881"])
	}

	// Weeks without data return an empty list, not an error.
	empty, err := c.GetMatchups("99001122334455", 7)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no matchups for week 7, got %d", len(empty))
	}
}

func TestLoadPlayers(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	players, err := c.LoadPlayers()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(players) != 7 {
		t.Fatalf("wrong number of players, expected 7, got %d", len(players))
	}

	allen, found := players["4881"]
	if !found {
		t.Fatalf("expected to find player 4881")
	}
	if allen.DisplayName() != "Josh Allen" || allen.PrimaryPosition() != "QB" || allen.Team != "BUF" {
		t.Errorf("unexpected player data: %+v", allen)
	}

	// 7523 has an empty primary position and falls back to fantasy_positions.
	mcbride, found := players["7523"]
	if !found {
		t.Fatalf("expected to find player 7523")
	}
	if mcbride.PrimaryPosition() != "TE" {
		t.Errorf("expected TE from fantasy_positions, got %q", mcbride.PrimaryPosition())
	}
}

func TestGetProjections(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	projections, err := c.GetProjections("2025", 1)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	allen, found := projections["4881"]
	if !found {
		t.Fatalf("expected a projection for 4881")
	}
	if allen.Stats.PtsPPR == nil || *allen.Stats.PtsPPR != 22.4 {
		t.Errorf("unexpected projection for 4881: %+v", allen.Stats.PtsPPR)
	}

	// 8150 has a stats object with no pts_ppr entry.
	purdy, found := projections["8150"]
	if !found {
		t.Fatalf("expected a projection for 8150")
	}
	if purdy.Stats.PtsPPR != nil {
		t.Errorf("expected nil pts_ppr for 8150, got %f", *purdy.Stats.PtsPPR)
	}
}

func TestGetLeague(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	league, err := c.GetLeague("99001122334455")
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if !strings.Contains(string(league), `"league_id"`) {
		t.Errorf("expected raw league document, got: %s", string(league))
	}
}

func TestGetLeaguePlayers(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	players, err := c.GetLeaguePlayers("99001122334455")
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(players) != 5 {
		t.Fatalf("wrong number of players, expected 5, got %d", len(players))
	}
	if players["1049"].Status != "FA" {
		t.Errorf("expected 1049 to be a free agent, got %q", players["1049"].Status)
	}
}

func TestGetJSON_httpError(t *testing.T) {
	fakeSleeper := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
	}))
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL)

	users, err := c.GetUsers("99001122334455")
	if err == nil {
		t.Fatalf("error should not have been nil")
	}
	if users != nil {
		t.Fatalf("users should have been nil")
	}
}
