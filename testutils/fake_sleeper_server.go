package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed sleeperdata
var sleeperdata embed.FS

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players/nfl", nflPlayersHandler)
		r.Get("/state/nfl", nflStateHandler)
		r.Get("/projections/nfl/{season}/{week}", projectionsHandler)

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/users", leagueUsersHandler)
			r.Get("/rosters", leagueRostersHandler)
			r.Get("/matchups/{week}", leagueMatchupsHandler)
			r.Get("/players", leaguePlayersHandler)
		})
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func nflStateHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "state.json")
}

func projectionsHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "projections.json")
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "league.json")
}

func leagueUsersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "users.json")
}

func leagueRostersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "rosters.json")
}

func leagueMatchupsHandler(w http.ResponseWriter, r *http.Request) {
	week := chi.URLParam(r, "week")
	if week == "1" {
		serveFile(w, "matchups_1.json")
	} else {
		// Future weeks have no matchup data yet.
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func leaguePlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "league_players.json")
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
