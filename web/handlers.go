package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/abalcs/sleeper-app/controller"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func renderError(render *render.Render, w http.ResponseWriter, status int, err error) {
	render.JSON(w, status, map[string]string{"error": err.Error()})
}

func healthHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func leagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		league, err := ctrl.GetLeague(r.Context(), leagueID)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, league)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		standings, err := ctrl.GetStandings(r.Context(), leagueID)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, standings)
	}
}

func matchupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}

		matchups, err := ctrl.GetMatchups(r.Context(), leagueID, week)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, matchups)
	}
}

func challengesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}

		result, err := ctrl.GetChallenge(r.Context(), leagueID, week)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, result)
	}
}

func positionTotalsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		position := chi.URLParam(r, "position")

		totals, err := ctrl.GetPositionTotals(r.Context(), leagueID, position)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, totals)
	}
}

func tradeRecommendationsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")

		var body struct {
			RosterID int `json:"rosterId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.RosterID == 0 {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Missing rosterId"})
			return
		}

		rec, err := ctrl.GetTradeRecommendations(r.Context(), leagueID, body.RosterID)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, rec)
	}
}

func getRecapHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}

		recap, err := ctrl.GetRecap(r.Context(), leagueID, week)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		if recap == nil {
			render.JSON(w, http.StatusOK, map[string]any{"recap": nil})
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"recap": recap.Text, "style": recap.Style})
	}
}

func generateRecapHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}

		var body struct {
			Style string `json:"style"`
			Force bool   `json:"force"`
		}
		// An empty body means default style, no force.
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}

		recap, err := ctrl.GenerateRecap(r.Context(), leagueID, week, body.Style, body.Force)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"recap": recap.Text, "style": recap.Style})
	}
}

// spaHandler serves the browser client for any route the API doesn't
// own. Real files under the build dir are served directly; everything
// else falls back to index.html so client-side routing works.
func spaHandler(clientDist string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if clientDist == "" {
			http.Error(w, "Frontend build not found. Did the client build step run?", http.StatusServiceUnavailable)
			return
		}

		index := filepath.Join(clientDist, "index.html")
		if _, err := os.Stat(index); err != nil {
			http.Error(w, "Frontend build not found. Did the client build step run?", http.StatusServiceUnavailable)
			return
		}

		requested := filepath.Join(clientDist, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			http.ServeFile(w, r, requested)
			return
		}
		http.ServeFile(w, r, index)
	}
}
