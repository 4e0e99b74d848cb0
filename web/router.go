package web

import (
	"time"

	"github.com/abalcs/sleeper-app/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, clientDist string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The dashboard may be served from a different origin during
	// development, so the API answers cross-origin requests.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// The aggregation endpoints make up to 18 sequential upstream
	// fetches and the recap/trade endpoints wait on a completion, so
	// the request budget is generous.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", healthHandler(render))

	r.Route("/api/league/{leagueID}", func(r chi.Router) {
		r.Get("/", leagueHandler(ctrl, render))
		r.Get("/standings", standingsHandler(ctrl, render))
		r.Get("/matchups/{week:\\d+}", matchupsHandler(ctrl, render))
		r.Get("/challenges/{week:\\d+}", challengesHandler(ctrl, render))
		r.Get("/position-totals/{position}", positionTotalsHandler(ctrl, render))
		r.Post("/trade-recommendations", tradeRecommendationsHandler(ctrl, render))
		r.Get("/recap/{week:\\d+}", getRecapHandler(ctrl, render))
		r.Post("/recap/{week:\\d+}", generateRecapHandler(ctrl, render))
	})

	// Anything else belongs to the single-page client.
	r.NotFound(spaHandler(clientDist))

	return r
}
