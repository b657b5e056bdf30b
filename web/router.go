package web

import (
	"time"

	"github.com/duanerilli/NFL-Pool-Backend/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler(render))
		r.Get("/leaderboard", leaderboardHandler(ctrl, render))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", createUserHandler(ctrl, render))
			r.Get("/", listUsersHandler(ctrl, render))
		})

		r.Route("/picks", func(r chi.Router) {
			r.Post("/", submitPickHandler(ctrl, render))
			r.Get("/history/{userID}", pickHistoryHandler(ctrl, render))
			r.Get("/available/{userID}", availableTeamsHandler(ctrl, render))
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/current-week", currentWeekHandler(ctrl, render))
			r.Get("/week/{week:\\d+}", gamesForWeekHandler(ctrl, render))
			r.Get("/{year:\\d{4}}/{week:\\d+}", gamesForYearWeekHandler(ctrl, render))
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("pool", map[string]string{"admin": "pa55word"})) // TODO: read from DB instead
		r.Use(middleware.Timeout(2 * time.Minute))                                  // Syncs pull a full season feed

		r.Post("/sync", syncHandler(ctrl, render))
		r.Post("/settle", settleHandler(ctrl, render))
	})

	return r
}
