package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/RyanHagen77/dwella-app-sub003/internal/auth"
	authnHandler "github.com/RyanHagen77/dwella-app-sub003/internal/http/authn"
	homeHandler "github.com/RyanHagen77/dwella-app-sub003/internal/http/home"
	recordHandler "github.com/RyanHagen77/dwella-app-sub003/internal/http/record"
	submissionHandler "github.com/RyanHagen77/dwella-app-sub003/internal/http/submission"
	verificationHandler "github.com/RyanHagen77/dwella-app-sub003/internal/http/verification"
)

func New(
	sessions *auth.Sessions,
	authnV1 *authnHandler.Handler,
	homesV1 *homeHandler.Handler,
	verificationsV1 *verificationHandler.Handler,
	submissionsV1 *submissionHandler.Handler,
	recordsV1 *recordHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authnV1.Routes(r)

			r.With(sessions.Require).Get("/me", authnV1.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(sessions.Require)

			r.Route("/homes", func(r chi.Router) {
				homesV1.Routes(r)

				r.Route("/{homeID}", func(r chi.Router) {
					homesV1.HomeRoutes(r)
					verificationsV1.Routes(r)
					submissionsV1.Routes(r)
					recordsV1.Routes(r)
				})
			})
		})
	})

	return router
}
