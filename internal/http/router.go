package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	accountHandler "github.com/MrJamesThe3rd/nestegg/internal/http/account"
	contributionHandler "github.com/MrJamesThe3rd/nestegg/internal/http/contribution"
	summaryHandler "github.com/MrJamesThe3rd/nestegg/internal/http/summary"
	valueHandler "github.com/MrJamesThe3rd/nestegg/internal/http/value"
)

// New assembles the API router. Routes sit at the root — the paths are the
// contract the web UI is built against. The service trusts its local
// network, so CORS is wide open and there is no auth layer.
func New(
	accounts *accountHandler.Handler,
	values *valueHandler.Handler,
	contributions *contributionHandler.Handler,
	summaries *summaryHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/accounts", accounts.Routes)
	router.Route("/values", values.Routes)
	router.Route("/future_contributions", contributions.Routes)

	// /summary and /settings live at the root.
	summaries.Routes(router)

	return router
}
