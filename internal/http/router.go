package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gisuarez/expenso/internal/http/auth"
	"github.com/gisuarez/expenso/internal/http/expense"
	"github.com/gisuarez/expenso/internal/http/export"
	"github.com/gisuarez/expenso/internal/http/importcsv"
	"github.com/gisuarez/expenso/internal/http/summary"
)

func New(
	authV1 *auth.Handler,
	expensesV1 *expense.Handler,
	summaryV1 *summary.Handler,
	exportV1 *export.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authV1.Authenticator)

			r.Delete("/account", authV1.DeleteAccount)

			r.Route("/expenses", func(r chi.Router) {
				expensesV1.Routes(r)
			})

			r.Route("/summary", func(r chi.Router) {
				summaryV1.Routes(r)
			})

			r.Route("/export", func(r chi.Router) {
				exportV1.Routes(r)
			})

			r.Route("/import", importV1.Routes)
		})
	})

	return router
}
