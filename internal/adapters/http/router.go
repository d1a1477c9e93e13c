package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter wires the two public endpoints. The checkout group answers CORS
// preflight with the fixed allow-list before any business logic runs; the
// webhook endpoint is called server-to-server and carries no CORS handling.
// On preflight the cors middleware echoes the requested method rather than
// the full POST, OPTIONS set, which satisfies the same allow-list.
func NewRouter(handler *Handler, allowedOrigin string) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)

	r.Get("/health", handler.health)

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: []string{allowedOrigin},
				AllowedMethods: []string{http.MethodPost, http.MethodOptions},
				AllowedHeaders: []string{"Content-Type"},
			}))
			r.Post("/checkout/sessions", handler.createCheckoutSession)
			r.Options("/checkout/sessions", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
		r.Post("/webhooks/stripe", handler.handleStripeWebhook)
	})
	return r
}
