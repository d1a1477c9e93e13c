package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ebookcopywriting/checkout-service/internal/application"
	"github.com/ebookcopywriting/checkout-service/internal/contracts"
)

// webhook payloads are small JSON documents; anything larger is not a
// legitimate processor event.
const maxWebhookBody = 256 * 1024

type Handler struct {
	service *application.Service
}

func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) createCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req contracts.CreateCheckoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	out, err := h.service.CreateCheckoutSession(r.Context(), application.CreateCheckoutSessionInput{
		ProductID:     req.ProductID,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		status, message := mapDomainError(err)
		writeError(w, status, message)
		return
	}
	writeJSON(w, http.StatusOK, contracts.CreateCheckoutSessionResponse{
		SessionID: out.SessionID,
		URL:       out.URL,
	})
}

func (h *Handler) handleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	// Header lookup is case-insensitive by net/http's canonicalization.
	outcome, err := h.service.HandleEvent(r.Context(), application.HandleEventInput{
		Body:      body,
		Signature: r.Header.Get("Stripe-Signature"),
	})
	if err != nil {
		status, message := mapDomainError(err)
		writeError(w, status, message)
		return
	}
	ack := contracts.WebhookAck{Received: true}
	if outcome.FulfillErr != nil {
		ack.Error = outcome.FulfillErr.Error()
	}
	writeJSON(w, http.StatusOK, ack)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
