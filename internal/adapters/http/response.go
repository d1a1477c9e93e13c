package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ebookcopywriting/checkout-service/internal/contracts"
	"github.com/ebookcopywriting/checkout-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, contracts.ErrorResponse{Error: message})
}

// mapDomainError keeps user-facing messages generic: client input problems
// get a usable hint, processor-side failures leak no internal detail.
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, domain.ErrUnknownProduct):
		return http.StatusBadRequest, "unknown product"
	case errors.Is(err, domain.ErrMissingSignature):
		return http.StatusBadRequest, "missing signature"
	case errors.Is(err, domain.ErrInvalidSignature):
		return http.StatusBadRequest, "invalid signature"
	default:
		return http.StatusInternalServerError, "server error"
	}
}
