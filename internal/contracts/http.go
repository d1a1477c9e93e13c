package contracts

type CreateCheckoutSessionRequest struct {
	ProductID     string `json:"productId" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
}

type CreateCheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// WebhookAck is returned for every authenticated webhook delivery. Error is
// informational only; the processor must never treat it as a retry signal.
type WebhookAck struct {
	Received bool   `json:"received"`
	Error    string `json:"error,omitempty"`
}
