package stripepay

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ebookcopywriting/checkout-service/internal/domain"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// Verifier authenticates webhook payloads with the shared signing secret.
// The tolerance window rejects stale or replayed deliveries by their signed
// timestamp.
type Verifier struct {
	secret    string
	tolerance time.Duration
}

func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &Verifier{secret: secret, tolerance: tolerance}
}

func (v *Verifier) Verify(payload []byte, sigHeader string) (domain.PaymentEvent, error) {
	// Deliveries carry whatever api_version the webhook endpoint was created
	// with; authenticity is the signature's job, so version skew against the
	// SDK pin must not reject the event.
	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return domain.PaymentEvent{}, err
	}

	out := domain.PaymentEvent{
		EventID: event.ID,
		Type:    string(event.Type),
	}
	if !out.IsCompletion() {
		return out, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return domain.PaymentEvent{}, fmt.Errorf("decode session payload: %w", err)
	}
	out.Session = domain.CheckoutSession{
		SessionID:     sess.ID,
		PaymentStatus: string(sess.PaymentStatus),
		CustomerEmail: sessionEmail(sess),
		Metadata:      sess.Metadata,
	}
	return out, nil
}

// sessionEmail prefers the address the customer actually paid with over the
// one pre-filled at session creation.
func sessionEmail(sess stripe.CheckoutSession) string {
	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		return sess.CustomerDetails.Email
	}
	return sess.CustomerEmail
}
