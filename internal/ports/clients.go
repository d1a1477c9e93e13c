package ports

import (
	"context"

	"github.com/ebookcopywriting/checkout-service/internal/domain"
)

// CreateSessionInput carries everything the processor needs to open a
// payment session for a single catalog entry.
type CreateSessionInput struct {
	Product       domain.Product
	CustomerEmail string
}

type CreateSessionOutput struct {
	SessionID string
	URL       string
}

// PaymentSessions opens payment sessions with the external processor. The
// processor owns all session state; this service never reads it back except
// through verified event payloads.
type PaymentSessions interface {
	Create(ctx context.Context, in CreateSessionInput) (CreateSessionOutput, error)
}

// EventVerifier authenticates a raw webhook payload against its signature
// header. Payload must be the byte-exact transport-decoded body; the
// signature is computed over exact bytes.
type EventVerifier interface {
	Verify(payload []byte, sigHeader string) (domain.PaymentEvent, error)
}

// LinkSigner provisions a time-bounded, credential-free download reference
// for one stored object. Must not mutate the object.
type LinkSigner interface {
	SignDownload(ctx context.Context, storageKey, fileName string) (domain.DeliveryReference, error)
}

// MailSender dispatches the delivery notification to the customer.
type MailSender interface {
	Send(ctx context.Context, recipient string, product domain.Product, ref domain.DeliveryReference) error
}
