package application

import (
	"time"

	"github.com/ebookcopywriting/checkout-service/internal/domain"
	"github.com/ebookcopywriting/checkout-service/internal/ports"
	"go.uber.org/zap"
)

type Config struct {
	// DedupTTL bounds how long a processor event ID is remembered when a
	// dedup store is configured. Zero falls back to the link lifetime.
	DedupTTL time.Duration
}

type Dependencies struct {
	Config   Config
	Catalog  domain.Catalog
	Sessions ports.PaymentSessions
	Verifier ports.EventVerifier
	Signer   ports.LinkSigner
	Mailer   ports.MailSender
	Dedup    ports.EventDedupStore // nil disables event deduplication
	Logger   *zap.Logger
}

type CreateCheckoutSessionInput struct {
	ProductID     string
	CustomerEmail string
}

type CheckoutSessionOutput struct {
	SessionID string
	URL       string
}

type HandleEventInput struct {
	// Body is the payload exactly as received from the transport; it may
	// still carry base64 transport encoding.
	Body      []byte
	Signature string
}

// EventOutcome reports how far an event travelled through the state machine.
type EventOutcome struct {
	Status    OutcomeStatus
	EventID   string
	EventType string
	ProductID string
	// FulfillErr holds the internal failure for an acknowledged-but-failed
	// fulfillment; it never turns into a non-2xx response.
	FulfillErr error
}

type OutcomeStatus string

const (
	OutcomeIgnored           OutcomeStatus = "ignored"
	OutcomePending           OutcomeStatus = "pending"
	OutcomeAnomaly           OutcomeStatus = "anomaly"
	OutcomeDuplicate         OutcomeStatus = "duplicate"
	OutcomeFulfilled         OutcomeStatus = "fulfilled"
	OutcomeFulfillmentFailed OutcomeStatus = "fulfillment_failed"
)
