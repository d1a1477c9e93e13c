package domain

import "time"

// Relevant payment event types. Completed sessions arrive as one of these;
// async_payment_succeeded covers delayed payment methods that confirm after
// the session itself completed.
const (
	EventTypeSessionCompleted      = "checkout.session.completed"
	EventTypeAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	PaymentStatusPaid              = "paid"
	MetadataProductIDKey           = "productId"
)

// PaymentEvent is a signature-verified processor notification. It is
// reconstructed from the event payload on every delivery and never persisted.
type PaymentEvent struct {
	EventID string
	Type    string
	Session CheckoutSession
}

// CheckoutSession is the processor-owned purchase session as echoed back in
// the event payload. Metadata is trusted only because the payload it rides in
// is covered by the event signature.
type CheckoutSession struct {
	SessionID     string
	PaymentStatus string
	CustomerEmail string
	Metadata      map[string]string
}

func (e PaymentEvent) IsCompletion() bool {
	return e.Type == EventTypeSessionCompleted || e.Type == EventTypeAsyncPaymentSucceeded
}

func (s CheckoutSession) IsPaid() bool { return s.PaymentStatus == PaymentStatusPaid }

func (s CheckoutSession) ProductID() string { return s.Metadata[MetadataProductIDKey] }

// DeliveryReference is a time-bounded, credential-free pointer to the product
// asset. Created fresh per fulfillment, never reused, never stored.
type DeliveryReference struct {
	URL       string
	ExpiresAt time.Time
}
