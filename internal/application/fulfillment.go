package application

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"

	"github.com/ebookcopywriting/checkout-service/internal/domain"
	"go.uber.org/zap"
)

// HandleEvent runs one processor notification through the fulfillment state
// machine: transport decode, signature check, type classification, payment
// status check, metadata check, fulfillment.
//
// Only transport and signature failures return an error (and thus a non-2xx
// response). Every authenticated outcome, including an internal fulfillment
// failure, is acknowledged so the processor stops retrying; failed
// fulfillments are surfaced through logs for external alerting.
func (s *Service) HandleEvent(ctx context.Context, in HandleEventInput) (EventOutcome, error) {
	if strings.TrimSpace(in.Signature) == "" {
		s.logger.Warn("webhook delivery without signature header")
		return EventOutcome{}, domain.ErrMissingSignature
	}

	payload, wasEncoded := decodeTransportBody(in.Body)

	event, err := s.verifier.Verify(payload, in.Signature)
	if err != nil {
		// Enough context to diagnose transport/encoding mismatches, never
		// the secret or the payload itself.
		s.logger.Warn("webhook signature verification failed",
			zap.Bool("base64_transport", wasEncoded),
			zap.Int("body_length", len(payload)),
			zap.Error(err))
		return EventOutcome{}, domain.ErrInvalidSignature
	}

	outcome := EventOutcome{EventID: event.EventID, EventType: event.Type}

	if !event.IsCompletion() {
		outcome.Status = OutcomeIgnored
		return outcome, nil
	}
	if !event.Session.IsPaid() {
		s.logger.Info("session completed but not yet paid",
			zap.String("event_id", event.EventID),
			zap.String("payment_status", event.Session.PaymentStatus))
		outcome.Status = OutcomePending
		return outcome, nil
	}

	// Correlation step. The product ID is read only from the
	// signature-verified payload.
	productID := event.Session.ProductID()
	outcome.ProductID = productID
	product, ok := s.catalog.Get(productID)
	if !ok {
		s.logger.Warn("paid session references unknown product",
			zap.String("event_id", event.EventID),
			zap.String("product_id", productID))
		outcome.Status = OutcomeAnomaly
		return outcome, nil
	}
	recipient := strings.TrimSpace(event.Session.CustomerEmail)
	if recipient == "" {
		s.logger.Warn("paid session has no customer email",
			zap.String("event_id", event.EventID),
			zap.String("session_id", event.Session.SessionID))
		outcome.Status = OutcomeAnomaly
		return outcome, nil
	}

	if s.dedup != nil {
		first, dedupErr := s.dedup.FirstSeen(ctx, event.EventID, s.cfg.DedupTTL)
		if dedupErr != nil {
			// Fail open: a broken dedup store must not block paid customers.
			s.logger.Error("event dedup store unavailable",
				zap.String("event_id", event.EventID),
				zap.Error(dedupErr))
		} else if !first {
			s.logger.Info("duplicate event delivery skipped",
				zap.String("event_id", event.EventID))
			outcome.Status = OutcomeDuplicate
			return outcome, nil
		}
	}

	ref, err := s.signer.SignDownload(ctx, product.StorageKey, product.DownloadFileName)
	if err != nil {
		s.logger.Error("provision delivery reference",
			zap.String("event_id", event.EventID),
			zap.String("product_id", product.ID),
			zap.Error(err))
		outcome.Status = OutcomeFulfillmentFailed
		outcome.FulfillErr = err
		return outcome, nil
	}
	if err := s.mailer.Send(ctx, recipient, product, ref); err != nil {
		s.logger.Error("dispatch delivery notification",
			zap.String("event_id", event.EventID),
			zap.String("product_id", product.ID),
			zap.Error(err))
		outcome.Status = OutcomeFulfillmentFailed
		outcome.FulfillErr = err
		return outcome, nil
	}

	s.logger.Info("fulfillment complete",
		zap.String("event_id", event.EventID),
		zap.String("product_id", product.ID),
		zap.Time("link_expires_at", ref.ExpiresAt))
	outcome.Status = OutcomeFulfilled
	return outcome, nil
}

// decodeTransportBody undoes base64 transport encoding applied by gateways in
// front of this service. The signature is computed over the raw JSON bytes,
// so decoding must happen before verification; decoding the wrong
// representation causes spurious signature failures. Processor payloads are
// JSON objects, so a body whose first byte is '{' is already raw.
func decodeTransportBody(body []byte) ([]byte, bool) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] == '{' {
		return body, false
	}
	decoded, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(body)))
	if err != nil {
		return body, false
	}
	return decoded, true
}
