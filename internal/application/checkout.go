package application

import (
	"context"
	"strings"

	"github.com/ebookcopywriting/checkout-service/internal/contracts"
	"github.com/ebookcopywriting/checkout-service/internal/domain"
	"github.com/ebookcopywriting/checkout-service/internal/ports"
	"go.uber.org/zap"
)

// CreateCheckoutSession validates the purchase request against the catalog
// and opens a payment session with the processor. No state is kept locally;
// the product ID travels as session metadata and must be echoed back verbatim
// in the completion event, which is the only channel correlating a payment to
// a product.
func (s *Service) CreateCheckoutSession(ctx context.Context, in CreateCheckoutSessionInput) (CheckoutSessionOutput, error) {
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)

	req := contracts.CreateCheckoutSessionRequest{
		ProductID:     in.ProductID,
		CustomerEmail: in.CustomerEmail,
	}
	if err := s.validate.Struct(req); err != nil {
		return CheckoutSessionOutput{}, domain.ErrInvalidInput
	}
	product, ok := s.catalog.Get(in.ProductID)
	if !ok {
		return CheckoutSessionOutput{}, domain.ErrUnknownProduct
	}

	out, err := s.sessions.Create(ctx, ports.CreateSessionInput{
		Product:       product,
		CustomerEmail: in.CustomerEmail,
	})
	if err != nil {
		s.logger.Error("create checkout session",
			zap.String("product_id", product.ID),
			zap.Error(err))
		return CheckoutSessionOutput{}, domain.ErrDependencyUnavailable
	}
	return CheckoutSessionOutput{SessionID: out.SessionID, URL: out.URL}, nil
}
