package stripepay

import (
	"context"

	"github.com/ebookcopywriting/checkout-service/internal/ports"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

type Config struct {
	SecretKey string
	// SuccessURL receives the session ID placeholder so the success page can
	// look the session up; CancelURL is used verbatim.
	SuccessURL         string
	CancelURL          string
	PaymentMethodTypes []string
}

// Client opens Stripe Checkout sessions. One instance is constructed at
// bootstrap and shared across requests.
type Client struct {
	cfg Config
	api *client.API
}

func NewClient(cfg Config) *Client {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	if len(cfg.PaymentMethodTypes) == 0 {
		cfg.PaymentMethodTypes = []string{"card"}
	}
	return &Client{cfg: cfg, api: api}
}

func (c *Client) Create(ctx context.Context, in ports.CreateSessionInput) (ports.CreateSessionOutput, error) {
	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice(c.cfg.PaymentMethodTypes),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(c.cfg.SuccessURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(c.cfg.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(in.Product.Currency),
				UnitAmount: stripe.Int64(in.Product.Price),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(in.Product.DisplayName),
					Description: stripe.String(in.Product.Description),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionAuto)),
		InvoiceCreation: &stripe.CheckoutSessionInvoiceCreationParams{
			Enabled: stripe.Bool(true),
		},
	}
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(in.CustomerEmail)
	}
	// The metadata echo is the only channel correlating a payment back to a
	// product; the processor guarantees it comes back verbatim.
	params.AddMetadata("productId", in.Product.ID)

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return ports.CreateSessionOutput{}, err
	}
	return ports.CreateSessionOutput{SessionID: sess.ID, URL: sess.URL}, nil
}
