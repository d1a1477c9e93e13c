package application

import (
	"context"
	"errors"
	"time"

	"github.com/ebookcopywriting/checkout-service/internal/domain"
	"github.com/ebookcopywriting/checkout-service/internal/ports"
)

func testCatalog() domain.Catalog {
	catalog, err := domain.NewCatalog([]domain.Product{{
		ID:               "ebook-copywriting-360",
		DisplayName:      "Copywriting 360",
		Description:      "Ebook PDF",
		Price:            4900,
		Currency:         "pln",
		StorageKey:       "copywriting-360.pdf",
		DownloadFileName: "Copywriting-360-Ebook.pdf",
	}})
	if err != nil {
		panic(err)
	}
	return catalog
}

type fakeSessions struct {
	calls []ports.CreateSessionInput
	out   ports.CreateSessionOutput
	err   error
}

func (f *fakeSessions) Create(_ context.Context, in ports.CreateSessionInput) (ports.CreateSessionOutput, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return ports.CreateSessionOutput{}, f.err
	}
	return f.out, nil
}

// fakeVerifier accepts only payloads matching wantPayload with the signature
// wantSig, mirroring a byte-exact HMAC check.
type fakeVerifier struct {
	wantPayload string
	wantSig     string
	event       domain.PaymentEvent
	seen        [][]byte
}

func (f *fakeVerifier) Verify(payload []byte, sigHeader string) (domain.PaymentEvent, error) {
	f.seen = append(f.seen, payload)
	if string(payload) != f.wantPayload || sigHeader != f.wantSig {
		return domain.PaymentEvent{}, errors.New("signature mismatch")
	}
	return f.event, nil
}

type fakeSigner struct {
	calls int
	keys  []string
	names []string
	ref   domain.DeliveryReference
	err   error
}

func (f *fakeSigner) SignDownload(_ context.Context, storageKey, fileName string) (domain.DeliveryReference, error) {
	f.calls++
	f.keys = append(f.keys, storageKey)
	f.names = append(f.names, fileName)
	if f.err != nil {
		return domain.DeliveryReference{}, f.err
	}
	if f.ref.URL == "" {
		f.ref = domain.DeliveryReference{
			URL:       "https://assets.example.com/signed",
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		}
	}
	return f.ref, nil
}

type fakeMailer struct {
	calls      int
	recipients []string
	refs       []domain.DeliveryReference
	err        error
}

func (f *fakeMailer) Send(_ context.Context, recipient string, _ domain.Product, ref domain.DeliveryReference) error {
	f.calls++
	f.recipients = append(f.recipients, recipient)
	f.refs = append(f.refs, ref)
	return f.err
}
