package application

import (
	"time"

	"github.com/ebookcopywriting/checkout-service/internal/domain"
	"github.com/ebookcopywriting/checkout-service/internal/ports"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const downloadLinkLifetime = 7 * 24 * time.Hour

type Service struct {
	cfg      Config
	catalog  domain.Catalog
	sessions ports.PaymentSessions
	verifier ports.EventVerifier
	signer   ports.LinkSigner
	mailer   ports.MailSender
	dedup    ports.EventDedupStore
	logger   *zap.Logger
	validate *validator.Validate
}

func NewService(deps Dependencies) *Service {
	s := &Service{
		cfg:      deps.Config,
		catalog:  deps.Catalog,
		sessions: deps.Sessions,
		verifier: deps.Verifier,
		signer:   deps.Signer,
		mailer:   deps.Mailer,
		dedup:    deps.Dedup,
		logger:   deps.Logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.cfg.DedupTTL == 0 {
		s.cfg.DedupTTL = downloadLinkLifetime
	}
	return s
}
