package bootstrap

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/ebookcopywriting/checkout-service/internal/adapters/cache"
	transporthttp "github.com/ebookcopywriting/checkout-service/internal/adapters/http"
	"github.com/ebookcopywriting/checkout-service/internal/adapters/memory"
	"github.com/ebookcopywriting/checkout-service/internal/adapters/s3store"
	"github.com/ebookcopywriting/checkout-service/internal/adapters/sesmail"
	"github.com/ebookcopywriting/checkout-service/internal/adapters/stripepay"
	"github.com/ebookcopywriting/checkout-service/internal/application"
	"github.com/ebookcopywriting/checkout-service/internal/domain"
	"github.com/ebookcopywriting/checkout-service/internal/ports"
	"go.uber.org/zap"
)

// Runtime owns the process-lifetime objects: external client handles are
// constructed once here and reused across requests, never per call.
type Runtime struct {
	httpServer *stdhttp.Server
	logger     *zap.Logger
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	catalog, err := domain.NewCatalog(cfg.Products)
	if err != nil {
		return nil, fmt.Errorf("load product catalog: %w", err)
	}

	s3cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	sescfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SESRegion))
	if err != nil {
		return nil, fmt.Errorf("load ses config: %w", err)
	}

	var dedup ports.EventDedupStore
	if cfg.DedupEnabled {
		if cfg.RedisURL != "" {
			redisClient, err := cache.Connect(ctx, cfg.RedisURL)
			if err != nil {
				return nil, fmt.Errorf("connect redis: %w", err)
			}
			dedup = cache.NewRedisEventDedupStore(redisClient)
		} else {
			// Single-node fallback; replay protection does not survive a
			// restart or extend across replicas without redis.
			dedup = memory.NewEventDedupStore()
			logger.Warn("event dedup running in-memory, configure redis for multi-node deployments")
		}
	}

	svc := application.NewService(application.Dependencies{
		Config:  application.Config{DedupTTL: cfg.DedupTTL},
		Catalog: catalog,
		Sessions: stripepay.NewClient(stripepay.Config{
			SecretKey:          cfg.StripeSecretKey,
			SuccessURL:         cfg.SuccessURL,
			CancelURL:          cfg.CancelURL,
			PaymentMethodTypes: cfg.PaymentMethodTypes,
		}),
		Verifier: stripepay.NewVerifier(cfg.StripeWebhookSecret, cfg.WebhookTolerance),
		Signer:   s3store.NewPresigner(s3.NewFromConfig(s3cfg), cfg.S3Bucket),
		Mailer: sesmail.NewMailer(ses.NewFromConfig(sescfg), sesmail.Config{
			FromName:     cfg.FromName,
			FromAddress:  cfg.FromAddress,
			SupportEmail: cfg.SupportEmail,
			SiteURL:      cfg.SiteURL,
		}),
		Dedup:  dedup,
		Logger: logger,
	})

	router := transporthttp.NewRouter(transporthttp.NewHandler(svc), cfg.AllowedOrigin)
	server := &stdhttp.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return &Runtime{httpServer: server, logger: logger}, nil
}

func (r *Runtime) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := r.httpServer.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			errCh <- err
		}
	}()
	select {
	case <-ctx.Done():
	case err := <-errCh:
		r.logger.Error("http server", zap.Error(err))
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	defer func() { _ = r.logger.Sync() }()
	return r.httpServer.Shutdown(shutdownCtx)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
