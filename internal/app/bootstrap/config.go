package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ebookcopywriting/checkout-service/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceID string
	HTTPPort  int
	LogLevel  string

	StripeSecretKey     string
	StripeWebhookSecret string
	SuccessURL          string
	CancelURL           string
	PaymentMethodTypes  []string
	WebhookTolerance    time.Duration

	AllowedOrigin string

	S3Bucket string
	S3Region string

	SESRegion    string
	FromName     string
	FromAddress  string
	SupportEmail string
	SiteURL      string

	DedupEnabled bool
	RedisURL     string
	DedupTTL     time.Duration

	Products []domain.Product
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
		LogLevel string `yaml:"log_level"`
	} `yaml:"service"`
	Stripe struct {
		SuccessURL           string   `yaml:"success_url"`
		CancelURL            string   `yaml:"cancel_url"`
		PaymentMethodTypes   []string `yaml:"payment_method_types"`
		WebhookToleranceSecs int      `yaml:"webhook_tolerance_seconds"`
	} `yaml:"stripe"`
	HTTP struct {
		AllowedOrigin string `yaml:"allowed_origin"`
	} `yaml:"http"`
	Storage struct {
		Bucket string `yaml:"bucket"`
		Region string `yaml:"region"`
	} `yaml:"storage"`
	Email struct {
		Region       string `yaml:"region"`
		FromName     string `yaml:"from_name"`
		FromAddress  string `yaml:"from_address"`
		SupportEmail string `yaml:"support_email"`
		SiteURL      string `yaml:"site_url"`
	} `yaml:"email"`
	Dedup struct {
		Enabled  bool   `yaml:"enabled"`
		RedisURL string `yaml:"redis_url"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"dedup"`
	Products []struct {
		ID               string `yaml:"id"`
		DisplayName      string `yaml:"display_name"`
		Description      string `yaml:"description"`
		Price            int64  `yaml:"price"`
		Currency         string `yaml:"currency"`
		StorageKey       string `yaml:"storage_key"`
		DownloadFileName string `yaml:"download_file_name"`
	} `yaml:"products"`
}

// LoadConfig reads the yaml file, applies environment overrides, and fails
// closed on missing secrets: a half-configured service must not start.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:          "checkout-service",
		HTTPPort:           8080,
		LogLevel:           "info",
		PaymentMethodTypes: []string{"card"},
		WebhookTolerance:   5 * time.Minute,
		S3Region:           "eu-central-1",
		SESRegion:          "us-east-1",
		DedupTTL:           7 * 24 * time.Hour,
	}

	if raw, err := os.ReadFile(path); err == nil {
		var f configFile
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Service.LogLevel != "" {
			cfg.LogLevel = f.Service.LogLevel
		}
		cfg.SuccessURL = f.Stripe.SuccessURL
		cfg.CancelURL = f.Stripe.CancelURL
		if len(f.Stripe.PaymentMethodTypes) > 0 {
			cfg.PaymentMethodTypes = f.Stripe.PaymentMethodTypes
		}
		if f.Stripe.WebhookToleranceSecs > 0 {
			cfg.WebhookTolerance = time.Duration(f.Stripe.WebhookToleranceSecs) * time.Second
		}
		cfg.AllowedOrigin = f.HTTP.AllowedOrigin
		cfg.S3Bucket = f.Storage.Bucket
		if f.Storage.Region != "" {
			cfg.S3Region = f.Storage.Region
		}
		if f.Email.Region != "" {
			cfg.SESRegion = f.Email.Region
		}
		cfg.FromName = f.Email.FromName
		cfg.FromAddress = f.Email.FromAddress
		cfg.SupportEmail = f.Email.SupportEmail
		cfg.SiteURL = f.Email.SiteURL
		cfg.DedupEnabled = f.Dedup.Enabled
		cfg.RedisURL = f.Dedup.RedisURL
		if f.Dedup.TTLHours > 0 {
			cfg.DedupTTL = time.Duration(f.Dedup.TTLHours) * time.Hour
		}
		for _, p := range f.Products {
			cfg.Products = append(cfg.Products, domain.Product{
				ID:               p.ID,
				DisplayName:      p.DisplayName,
				Description:      p.Description,
				Price:            p.Price,
				Currency:         p.Currency,
				StorageKey:       p.StorageKey,
				DownloadFileName: p.DownloadFileName,
			})
		}
	}

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	cfg.StripeSecretKey = envString("STRIPE_SECRET_KEY", cfg.StripeSecretKey)
	cfg.StripeWebhookSecret = envString("STRIPE_WEBHOOK_SECRET", cfg.StripeWebhookSecret)
	cfg.SuccessURL = envString("SUCCESS_URL", cfg.SuccessURL)
	cfg.CancelURL = envString("CANCEL_URL", cfg.CancelURL)
	cfg.AllowedOrigin = envString("ALLOWED_ORIGIN", cfg.AllowedOrigin)
	cfg.S3Bucket = envString("S3_BUCKET", cfg.S3Bucket)
	cfg.S3Region = envString("S3_REGION", cfg.S3Region)
	cfg.SESRegion = envString("SES_REGION", cfg.SESRegion)
	cfg.FromName = envString("EMAIL_FROM_NAME", cfg.FromName)
	cfg.FromAddress = envString("EMAIL_FROM", cfg.FromAddress)
	cfg.SupportEmail = envString("SUPPORT_EMAIL", cfg.SupportEmail)
	cfg.SiteURL = envString("SITE_URL", cfg.SiteURL)
	cfg.RedisURL = envString("REDIS_URL", cfg.RedisURL)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	missing := []string{}
	if c.StripeSecretKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}
	if c.StripeWebhookSecret == "" {
		missing = append(missing, "STRIPE_WEBHOOK_SECRET")
	}
	if c.SuccessURL == "" {
		missing = append(missing, "SUCCESS_URL")
	}
	if c.CancelURL == "" {
		missing = append(missing, "CANCEL_URL")
	}
	if c.AllowedOrigin == "" {
		missing = append(missing, "ALLOWED_ORIGIN")
	}
	if c.S3Bucket == "" {
		missing = append(missing, "S3_BUCKET")
	}
	if c.FromAddress == "" {
		missing = append(missing, "EMAIL_FROM")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if len(c.Products) == 0 {
		return fmt.Errorf("product catalog is empty")
	}
	return nil
}

func envInt(name string, fallback int) int {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func envString(name, fallback string) string {
	if raw := os.Getenv(name); raw != "" {
		return raw
	}
	return fallback
}
