package bootstrap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testConfigYAML = `service:
  id: checkout-service
  http_port: 9999
stripe:
  success_url: https://shop.example.com/thank-you
  cancel_url: https://shop.example.com/
  payment_method_types: [card, blik]
http:
  allowed_origin: https://shop.example.com
storage:
  bucket: shop-assets
  region: eu-central-1
email:
  from_name: Shop
  from_address: shop@example.com
  support_email: help@example.com
  site_url: https://shop.example.com
products:
  - id: ebook-1
    display_name: Ebook One
    description: A fine ebook
    price: 4900
    currency: pln
    storage_key: ebook-1.pdf
    download_file_name: Ebook-One.pdf
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")

	cfg, err := LoadConfig(writeConfig(t, testConfigYAML))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPPort != 9999 {
		t.Fatalf("http port: got %d", cfg.HTTPPort)
	}
	if cfg.SuccessURL != "https://shop.example.com/thank-you" || cfg.AllowedOrigin != "https://shop.example.com" {
		t.Fatalf("unexpected urls: %+v", cfg)
	}
	if len(cfg.PaymentMethodTypes) != 2 || cfg.PaymentMethodTypes[1] != "blik" {
		t.Fatalf("payment method types: %v", cfg.PaymentMethodTypes)
	}
	if cfg.WebhookTolerance != 5*time.Minute {
		t.Fatalf("default tolerance: %v", cfg.WebhookTolerance)
	}
	if len(cfg.Products) != 1 || cfg.Products[0].ID != "ebook-1" || cfg.Products[0].Price != 4900 {
		t.Fatalf("catalog: %+v", cfg.Products)
	}
}

func TestLoadConfigFailsClosedWithoutSecrets(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")

	_, err := LoadConfig(writeConfig(t, testConfigYAML))
	if err == nil {
		t.Fatal("missing processor secrets must prevent startup")
	}
	if !strings.Contains(err.Error(), "STRIPE_SECRET_KEY") {
		t.Fatalf("error should name the missing variable, got %v", err)
	}
}

func TestLoadConfigRequiresCatalog(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")

	stripped := strings.Split(testConfigYAML, "products:")[0]
	_, err := LoadConfig(writeConfig(t, stripped))
	if err == nil || !strings.Contains(err.Error(), "catalog") {
		t.Fatalf("empty catalog must prevent startup, got %v", err)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")
	t.Setenv("S3_BUCKET", "other-bucket")
	t.Setenv("HTTP_PORT", "8081")

	cfg, err := LoadConfig(writeConfig(t, testConfigYAML))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.S3Bucket != "other-bucket" || cfg.HTTPPort != 8081 {
		t.Fatalf("env overrides not applied: bucket=%q port=%d", cfg.S3Bucket, cfg.HTTPPort)
	}
}

func TestLoadConfigDedupWithoutRedis(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")
	t.Setenv("REDIS_URL", "")

	withDedup := testConfigYAML + "dedup:\n  enabled: true\n"
	cfg, err := LoadConfig(writeConfig(t, withDedup))
	if err != nil {
		t.Fatalf("dedup without redis falls back to the in-memory store, got %v", err)
	}
	if !cfg.DedupEnabled || cfg.RedisURL != "" {
		t.Fatalf("unexpected dedup config: enabled=%v redis=%q", cfg.DedupEnabled, cfg.RedisURL)
	}
}
