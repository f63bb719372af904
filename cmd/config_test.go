package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STOREFRONT_DATABASE_HOST", "db")
	t.Setenv("STOREFRONT_DATABASE_NAME", "storefront")
	t.Setenv("STOREFRONT_AUTH_JWT_SECRET", "secret")
	t.Setenv("STOREFRONT_PAYPAY_API_KEY", "key")
	t.Setenv("STOREFRONT_PAYPAY_API_SECRET", "api-secret")
	t.Setenv("STOREFRONT_PAYPAY_MERCHANT_ID", "merchant")
}

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STOREFRONT_HTTP_PORT", "9090")
	t.Setenv("STOREFRONT_JOBS_ORPHAN_REPORT_ENABLED", "true")
	t.Setenv("STOREFRONT_PAYPAY_TIMEOUT", "3s")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "admin", cfg.Auth.AdminRole)
	assert.Equal(t, "storefront_token", cfg.Auth.CookieName)
	assert.Equal(t, 3*time.Second, cfg.PayPay.Timeout)
	assert.Equal(t, "/orders/{merchantPaymentId}/result", cfg.Checkout.ResultPathTemplate)
	assert.True(t, cfg.Jobs.OrphanReportEnabled)
	assert.Equal(t, time.Hour, cfg.Jobs.OrphanReportMinAge)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	setRequiredEnv(t)
	// godotenv never overrides variables that are already set, so clear the one under test.
	t.Setenv("STOREFRONT_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("STOREFRONT_LOG_LEVEL"))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("STOREFRONT_LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("STOREFRONT_LOG_LEVEL") })

	cfg, err := LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_MissingEnvFileIsFine(t *testing.T) {
	setRequiredEnv(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

	assert.NoError(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		HTTP:     HTTPConfig{PublicBaseURL: "https://shop.example.com"},
		Database: DatabaseConfig{Host: "db", Name: "storefront"},
		Auth:     AuthConfig{JWTSecret: "s"},
		PayPay:   PayPayConfig{APIKey: "k", APISecret: "s", MerchantID: "m"},
		Checkout: CheckoutConfig{ResultPathTemplate: "/orders/{merchantPaymentId}/result"},
	}
	require.NoError(t, valid.Validate())

	tests := map[string]func(c *Config){
		"no db host":       func(c *Config) { c.Database.Host = "" },
		"no db name":       func(c *Config) { c.Database.Name = "" },
		"no jwt secret":    func(c *Config) { c.Auth.JWTSecret = "" },
		"no paypay key":    func(c *Config) { c.PayPay.APIKey = "" },
		"bad public url":   func(c *Config) { c.HTTP.PublicBaseURL = "not a url" },
		"template missing": func(c *Config) { c.Checkout.ResultPathTemplate = "/orders/result" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dsn := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}.DSN()

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", dsn)
}
