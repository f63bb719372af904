// Package paypay is the PayPay Open Payment API client behind ports.PaymentGateway.
// It creates dynamic ORDER_QR codes for checkout and looks up their payments.
package paypay

import (
	"errors"
	"strings"
	"time"
)

const (
	DefaultBaseURL  = "https://stg-api.sandbox.paypay.ne.jp"
	DefaultTimeout  = 10 * time.Second
	DefaultCurrency = "JPY"

	// CallbackPath is where PayPay sends the buyer back after paying.
	CallbackPath = "/api/v1/payments/callback"
)

var (
	ErrMissingAPIKey        = errors.New("paypay: missing API key")
	ErrMissingAPISecret     = errors.New("paypay: missing API secret")
	ErrMissingMerchantID    = errors.New("paypay: missing merchant ID")
	ErrMissingPublicBaseURL = errors.New("paypay: missing public base URL")
)

type Config struct {
	BaseURL    string
	APIKey     string
	APISecret  string
	MerchantID string
	Timeout    time.Duration
	Currency   string
	// PublicBaseURL is the storefront's externally reachable origin, used to
	// build the redirect URL sent with every QR code.
	PublicBaseURL string
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.APISecret == "" {
		return ErrMissingAPISecret
	}
	if c.MerchantID == "" {
		return ErrMissingMerchantID
	}
	if c.PublicBaseURL == "" {
		return ErrMissingPublicBaseURL
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")
	return c
}
