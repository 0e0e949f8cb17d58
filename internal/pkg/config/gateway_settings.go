package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// StripeSettings holds the Stripe webhook configuration.
type StripeSettings struct {
	WebhookSecret string `mapstructure:"webhook_secret"`
	// APIKey enables customer lookups for subscription events. When
	// blank the customer email is read from subscription metadata.
	APIKey string `mapstructure:"api_key"`
	// SkipVerify disables signature verification. Local development
	// only; when false a webhook secret is mandatory.
	SkipVerify bool `mapstructure:"skip_verify"`
}

// Validate checks that all fields in StripeSettings are valid
func (s *StripeSettings) Validate() error {
	if !s.SkipVerify && s.WebhookSecret == "" {
		return fmt.Errorf("stripe webhook secret is required unless skip_verify is set")
	}
	return nil
}

// PayPalSettings holds the PayPal webhook configuration.
type PayPalSettings struct {
	ClientID  string `mapstructure:"client_id"`
	Secret    string `mapstructure:"secret"`
	WebhookID string `mapstructure:"webhook_id"`
	APIBase   string `mapstructure:"api_base" validate:"omitempty,url"`
	// SkipVerify disables the verify-webhook-signature call. Local
	// development only.
	SkipVerify bool `mapstructure:"skip_verify"`
}

// Validate checks that all fields in PayPalSettings are valid
func (s *PayPalSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for PayPalSettings: %w", err)
	}
	if !s.SkipVerify {
		if s.ClientID == "" || s.Secret == "" || s.WebhookID == "" {
			return fmt.Errorf("paypal client_id, secret and webhook_id are required unless skip_verify is set")
		}
	}
	return nil
}

// RedisSettings holds the webhook dedup cache configuration.
type RedisSettings struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// ClaimTTLHours bounds how long an event ID stays claimed.
	ClaimTTLHours int `mapstructure:"claim_ttl_hours"`
}

// Validate checks that all fields in RedisSettings are valid
func (s *RedisSettings) Validate() error {
	if s.Enabled && s.Addr == "" {
		return fmt.Errorf("redis addr is required when the dedup cache is enabled")
	}
	return nil
}
