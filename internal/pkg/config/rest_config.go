package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig is the full configuration for the REST API, CLI and
// scheduler binaries.
type RestConfig struct {
	Port       string            `mapstructure:"port"`
	Database   DatabaseSettings  `mapstructure:"database"`
	Logger     LoggerSettings    `mapstructure:"logger"`
	Redis      RedisSettings     `mapstructure:"redis"`
	Stripe     StripeSettings    `mapstructure:"stripe"`
	PayPal     PayPalSettings    `mapstructure:"paypal"`
	Connectors ConnectorSettings `mapstructure:"connectors"`
	CopyKit    CopyKitSettings   `mapstructure:"copykit"`
	Scheduler  SchedulerSettings `mapstructure:"scheduler"`
}

// InitializeRestConfig loads, defaults and validates configuration from
// the given YAML file. Environment variables override file values, e.g.
// REVENUE_ENGINE_STRIPE_WEBHOOK_SECRET.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetEnvPrefix("REVENUE_ENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("redis.claim_ttl_hours", 24)
	v.SetDefault("paypal.api_base", "https://api-m.paypal.com")
	v.SetDefault("connectors.openrouter.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("connectors.openrouter.model", "openai/gpt-4.1-mini")
	v.SetDefault("connectors.elevenlabs.base_url", "https://api.elevenlabs.io")
	v.SetDefault("connectors.elevenlabs.voice_id", "21m00Tcm4TlvDq8ikWAM")
	v.SetDefault("connectors.elevenlabs.model_id", "eleven_monolingual_v1")
	v.SetDefault("connectors.elevenlabs.output_dir", "/tmp")
	v.SetDefault("connectors.invideo.base_url", "https://api.invideo.io")
	v.SetDefault("connectors.notion.base_url", "https://api.notion.com")
	v.SetDefault("connectors.notion.notion_version", "2022-06-28")
	v.SetDefault("connectors.linear.base_url", "https://api.linear.app")
	v.SetDefault("connectors.polygon.base_url", "https://api.polygon.io")
	v.SetDefault("connectors.firecrawl.base_url", "https://api.firecrawl.dev")
	v.SetDefault("copykit.timeout_seconds", 10)
	v.SetDefault("scheduler.briefing_at", "07:00")
	v.SetDefault("scheduler.kpi_rollup_at", "23:55")
	v.SetDefault("scheduler.location", "Europe/London")
}

// Validate checks every settings section.
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Redis.Validate(); err != nil {
		return err
	}
	if err := c.Stripe.Validate(); err != nil {
		return err
	}
	if err := c.PayPal.Validate(); err != nil {
		return err
	}
	if err := c.Connectors.SMTP.Validate(); err != nil {
		return err
	}
	if err := c.CopyKit.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	return nil
}
