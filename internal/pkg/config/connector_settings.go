package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// APISettings is the shared shape for keyed HTTP connectors. A blank
// APIKey disables the connector; callers then no-op rather than fail.
type APISettings struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// Validate checks that all fields in APISettings are valid
func (s *APISettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for APISettings: %w", err)
	}
	return nil
}

// OpenRouterSettings configures the chat-completion connector.
type OpenRouterSettings struct {
	APISettings `mapstructure:",squash"`
	Model       string `mapstructure:"model"`
}

// ElevenLabsSettings configures the text-to-speech connector.
type ElevenLabsSettings struct {
	APISettings `mapstructure:",squash"`
	VoiceID     string `mapstructure:"voice_id"`
	ModelID     string `mapstructure:"model_id"`
	// OutputDir is where synthesized audio files are written.
	OutputDir string `mapstructure:"output_dir"`
}

// NotionSettings configures the CRM/workspace connector.
type NotionSettings struct {
	APISettings   `mapstructure:",squash"`
	CRMDatabaseID string `mapstructure:"crm_database_id"`
	WorkspaceRoot string `mapstructure:"workspace_root"`
	NotionVersion string `mapstructure:"notion_version"`
}

// LinearSettings configures the follow-up task connector.
type LinearSettings struct {
	APISettings `mapstructure:",squash"`
	TeamID      string `mapstructure:"team_id"`
}

// SMTPSettings configures receipt and campaign email delivery. When
// Enabled is false sends are logged and dropped, matching a dev setup
// without an ESP.
type SMTPSettings struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from" validate:"omitempty,email"`
}

// Validate checks that all fields in SMTPSettings are valid
func (s *SMTPSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SMTPSettings: %w", err)
	}
	if s.Enabled && (s.Host == "" || s.Port == 0 || s.From == "") {
		return fmt.Errorf("smtp host, port and from are required when smtp is enabled")
	}
	return nil
}

// CopyKitSettings configures the landing-page fetch endpoint.
type CopyKitSettings struct {
	URL            string `mapstructure:"url" validate:"omitempty,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Validate checks that all fields in CopyKitSettings are valid
func (s *CopyKitSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CopyKitSettings: %w", err)
	}
	return nil
}

// SchedulerSettings configures the automation timetable.
type SchedulerSettings struct {
	// BriefingAt and KPIRollupAt are local wall-clock times, "HH:MM".
	BriefingAt  string `mapstructure:"briefing_at" validate:"required"`
	KPIRollupAt string `mapstructure:"kpi_rollup_at" validate:"required"`
	// Location is an IANA zone name, e.g. Europe/London.
	Location string `mapstructure:"location" validate:"required"`
}

// Validate checks that all fields in SchedulerSettings are valid
func (s *SchedulerSettings) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SchedulerSettings: %w", err)
	}
	return nil
}

// ConnectorSettings groups all third-party connector configuration.
type ConnectorSettings struct {
	OpenRouter OpenRouterSettings `mapstructure:"openrouter"`
	ElevenLabs ElevenLabsSettings `mapstructure:"elevenlabs"`
	InVideo    APISettings        `mapstructure:"invideo"`
	Notion     NotionSettings     `mapstructure:"notion"`
	Linear     LinearSettings     `mapstructure:"linear"`
	Explorium  APISettings        `mapstructure:"explorium"`
	Polygon    APISettings        `mapstructure:"polygon"`
	Firecrawl  APISettings        `mapstructure:"firecrawl"`
	SMTP       SMTPSettings       `mapstructure:"smtp"`
}
