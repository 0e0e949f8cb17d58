package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
)

type elevenLabsConnector struct {
	settings   *config.ElevenLabsSettings
	httpClient *http.Client
	logger     logger.Logger
}

// NewElevenLabsConnector creates a SpeechConnector backed by the
// ElevenLabs text-to-speech API. The audio artifact is written to the
// configured output directory.
func NewElevenLabsConnector(settings *config.ElevenLabsSettings, logger logger.Logger) (content.SpeechConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid elevenlabs settings: %w", err)
	}

	return &elevenLabsConnector{
		settings:   settings,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

func (c *elevenLabsConnector) Synthesize(ctx context.Context, text string) (string, error) {
	if c.settings.APIKey == "" {
		return "", fmt.Errorf("elevenlabs api key is not configured")
	}

	body, err := json.Marshal(map[string]string{
		"text":     text,
		"model_id": c.settings.ModelID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode synthesis request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.settings.BaseURL, c.settings.VoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build synthesis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.settings.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("synthesis request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("synthesis returned status %d: %s", resp.StatusCode, string(data))
	}

	filename := fmt.Sprintf("briefing_%s.mp3", time.Now().UTC().Format("20060102"))
	path := filepath.Join(c.settings.OutputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}

	c.logger.Info("Wrote audio briefing to ", path)
	return path, nil
}
