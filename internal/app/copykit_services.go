package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/copykit"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
)

// maxCopyKitPageBytes bounds how much landing-page HTML is read.
const maxCopyKitPageBytes = 2 << 20

// copyKitService implements the CopyKitService interface for fetching
// and parsing the CopyKit landing page
type copyKitService struct {
	settings   *config.CopyKitSettings
	httpClient *http.Client
	logger     logger.Logger
}

// NewCopyKitService creates a new copyKitService instance
func NewCopyKitService(settings *config.CopyKitSettings, logger logger.Logger) (content.CopyKitService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid copykit settings: %w", err)
	}

	timeout := time.Duration(settings.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &copyKitService{
		settings:   settings,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

func (s *copyKitService) Fetch(ctx context.Context) (*content.CopyKitData, error) {
	if s.settings.URL == "" {
		return nil, fmt.Errorf("copykit url is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.settings.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch landing page: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("landing page returned status %d", resp.StatusCode)
	}

	html, err := io.ReadAll(io.LimitReader(resp.Body, maxCopyKitPageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read landing page: %w", err)
	}

	page, err := copykit.Parse(string(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse landing page: %w", err)
	}

	s.logger.Info("Fetched CopyKit page '", page.Title, "' with ", len(page.GlobalEnv), " env entries")

	return &content.CopyKitData{
		GlobalEnv:       page.GlobalEnv,
		Title:           page.Title,
		MetaDescription: page.MetaDescription,
		ContentLength:   page.ContentLength,
		LastUpdated:     time.Now().UTC(),
	}, nil
}
