package connector

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
)

// topMoversLimit caps how many tickers each snapshot list carries into
// the briefing prompt.
const topMoversLimit = 5

type polygonConnector struct {
	settings   *config.APISettings
	httpClient *http.Client
	logger     logger.Logger
}

// NewPolygonConnector creates a MarketDataConnector backed by the
// Polygon stock snapshot API
func NewPolygonConnector(settings *config.APISettings, logger logger.Logger) (content.MarketDataConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid polygon settings: %w", err)
	}

	return &polygonConnector{
		settings:   settings,
		httpClient: newHTTPClient(),
		logger:     logger,
	}, nil
}

type polygonSnapshotResponse struct {
	Tickers []struct {
		Ticker           string  `json:"ticker"`
		TodaysChangePerc float64 `json:"todaysChangePerc"`
		Day              struct {
			Close float64 `json:"c"`
		} `json:"day"`
	} `json:"tickers"`
}

func (c *polygonConnector) TopMovers(ctx context.Context) (*content.MarketSnapshot, error) {
	if c.settings.APIKey == "" {
		return nil, fmt.Errorf("polygon api key is not configured")
	}

	gainers, err := c.fetchSnapshot(ctx, "gainers")
	if err != nil {
		return nil, err
	}
	losers, err := c.fetchSnapshot(ctx, "losers")
	if err != nil {
		return nil, err
	}

	return &content.MarketSnapshot{
		Date:    time.Now().UTC().Format("2006-01-02"),
		Gainers: gainers,
		Losers:  losers,
	}, nil
}

func (c *polygonConnector) fetchSnapshot(ctx context.Context, direction string) ([]content.MarketMover, error) {
	url := fmt.Sprintf("%s/v2/snapshot/locale/us/markets/stocks/%s?apiKey=%s",
		c.settings.BaseURL, direction, c.settings.APIKey)

	var response polygonSnapshotResponse
	if err := doJSON(ctx, c.httpClient, http.MethodGet, url, nil, nil, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch %s snapshot: %w", direction, err)
	}

	limit := len(response.Tickers)
	if limit > topMoversLimit {
		limit = topMoversLimit
	}

	movers := make([]content.MarketMover, 0, limit)
	for _, ticker := range response.Tickers[:limit] {
		movers = append(movers, content.MarketMover{
			Ticker:    ticker.Ticker,
			Price:     ticker.Day.Close,
			ChangePct: ticker.TodaysChangePerc,
		})
	}
	return movers, nil
}
