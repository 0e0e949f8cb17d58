package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/automations"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/subscriptions"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"github.com/google/uuid"
)

// briefingSKU is the subscription SKU granted access to the daily
// briefing campaign.
const briefingSKU = "DAILYBRIEF-MONTHLY"

// trendingSources are scraped for the briefing prompt, first three only.
var trendingSources = []string{
	"https://techcrunch.com",
	"https://www.theverge.com",
	"https://news.ycombinator.com",
	"https://www.bloomberg.com/markets",
	"https://www.cnbc.com/markets/",
}

const briefingSystemPrompt = "You are a financial analyst and content creator. Generate a daily briefing that " +
	"synthesizes market data and trending topics into a 5-point thesis with contrarian insights. " +
	"Write in a professional yet engaging tone."

const emailSystemPrompt = "You are an email copywriter. Convert this briefing into an engaging email with a " +
	"compelling subject line and clear CTA."

// briefingService implements the BriefingService interface for the
// daily briefing pipeline
type briefingService struct {
	marketData       content.MarketDataConnector
	scraper          content.ScrapeConnector
	chat             content.ChatConnector
	speech           content.SpeechConnector
	video            content.VideoConnector
	contentRepo      content.ContentRepository
	subscriptionRepo subscriptions.SubscriptionRepository
	campaignSender   content.CampaignSender
	runRepo          automations.RunRepository
	logger           logger.Logger
}

// NewBriefingService creates a new briefingService instance
func NewBriefingService(
	marketData content.MarketDataConnector,
	scraper content.ScrapeConnector,
	chat content.ChatConnector,
	speech content.SpeechConnector,
	video content.VideoConnector,
	contentRepo content.ContentRepository,
	subscriptionRepo subscriptions.SubscriptionRepository,
	campaignSender content.CampaignSender,
	runRepo automations.RunRepository,
	logger logger.Logger,
) (content.BriefingService, error) {
	return &briefingService{
		marketData:       marketData,
		scraper:          scraper,
		chat:             chat,
		speech:           speech,
		video:            video,
		contentRepo:      contentRepo,
		subscriptionRepo: subscriptionRepo,
		campaignSender:   campaignSender,
		runRepo:          runRepo,
		logger:           logger,
	}, nil
}

// GenerateDaily runs the full pipeline. Article generation and
// persistence are essential; audio, video and the campaign only
// downgrade the run to partial when they fail.
func (s *briefingService) GenerateDaily(ctx context.Context) (*content.BriefingResult, error) {
	run := &automations.Run{
		ID:           uuid.NewString(),
		AutomationID: automations.AutomationDailyBriefing,
		Name:         "Daily Briefing",
		Status:       automations.StatusCompleted,
		StartedAt:    time.Now().UTC(),
	}

	result := &content.BriefingResult{}

	snapshot, err := s.marketData.TopMovers(ctx)
	if err != nil {
		s.logger.Warn("Market data fetch failed: ", err)
		snapshot = &content.MarketSnapshot{Date: time.Now().UTC().Format("2006-01-02")}
		result.Partial = true
	}
	result.MarketDataPoints = len(snapshot.Gainers) + len(snapshot.Losers)

	sources := s.scrapeTrendingSources(ctx)
	result.TrendingSources = len(sources)

	article, err := s.chat.Complete(ctx, briefingSystemPrompt, s.buildArticlePrompt(snapshot, sources))
	if err != nil {
		run.Finish(automations.StatusFailed, err.Error())
		s.recordRun(ctx, run)
		return nil, fmt.Errorf("article generation failed: %w", err)
	}

	email, err := s.chat.Complete(ctx, emailSystemPrompt, s.buildEmailPrompt(article))
	if err != nil {
		s.logger.Warn("Email generation failed: ", err)
		result.Partial = true
	}

	audioURL, err := s.speech.Synthesize(ctx, article)
	if err != nil {
		s.logger.Warn("Audio generation failed: ", err)
		result.Partial = true
	}
	result.AudioURL = audioURL

	videoURL, err := s.video.Render(ctx, article)
	if err != nil {
		s.logger.Warn("Video generation failed: ", err)
		result.Partial = true
	}
	result.VideoURL = videoURL

	asset := &content.ContentAsset{
		ID:              uuid.NewString(),
		Type:            content.AssetTypeArticle,
		Title:           fmt.Sprintf("Daily Briefing - %s", time.Now().UTC().Format("January 2, 2006")),
		Content:         article,
		EmailVariant:    email,
		AudioURL:        audioURL,
		VideoURL:        videoURL,
		DateTimeCreated: time.Now().UTC(),
	}
	if err := s.contentRepo.Create(ctx, asset); err != nil {
		run.Finish(automations.StatusFailed, err.Error())
		s.recordRun(ctx, run)
		return nil, fmt.Errorf("failed to persist briefing: %w", err)
	}
	result.AssetID = asset.ID

	if email != "" {
		recipients, err := s.activeSubscriberEmails(ctx)
		if err != nil {
			s.logger.Warn("Failed to list subscribers: ", err)
			result.Partial = true
		} else if err := s.campaignSender.SendCampaign(ctx, asset.Title, email, recipients); err != nil {
			s.logger.Warn("Campaign send failed: ", err)
			result.Partial = true
		} else {
			result.Recipients = len(recipients)
		}
	}

	status := automations.StatusCompleted
	if result.Partial {
		status = automations.StatusPartial
	}
	run.ExecutionData = map[string]any{
		"asset_id":   asset.ID,
		"recipients": result.Recipients,
	}
	run.Finish(status, "")
	s.recordRun(ctx, run)

	return result, nil
}

// scrapeTrendingSources scrapes the first three sources; failures on
// individual sources are skipped.
func (s *briefingService) scrapeTrendingSources(ctx context.Context) []content.TrendingSource {
	var scraped []content.TrendingSource
	for _, source := range trendingSources[:3] {
		markdown, err := s.scraper.Scrape(ctx, source)
		if err != nil {
			s.logger.Warn("Failed to scrape ", source, ": ", err)
			continue
		}
		if len(markdown) > 1000 {
			markdown = markdown[:1000]
		}
		scraped = append(scraped, content.TrendingSource{URL: source, Excerpt: markdown})
	}
	return scraped
}

func (s *briefingService) buildArticlePrompt(snapshot *content.MarketSnapshot, sources []content.TrendingSource) string {
	gainers, _ := json.Marshal(snapshot.Gainers)
	losers, _ := json.Marshal(snapshot.Losers)

	var trending strings.Builder
	for _, source := range sources {
		fmt.Fprintf(&trending, "- %s: %s\n", source.URL, source.Excerpt)
	}

	return fmt.Sprintf(`Based on this data, create a daily briefing:

Market Data:
- Top Gainers: %s
- Top Losers: %s

Trending Topics:
%s

Structure:
1. Market Overview (2-3 sentences)
2. Key Movers Analysis (3-4 sentences)
3. Trending Topics Synthesis (3-4 sentences)
4. Contrarian Take (2-3 sentences)
5. Action Items (3 bullet points)`, gainers, losers, trending.String())
}

func (s *briefingService) buildEmailPrompt(article string) string {
	return fmt.Sprintf(`Convert this briefing into an email:

%s

Include:
- Subject line
- Preheader
- Body with HTML formatting
- CTA to upgrade/subscribe`, article)
}

func (s *briefingService) activeSubscriberEmails(ctx context.Context) ([]string, error) {
	subs, err := s.subscriptionRepo.ListActiveBySKU(ctx, briefingSKU)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(subs))
	for _, sub := range subs {
		emails = append(emails, sub.CustomerEmail)
	}
	return emails, nil
}

func (s *briefingService) recordRun(ctx context.Context, run *automations.Run) {
	if err := s.runRepo.Create(ctx, run); err != nil {
		s.logger.Warn("Failed to record automation run: ", err)
	}
}
