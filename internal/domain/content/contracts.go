package content

import "context"

// BriefingService runs the daily briefing pipeline: market data,
// trending sources, article and email generation, audio/video
// renditions, persistence and the subscriber campaign.
type BriefingService interface {
	GenerateDaily(ctx context.Context) (*BriefingResult, error)
}

// CopyKitService fetches and parses the CopyKit landing page.
type CopyKitService interface {
	Fetch(ctx context.Context) (*CopyKitData, error)
}

// ContentRepository defines the interface for ContentAsset-related operations
type ContentRepository interface {
	// Create adds a new ContentAsset to the database
	Create(ctx context.Context, asset *ContentAsset) error
	// GetByID retrieves a ContentAsset from the database by ID
	GetByID(ctx context.Context, assetID string) (*ContentAsset, error)
	// ListRecent returns up to limit assets, newest first
	ListRecent(ctx context.Context, limit int) ([]*ContentAsset, error)
}

// MarketDataConnector fetches the previous session's movers (Polygon).
type MarketDataConnector interface {
	TopMovers(ctx context.Context) (*MarketSnapshot, error)
}

// ScrapeConnector scrapes a URL into markdown (Firecrawl).
type ScrapeConnector interface {
	Scrape(ctx context.Context, url string) (string, error)
}

// ChatConnector generates text from a system/user prompt pair
// (OpenRouter chat completions).
type ChatConnector interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// SpeechConnector renders text to speech (ElevenLabs) and returns the
// location of the audio artifact.
type SpeechConnector interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

// VideoConnector renders a short clip from a script (InVideo) and
// returns the video URL.
type VideoConnector interface {
	Render(ctx context.Context, script string) (string, error)
}

// CampaignSender delivers the briefing email to subscriber addresses.
type CampaignSender interface {
	SendCampaign(ctx context.Context, subject, body string, recipients []string) error
}
