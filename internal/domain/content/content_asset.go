package content

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Content asset types
const (
	AssetTypeArticle = "article"
	AssetTypeEmail   = "email"
	AssetTypeAudio   = "audio"
	AssetTypeVideo   = "video"
)

// ContentAsset is a generated piece of content (briefing article, email
// variant, audio or video rendition).
type ContentAsset struct {
	ID      string `validate:"required,uuid4"`
	Type    string `validate:"required,oneof=article email audio video"`
	Title   string `validate:"required,min=1,max=255"`
	Content string

	// EmailVariant holds the email rendition generated alongside an
	// article asset.
	EmailVariant string
	// AudioURL may be a local artifact path rather than a URL.
	AudioURL string
	VideoURL string `validate:"omitempty,url"`

	Published       bool
	PublishedAt     *time.Time
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating ContentAsset struct
func (a *ContentAsset) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// MarketMover is a single ticker snapshot.
type MarketMover struct {
	Ticker    string
	Price     float64
	ChangePct float64
}

// MarketSnapshot is the previous session's market summary.
type MarketSnapshot struct {
	Date    string
	Gainers []MarketMover
	Losers  []MarketMover
	Indices []MarketMover
}

// TrendingSource is one scraped source with its leading content.
type TrendingSource struct {
	URL     string
	Excerpt string
}

// Briefing is the generated daily briefing before persistence.
type Briefing struct {
	Title    string
	Article  string
	Email    string
	AudioURL string
	VideoURL string
}

// BriefingResult reports what a daily briefing run produced.
type BriefingResult struct {
	AssetID          string
	AudioURL         string
	VideoURL         string
	MarketDataPoints int
	TrendingSources  int
	Recipients       int
	// Partial is true when a non-essential step (audio, video, email
	// send) failed but the briefing itself was produced.
	Partial bool
}

// CopyKitData is the parsed landing-page snapshot served by the API.
type CopyKitData struct {
	GlobalEnv       map[string]string
	Title           string
	MetaDescription string
	ContentLength   int
	LastUpdated     time.Time
}
