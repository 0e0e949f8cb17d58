package copykit

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// envPattern matches the inline global environment object embedded in
// the landing page's script tags.
var envPattern = regexp.MustCompile(`__manus__global_env\s*=\s*(\{[^}]+\})`)

// PageData is the parsed landing-page snapshot.
type PageData struct {
	GlobalEnv       map[string]string
	Title           string
	MetaDescription string
	ContentLength   int
}

// Parse extracts the global environment variables, title and meta
// description from the CopyKit landing-page HTML.
func Parse(html string) (*PageData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	data := &PageData{
		GlobalEnv:     extractGlobalEnv(doc),
		Title:         strings.TrimSpace(doc.Find("title").First().Text()),
		ContentLength: len(html),
	}

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		data.MetaDescription = desc
	}

	return data, nil
}

// extractGlobalEnv scans script tags for the global environment object.
// Malformed JSON in one tag does not stop the scan.
func extractGlobalEnv(doc *goquery.Document) map[string]string {
	env := map[string]string{}

	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.Contains(text, "__manus__global_env") {
			return true
		}

		match := envPattern.FindStringSubmatch(text)
		if match == nil {
			return true
		}

		var parsed map[string]string
		if err := json.Unmarshal([]byte(match[1]), &parsed); err != nil {
			return true
		}

		env = parsed
		return false
	})

	return env
}
