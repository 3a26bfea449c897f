package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"

	"github.com/yeojugoodnews/briefing_agent/internal/logger"
	"github.com/yeojugoodnews/briefing_agent/internal/model"
	"github.com/yeojugoodnews/briefing_agent/internal/profile"
)

const (
	fetchTimeout    = 30 * time.Second
	maxExpandedSize = 600
)

// Source normalizes one external feed into FeedEntry values. A feed that
// cannot be fetched or parsed yields a single error, never partial entries.
type Source struct {
	parser *gofeed.Parser

	// expandSummaries pulls the article page for items whose feed summary
	// is empty and substitutes the extracted text.
	expandSummaries bool
}

// NewSource builds a feed source adapter.
func NewSource(expandSummaries bool) *Source {
	return &Source{
		parser:          gofeed.NewParser(),
		expandSummaries: expandSummaries,
	}
}

// Fetch retrieves spec's feed document and returns its entries in document
// order. Missing item fields become empty strings.
func (s *Source) Fetch(ctx context.Context, spec profile.FeedSourceSpec) ([]model.FeedEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	parsed, err := s.parser.ParseURLWithContext(spec.Endpoint, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed [%s]: %w", spec.Name, err)
	}

	entries := make([]model.FeedEntry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		summary := item.Description
		if summary == "" && s.expandSummaries && item.Link != "" {
			summary = s.expandSummary(spec.Name, item.Link)
		}
		entries = append(entries, model.FeedEntry{
			Source:      spec.Name,
			Title:       item.Title,
			Link:        item.Link,
			Summary:     summary,
			PublishedAt: item.PublishedParsed,
		})
	}
	return entries, nil
}

// expandSummary extracts the article body text from the item's page.
// Failure falls back to an empty summary.
func (s *Source) expandSummary(source, link string) string {
	article, err := readability.FromURL(link, fetchTimeout)
	if err != nil {
		logger.Log.Warnf("summary expansion failed [%s] %s: %v", source, link, err)
		return ""
	}
	text := article.TextContent
	if len(text) > maxExpandedSize {
		text = text[:maxExpandedSize]
	}
	return text
}
