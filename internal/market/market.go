package market

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/yeojugoodnews/briefing_agent/internal/logger"
)

// Collector produces auxiliary data blocks keyed by datum name. A failed
// fetch degrades to an empty string for that key; it never returns an error
// and never decides run success.
type Collector interface {
	Collect(ctx context.Context) map[string]string
}

const defaultEndpoint = "https://finance.naver.com/sise/"

// index holds the fixed selectors for one index quote on the sise page.
var indexes = []struct {
	label     string
	valueSel  string
	changeSel string
}{
	{label: "코스피", valueSel: "#KOSPI_now", changeSel: "#KOSPI_change"},
	{label: "코스닥", valueSel: "#KOSDAQ_now", changeSel: "#KOSDAQ_change"},
}

// IndexScraper scrapes the KOSPI/KOSDAQ snapshot into a single "market"
// datum line.
type IndexScraper struct {
	endpoint string
	client   *http.Client
}

// NewIndexScraper builds the scraper. endpoint may be empty for the default.
func NewIndexScraper(endpoint string) *IndexScraper {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &IndexScraper{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Collect returns {"market": "코스피 2,534.12 (+11.40) · 코스닥 ..."} or an
// empty string for the key when the page or a selector is unavailable.
func (s *IndexScraper) Collect(ctx context.Context) map[string]string {
	return map[string]string{"market": s.snapshot(ctx)}
}

func (s *IndexScraper) snapshot(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		logger.Log.Warnf("market snapshot request failed: %v", err)
		return ""
	}

	res, err := s.client.Do(req)
	if err != nil {
		logger.Log.Warnf("market snapshot fetch failed: %v", err)
		return ""
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		logger.Log.Warnf("market snapshot fetch failed: status %d", res.StatusCode)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		logger.Log.Warnf("market snapshot parse failed: %v", err)
		return ""
	}

	var parts []string
	for _, idx := range indexes {
		value := strings.TrimSpace(doc.Find(idx.valueSel).First().Text())
		if value == "" {
			logger.Log.Warnf("market snapshot selector miss: %s", idx.valueSel)
			continue
		}
		change := strings.TrimSpace(doc.Find(idx.changeSel).First().Text())
		if change != "" {
			parts = append(parts, fmt.Sprintf("%s %s (%s)", idx.label, value, change))
		} else {
			parts = append(parts, fmt.Sprintf("%s %s", idx.label, value))
		}
	}
	return strings.Join(parts, " · ")
}
