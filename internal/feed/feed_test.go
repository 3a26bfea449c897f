package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yeojugoodnews/briefing_agent/internal/profile"
)

const rssDoc = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>테스트 피드</title>
<item>
  <title>첫 번째 기사</title>
  <link>https://news.example/1</link>
  <description>요약 하나</description>
  <pubDate>Sat, 29 Aug 2026 06:00:00 +0900</pubDate>
</item>
<item>
  <title>두 번째 기사</title>
  <link>https://news.example/2</link>
</item>
</channel>
</rss>`

func TestFetch_NormalizesEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssDoc))
	}))
	defer srv.Close()

	src := NewSource(false)
	got, err := src.Fetch(context.Background(), profile.FeedSourceSpec{Name: "테스트", Endpoint: srv.URL, ItemCap: 5})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Fetch() len = %d, want 2", len(got))
	}
	if got[0].Source != "테스트" || got[0].Title != "첫 번째 기사" || got[0].Summary != "요약 하나" {
		t.Errorf("entry[0] = %+v", got[0])
	}
	if got[0].PublishedAt == nil {
		t.Error("entry[0].PublishedAt = nil")
	}
	// missing fields become empty strings, never absent
	if got[1].Summary != "" {
		t.Errorf("entry[1].Summary = %q, want empty", got[1].Summary)
	}
	if got[1].PublishedAt != nil {
		t.Errorf("entry[1].PublishedAt = %v, want nil", got[1].PublishedAt)
	}
}

func TestFetch_MalformedFeedIsSingleError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not a feed</html>"))
	}))
	defer srv.Close()

	src := NewSource(false)
	got, err := src.Fetch(context.Background(), profile.FeedSourceSpec{Name: "깨진피드", Endpoint: srv.URL})
	if err == nil {
		t.Fatalf("Fetch() error = nil, entries = %v", got)
	}
	if len(got) != 0 {
		t.Errorf("Fetch() returned %d partial entries alongside error", len(got))
	}
}

func TestFetch_UnreachableFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	src := NewSource(false)
	if _, err := src.Fetch(context.Background(), profile.FeedSourceSpec{Name: "다운", Endpoint: srv.URL}); err == nil {
		t.Fatal("Fetch() error = nil for unreachable endpoint")
	}
}
