package publish

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yeojugoodnews/briefing_agent/internal/model"
	"github.com/yeojugoodnews/briefing_agent/internal/profile"
	"github.com/yeojugoodnews/briefing_agent/internal/wordpress"
)

func plainProfile() *profile.Profile {
	return &profile.Profile{Name: "plain", OutputMode: profile.OutputHTML}
}

func TestDecorate_PassthroughIsIdempotent(t *testing.T) {
	p := plainProfile()
	once := Decorate("<p>본문</p>", nil, p)
	twice := Decorate(once, nil, p)
	if once != "<p>본문</p>" {
		t.Errorf("Decorate() = %q, want unchanged body", once)
	}
	if twice != once {
		t.Errorf("Decorate() not idempotent: %q vs %q", twice, once)
	}
}

func TestDecorate_Banner(t *testing.T) {
	p := &profile.Profile{Name: "banner", BannerURL: "X", OutputMode: profile.OutputHTML}
	got := Decorate("BODY", nil, p)
	want := "<img src=\"X\" class=\"briefing-banner\" />\n\nBODY"
	if got != want {
		t.Errorf("Decorate() = %q, want %q", got, want)
	}
}

func TestDecorate_AuxBlock(t *testing.T) {
	p := &profile.Profile{Name: "aux", AuxKeys: []string{"market"}, OutputMode: profile.OutputHTML}
	got := Decorate("BODY", map[string]string{"market": "코스피 2,500.00"}, p)
	want := "BODY\n\n<p class=\"briefing-aux\">코스피 2,500.00</p>"
	if got != want {
		t.Errorf("Decorate() = %q, want %q", got, want)
	}
}

func TestDecorate_MissingAuxDatumOmitsBlock(t *testing.T) {
	p := &profile.Profile{Name: "aux", AuxKeys: []string{"market"}, OutputMode: profile.OutputHTML}
	got := Decorate("BODY", map[string]string{"market": ""}, p)
	if got != "BODY" {
		t.Errorf("Decorate() = %q, want bare body when datum degraded to empty", got)
	}
}

func TestPublish_CreatedReportsURL(t *testing.T) {
	var received wordpress.Post
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/posts" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if user, pass, ok := r.BasicAuth(); !ok || user != "editor" || pass != "secret" {
			t.Errorf("basic auth = %q %q %v", user, pass, ok)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 1, "link": "https://site/p/1"})
	}))
	defer srv.Close()

	p := &profile.Profile{Name: "banner", BannerURL: "X", CategoryIDs: []int{7}, OutputMode: profile.OutputHTML}
	pub := New(wordpress.NewClient(srv.URL, "editor", "secret"))

	result := pub.Publish(context.Background(), model.ComposedArticle{Title: "제목", Body: "BODY"}, nil, p)

	if !result.Success {
		t.Fatalf("Publish() success = false: %+v", result)
	}
	if result.URL != "https://site/p/1" {
		t.Errorf("URL = %q", result.URL)
	}
	if received.Content != "<img src=\"X\" class=\"briefing-banner\" />\n\nBODY" {
		t.Errorf("submitted body = %q", received.Content)
	}
	if received.Status != "publish" || len(received.Categories) != 1 || received.Categories[0] != 7 {
		t.Errorf("submitted post = %+v", received)
	}
}

func TestPublish_NonCreatedIsRecordedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("db connection refused"))
	}))
	defer srv.Close()

	pub := New(wordpress.NewClient(srv.URL, "editor", "secret"))
	result := pub.Publish(context.Background(), model.ComposedArticle{Title: "제목", Body: "BODY"}, nil, plainProfile())

	if result.Success {
		t.Fatal("Publish() success = true for status 500")
	}
	if result.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", result.StatusCode)
	}
	if result.RawError != "db connection refused" {
		t.Errorf("RawError = %q", result.RawError)
	}
}

func TestPublish_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	pub := New(wordpress.NewClient(srv.URL, "editor", "secret"))
	result := pub.Publish(context.Background(), model.ComposedArticle{Title: "제목", Body: "BODY"}, nil, plainProfile())
	if result.Success {
		t.Fatal("Publish() success = true on transport failure")
	}
	if result.RawError == "" {
		t.Error("RawError empty on transport failure")
	}
}
