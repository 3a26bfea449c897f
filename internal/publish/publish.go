package publish

import (
	"context"
	"fmt"
	"strings"

	"github.com/yeojugoodnews/briefing_agent/internal/logger"
	"github.com/yeojugoodnews/briefing_agent/internal/model"
	"github.com/yeojugoodnews/briefing_agent/internal/profile"
	"github.com/yeojugoodnews/briefing_agent/internal/wordpress"
)

// Publisher wraps the composed article in the profile's presentation rules
// and submits it to the content endpoint.
type Publisher struct {
	wp *wordpress.Client
}

// New builds a Publisher over the given WordPress client.
func New(wp *wordpress.Client) *Publisher {
	return &Publisher{wp: wp}
}

// Decorate applies the profile's presentation rules to body: a leading
// banner image block when the profile declares one, and a trailing
// auxiliary block when the profile asks for auxiliary keys that produced
// data. With neither configured the body passes through unchanged, so the
// operation is idempotent for plain profiles.
func Decorate(body string, aux map[string]string, p *profile.Profile) string {
	out := body
	if p.BannerURL != "" {
		out = fmt.Sprintf("<img src=%q class=\"briefing-banner\" />\n\n%s", p.BannerURL, out)
	}
	if block := auxBlock(aux, p); block != "" {
		out = out + "\n\n" + block
	}
	return out
}

func auxBlock(aux map[string]string, p *profile.Profile) string {
	var lines []string
	for _, key := range p.AuxKeys {
		if v := aux[key]; v != "" {
			lines = append(lines, v)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	if p.OutputMode == profile.OutputHTML {
		return "<p class=\"briefing-aux\">" + strings.Join(lines, "<br/>") + "</p>"
	}
	return strings.Join(lines, "\n")
}

// Publish decorates and submits the article. Success is strictly the
// endpoint's 201 status; any other outcome is recorded as a non-fatal
// failure and the run carries on to its terminal report.
func (p *Publisher) Publish(ctx context.Context, article model.ComposedArticle, aux map[string]string, prof *profile.Profile) model.PublishResult {
	post := wordpress.Post{
		Title:         article.Title,
		Content:       Decorate(article.Body, aux, prof),
		Status:        "publish",
		Categories:    prof.CategoryIDs,
		FeaturedMedia: prof.MediaID,
	}

	resp, status, rawBody, err := p.wp.CreatePost(ctx, post)
	if err != nil {
		logger.Log.Errorf("publish failed [%s]: %v", prof.Name, err)
		return model.PublishResult{Success: false, StatusCode: status, RawError: err.Error()}
	}
	if resp == nil {
		logger.Log.Errorf("publish rejected [%s]: status %d: %s", prof.Name, status, rawBody)
		return model.PublishResult{Success: false, StatusCode: status, RawError: rawBody}
	}

	logger.Log.Infof("published [%s]: %s", prof.Name, resp.Link)
	return model.PublishResult{Success: true, URL: resp.Link, StatusCode: status}
}
