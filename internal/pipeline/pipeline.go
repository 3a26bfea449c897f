package pipeline

import (
	"context"
	"fmt"

	"github.com/yeojugoodnews/briefing_agent/internal/aggregate"
	"github.com/yeojugoodnews/briefing_agent/internal/logger"
	"github.com/yeojugoodnews/briefing_agent/internal/model"
	"github.com/yeojugoodnews/briefing_agent/internal/profile"
)

// Stage names used in progress logs and the terminal report.
const (
	StageAggregating = "aggregating"
	StageCollecting  = "collecting-aux"
	StageComposing   = "composing"
	StagePublishing  = "publishing"
	StageNotifying   = "notifying"
	StageDone        = "done"
)

// Collector is the aggregation port.
type Collector interface {
	Collect(ctx context.Context, specs []profile.FeedSourceSpec) []model.FeedEntry
}

// AuxCollector is the auxiliary-data port. It never fails the run.
type AuxCollector interface {
	Collect(ctx context.Context) map[string]string
}

// Composer is the article-generation port.
type Composer interface {
	Compose(ctx context.Context, entries []model.FeedEntry, aux map[string]string, p *profile.Profile) (model.ComposedArticle, error)
}

// Publisher is the content-endpoint port.
type Publisher interface {
	Publish(ctx context.Context, article model.ComposedArticle, aux map[string]string, p *profile.Profile) model.PublishResult
}

// Notifier is the best-effort announcement port.
type Notifier interface {
	Notify(ctx context.Context, article model.ComposedArticle, result model.PublishResult, p *profile.Profile)
}

// Engine sequences one pipeline run for a single profile:
// aggregate -> auxiliary -> compose -> publish -> notify.
type Engine struct {
	prof      *profile.Profile
	collector Collector
	aux       AuxCollector
	composer  Composer
	publisher Publisher
	notifier  Notifier

	// Progress, when set, receives each stage name with a count
	// (entries, aux data, or status code depending on the stage).
	Progress func(stage string, n int)
}

// New wires an Engine. aux may be nil when the profile wants no auxiliary
// data.
func New(prof *profile.Profile, collector Collector, aux AuxCollector, composer Composer, publisher Publisher, notifier Notifier) *Engine {
	return &Engine{
		prof:      prof,
		collector: collector,
		aux:       aux,
		composer:  composer,
		publisher: publisher,
		notifier:  notifier,
	}
}

func (e *Engine) progress(stage string, n int) {
	if e.Progress != nil {
		e.Progress(stage, n)
	}
}

// Run executes the pipeline to its terminal report. Only two conditions
// are fatal: an empty aggregation and a generation failure — both return
// a clean error for the caller to surface as a non-zero process outcome.
// A publish failure still reaches the terminal report; notification never
// affects the outcome.
func (e *Engine) Run(ctx context.Context) (*model.RunReport, error) {
	report := &model.RunReport{Profile: e.prof.Name}

	// 1. aggregate feeds
	logger.Log.Infof("[1/4] collecting news for profile %s (%d sources)", e.prof.Name, len(e.prof.Feeds))
	entries := e.collector.Collect(ctx, e.prof.Feeds)
	e.progress(StageAggregating, len(entries))
	if len(entries) == 0 {
		report.Add(StageAggregating, "aborted: no entries", 0)
		return report, fmt.Errorf("aggregation [%s]: %w", e.prof.Name, aggregate.ErrNoEntries)
	}
	report.Add(StageAggregating, "ok", len(entries))
	logger.Log.Infof("  -> %d entries collected", len(entries))

	// 2. auxiliary data, best effort
	aux := map[string]string{}
	if e.aux != nil && e.prof.HasAux() {
		aux = e.aux.Collect(ctx)
	}
	e.progress(StageCollecting, len(aux))
	report.Add(StageCollecting, "ok", len(aux))

	// 3. compose the article
	logger.Log.Infof("[2/4] composing article")
	article, err := e.composer.Compose(ctx, entries, aux, e.prof)
	if err != nil {
		report.Add(StageComposing, "aborted: generation failure", 0)
		return report, fmt.Errorf("composition [%s]: %w", e.prof.Name, err)
	}
	e.progress(StageComposing, len(article.Body))
	report.Add(StageComposing, "ok", len(article.Body))
	logger.Log.Infof("  -> article composed: %s", article.Title)

	// 4. publish; failure here is recorded, not fatal
	logger.Log.Infof("[3/4] publishing")
	result := e.publisher.Publish(ctx, article, aux, e.prof)
	report.Publish = result
	e.progress(StagePublishing, result.StatusCode)
	if result.Success {
		report.Add(StagePublishing, "ok", result.StatusCode)
	} else {
		report.Add(StagePublishing, "failed", result.StatusCode)
	}

	// 5. notify only a successful publish
	logger.Log.Infof("[4/4] notifying")
	if result.Success && e.notifier != nil {
		e.notifier.Notify(ctx, article, result, e.prof)
		report.Add(StageNotifying, "ok", 1)
	} else {
		report.Add(StageNotifying, "skipped", 0)
	}
	e.progress(StageNotifying, 0)

	report.Add(StageDone, outcome(result), 0)
	return report, nil
}

func outcome(result model.PublishResult) string {
	if result.Success {
		return "published: " + result.URL
	}
	return fmt.Sprintf("publish failed: status %d", result.StatusCode)
}
