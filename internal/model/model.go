package model

import "time"

// FeedEntry is one normalized headline taken from a feed document.
// Title and Summary are always present, possibly as empty strings.
type FeedEntry struct {
	Source      string
	Title       string
	Link        string
	Summary     string
	PublishedAt *time.Time
}

// ComposedArticle is the generated briefing before presentation rules apply.
type ComposedArticle struct {
	Title string
	Body  string
}

// PublishResult is the terminal artifact of a run.
type PublishResult struct {
	Success    bool
	URL        string
	StatusCode int
	RawError   string
}

// StageReport records the outcome of one pipeline stage.
type StageReport struct {
	Stage   string
	Outcome string
	Count   int
}

// RunReport aggregates per-stage outcomes for the final summary.
type RunReport struct {
	Profile string
	Stages  []StageReport
	Publish PublishResult
}

// Add appends a stage record to the report.
func (r *RunReport) Add(stage, outcome string, count int) {
	r.Stages = append(r.Stages, StageReport{Stage: stage, Outcome: outcome, Count: count})
}
