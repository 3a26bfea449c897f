package compose

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/yeojugoodnews/briefing_agent/internal/llm"
	"github.com/yeojugoodnews/briefing_agent/internal/model"
	"github.com/yeojugoodnews/briefing_agent/internal/profile"
)

var weekdaysKo = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// DateDescriptor is the localized "today" used by both the prompt and the
// published title. Both strings derive from one instant so a run straddling
// midnight cannot produce a title and body that disagree on the day.
type DateDescriptor struct {
	Date    string
	Weekday string
}

// Describe renders t in the target locale, e.g. "2026년 08월 29일" / "토요일".
func Describe(t time.Time) DateDescriptor {
	return DateDescriptor{
		Date:    t.Format("2006년 01월 02일"),
		Weekday: weekdaysKo[int(t.Weekday())],
	}
}

// Composer fills the profile's prompt template with aggregated entries and
// auxiliary data and invokes the generation capability once.
type Composer struct {
	gen llm.Generator
	now func() time.Time
	loc *time.Location
}

// New builds a Composer. now may be nil for the wall clock; loc may be nil
// for Asia/Seoul (UTC+9 when the zone database is unavailable).
func New(gen llm.Generator, now func() time.Time, loc *time.Location) *Composer {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		var err error
		loc, err = time.LoadLocation("Asia/Seoul")
		if err != nil {
			loc = time.FixedZone("KST", 9*60*60)
		}
	}
	return &Composer{gen: gen, now: now, loc: loc}
}

// Compose renders the prompt and returns the generated article together
// with the title computed from the same date descriptor. A generation
// failure is fatal for the run and propagates unchanged; the model's
// output is never parsed or repaired here — the editorial rules inside
// the template are advisory to the model only.
func (c *Composer) Compose(ctx context.Context, entries []model.FeedEntry, aux map[string]string, p *profile.Profile) (model.ComposedArticle, error) {
	today := Describe(c.now().In(c.loc))

	prompt, err := renderPrompt(p, today, entries, aux)
	if err != nil {
		return model.ComposedArticle{}, fmt.Errorf("render prompt [%s]: %w", p.Name, err)
	}

	body, err := c.gen.Generate(ctx, prompt, p.MaxTokens)
	if err != nil {
		return model.ComposedArticle{}, fmt.Errorf("generate article [%s]: %w", p.Name, err)
	}

	return model.ComposedArticle{
		Title: fmt.Sprintf(p.TitleFormat, today.Date),
		Body:  body,
	}, nil
}

func renderPrompt(p *profile.Profile, today DateDescriptor, entries []model.FeedEntry, aux map[string]string) (string, error) {
	tpl, err := template.New(p.Name).Parse(p.PromptTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		Date    string
		Weekday string
		Entries string
		Quotas  string
		Aux     map[string]string
	}{
		Date:    today.Date,
		Weekday: today.Weekday,
		Entries: EntryBlock(entries, p.EntryStyle),
		Quotas:  quotaLine(p.Quotas),
		Aux:     aux,
	}

	var sb strings.Builder
	if err := tpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// EntryBlock serializes entries into the prompt's textual block, preserving
// aggregator order.
func EntryBlock(entries []model.FeedEntry, style profile.EntryStyle) string {
	var sb strings.Builder
	for i, e := range entries {
		switch style {
		case profile.EntryLabeled:
			fmt.Fprintf(&sb, "[%s] %s\n%s\n\n", e.Source, e.Title, e.Summary)
		default:
			fmt.Fprintf(&sb, "%d. [%s] %s\n%s\n\n", i+1, e.Source, e.Title, e.Summary)
		}
	}
	return sb.String()
}

func quotaLine(quotas []profile.SectionQuota) string {
	if len(quotas) == 0 {
		return ""
	}
	parts := make([]string, 0, len(quotas))
	for _, q := range quotas {
		parts = append(parts, fmt.Sprintf("%s %d건", q.Section, q.Count))
	}
	return strings.Join(parts, ", ")
}
