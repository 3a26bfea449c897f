package aggregate

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/yeojugoodnews/briefing_agent/internal/model"
	"github.com/yeojugoodnews/briefing_agent/internal/profile"
)

// fakeFetcher serves canned entries per source name.
type fakeFetcher struct {
	entries map[string][]model.FeedEntry
	fail    map[string]bool
}

func (f *fakeFetcher) Fetch(ctx context.Context, spec profile.FeedSourceSpec) ([]model.FeedEntry, error) {
	if f.fail[spec.Name] {
		return nil, errors.New("feed unreachable")
	}
	return f.entries[spec.Name], nil
}

func entriesFor(source string, n int) []model.FeedEntry {
	out := make([]model.FeedEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.FeedEntry{Source: source, Title: fmt.Sprintf("%s-%d", source, i)})
	}
	return out
}

func specs(caps ...int) []profile.FeedSourceSpec {
	out := make([]profile.FeedSourceSpec, 0, len(caps))
	for i, c := range caps {
		out = append(out, profile.FeedSourceSpec{Name: fmt.Sprintf("s%d", i), ItemCap: c})
	}
	return out
}

func TestCollect_CapsAndOrder(t *testing.T) {
	ff := &fakeFetcher{entries: map[string][]model.FeedEntry{
		"s0": entriesFor("s0", 8),
		"s1": entriesFor("s1", 5),
		"s2": entriesFor("s2", 2),
		"s3": entriesFor("s3", 9),
	}}
	agg := New(ff, nil)

	got := agg.Collect(context.Background(), specs(5, 5, 5, 5))

	// sum of min(len, cap): 5 + 5 + 2 + 5
	if len(got) != 17 {
		t.Fatalf("Collect() len = %d, want 17", len(got))
	}
	// concatenation must follow declaration order regardless of completion order
	wantOrder := []string{"s0", "s1", "s2", "s3"}
	idx := 0
	for _, source := range wantOrder {
		n := map[string]int{"s0": 5, "s1": 5, "s2": 2, "s3": 5}[source]
		for i := 0; i < n; i++ {
			if got[idx].Source != source {
				t.Fatalf("entry %d from %s, want %s", idx, got[idx].Source, source)
			}
			idx++
		}
	}
	// per-source ordering preserved, not re-sorted
	if got[0].Title != "s0-0" || got[4].Title != "s0-4" {
		t.Errorf("per-source order not preserved: %q, %q", got[0].Title, got[4].Title)
	}
}

func TestCollect_FullCaps(t *testing.T) {
	ff := &fakeFetcher{entries: map[string][]model.FeedEntry{
		"s0": entriesFor("s0", 5), "s1": entriesFor("s1", 6),
		"s2": entriesFor("s2", 7), "s3": entriesFor("s3", 5),
	}}
	got := New(ff, nil).Collect(context.Background(), specs(5, 5, 5, 5))
	if len(got) != 20 {
		t.Errorf("Collect() len = %d, want 20", len(got))
	}
}

func TestCollect_PartialFailure(t *testing.T) {
	ff := &fakeFetcher{
		entries: map[string][]model.FeedEntry{
			"s0": entriesFor("s0", 3),
			"s2": entriesFor("s2", 3),
			"s3": entriesFor("s3", 3),
		},
		fail: map[string]bool{"s1": true},
	}
	got := New(ff, nil).Collect(context.Background(), specs(5, 5, 5, 5))
	if len(got) != 9 {
		t.Fatalf("Collect() len = %d, want 9", len(got))
	}
	for _, e := range got {
		if e.Source == "s1" {
			t.Errorf("failed source contributed entry %q", e.Title)
		}
	}
}

func TestCollect_AllFailedIsEmpty(t *testing.T) {
	ff := &fakeFetcher{fail: map[string]bool{"s0": true, "s1": true}}
	got := New(ff, nil).Collect(context.Background(), specs(5, 5))
	if len(got) != 0 {
		t.Errorf("Collect() len = %d, want 0", len(got))
	}
}

func TestCollect_ZeroCap(t *testing.T) {
	ff := &fakeFetcher{entries: map[string][]model.FeedEntry{"s0": entriesFor("s0", 4)}}
	got := New(ff, nil).Collect(context.Background(), specs(0))
	if len(got) != 0 {
		t.Errorf("Collect() len = %d, want 0 for zero cap", len(got))
	}
}
