package aggregate

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/time/rate"

	"github.com/yeojugoodnews/briefing_agent/internal/logger"
	"github.com/yeojugoodnews/briefing_agent/internal/model"
	"github.com/yeojugoodnews/briefing_agent/internal/profile"
)

// ErrNoEntries signals that every configured source failed or came back
// empty. It is the run's only precondition-style fatal abort.
var ErrNoEntries = errors.New("no entries collected from any source")

// Fetcher is the port a feed source adapter implements.
type Fetcher interface {
	Fetch(ctx context.Context, spec profile.FeedSourceSpec) ([]model.FeedEntry, error)
}

// Aggregator runs all configured sources and concatenates their capped
// contributions in source-declaration order.
type Aggregator struct {
	fetcher Fetcher
	limiter *rate.Limiter
}

// New builds an Aggregator. limiter may be nil to disable pacing.
func New(fetcher Fetcher, limiter *rate.Limiter) *Aggregator {
	return &Aggregator{fetcher: fetcher, limiter: limiter}
}

// Collect fetches every source concurrently and returns at most ItemCap
// entries per source, concatenated in the order specs were declared.
// A failed source contributes zero entries; the empty total is a valid
// return value and the caller's abort trigger.
func (a *Aggregator) Collect(ctx context.Context, specs []profile.FeedSourceSpec) []model.FeedEntry {
	perSource := make([][]model.FeedEntry, len(specs))

	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(i int, spec profile.FeedSourceSpec) {
			defer wg.Done()

			if a.limiter != nil {
				if err := a.limiter.Wait(ctx); err != nil {
					logger.Log.Errorf("feed fetch cancelled [%s]: %v", spec.Name, err)
					return
				}
			}

			entries, err := a.fetcher.Fetch(ctx, spec)
			if err != nil {
				logger.Log.Errorf("feed collection failed [%s]: %v", spec.Name, err)
				return
			}
			if spec.ItemCap >= 0 && len(entries) > spec.ItemCap {
				entries = entries[:spec.ItemCap]
			}
			perSource[i] = entries
			logger.Log.Infof("collected %d entries from %s", len(entries), spec.Name)
		}(i, spec)
	}
	wg.Wait()

	var all []model.FeedEntry
	for _, entries := range perSource {
		all = append(all, entries...)
	}
	return all
}
