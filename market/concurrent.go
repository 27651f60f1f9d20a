package market

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultPageConcurrency limits concurrent page requests
	DefaultPageConcurrency = 3
	// DefaultSnapshotTop is the number of top coins in a snapshot
	DefaultSnapshotTop = 10
)

// Snapshot is a combined view of the market fetched in one go
type Snapshot struct {
	Global   GlobalInfo
	Top      []CoinInfo
	Trending []TrendingCoin
	Failed   []SourceError
}

// SourceError records a snapshot section that could not be fetched
type SourceError struct {
	Source string
	Err    error
}

// Error implements the error interface
func (e SourceError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Source, e.Err)
}

func (e SourceError) Unwrap() error {
	return e.Err
}

// SnapshotOptions contains options for building a snapshot
type SnapshotOptions struct {
	VsCurrency string
	Top        int
}

// Snapshot fetches global data, the top coins and the trending list
// concurrently. A failing section is recorded in Failed and does not stop
// the others; an error is returned only when every section failed.
func (o *Operations) Snapshot(ctx context.Context, opts SnapshotOptions) (*Snapshot, error) {
	if opts.Top <= 0 {
		opts.Top = DefaultSnapshotTop
	}

	var (
		snapshot Snapshot
		mu       sync.Mutex
	)

	record := func(source string, err error) {
		o.logger.Warn().
			Err(err).
			Str("source", source).
			Msg("Failed to fetch snapshot section")

		mu.Lock()
		snapshot.Failed = append(snapshot.Failed, SourceError{Source: source, Err: err})
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		global, err := o.Global(ctx)
		if err != nil {
			record("global", err)
			return nil
		}
		snapshot.Global = global
		return nil
	})

	g.Go(func() error {
		coins, err := o.ListMarkets(ctx, ListOptions{
			VsCurrency: opts.VsCurrency,
			Order:      "market_cap_desc",
			PerPage:    opts.Top,
			Page:       1,
		})
		if err != nil {
			record("markets", err)
			return nil
		}
		snapshot.Top = coins
		return nil
	})

	g.Go(func() error {
		trending, err := o.Trending(ctx)
		if err != nil {
			record("trending", err)
			return nil
		}
		snapshot.Trending = trending
		return nil
	})

	// Sections never return errors; failures are collected instead
	_ = g.Wait()

	if len(snapshot.Failed) == 3 {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", snapshot.Failed[0])
	}
	return &snapshot, nil
}

// ListMarketsPages fetches pages 1..pages concurrently and returns the coins
// in page order. The first failing page cancels the rest.
func (o *Operations) ListMarketsPages(ctx context.Context, opts ListOptions, pages int) ([]CoinInfo, error) {
	if pages <= 1 {
		opts.Page = 1
		return o.ListMarkets(ctx, opts)
	}

	results := make([][]CoinInfo, pages)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultPageConcurrency)

	for i := range pages {
		pageOpts := opts
		pageOpts.Page = i + 1

		g.Go(func() error {
			coins, err := o.ListMarkets(ctx, pageOpts)
			if err != nil {
				return fmt.Errorf("page %d: %w", pageOpts.Page, err)
			}
			results[i] = coins
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []CoinInfo
	for _, page := range results {
		all = append(all, page...)
	}
	return all, nil
}
