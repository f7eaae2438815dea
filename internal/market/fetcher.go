package market

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/ankitrawat448/stock-analysis-agent/internal/errors"
	"github.com/ankitrawat448/stock-analysis-agent/internal/logging"
	"github.com/ankitrawat448/stock-analysis-agent/internal/models"
)

// cacheKey is the immutable tuple a snapshot is cached under.
type cacheKey struct {
	Symbol string
	Period models.Period
}

// snapshotCache memoizes snapshots for the process lifetime. Insert-on-miss,
// no eviction; guarded because the HTTP server hosts concurrent sessions.
type snapshotCache struct {
	mu        sync.RWMutex
	snapshots map[cacheKey]*models.MarketSnapshot
}

func newSnapshotCache() *snapshotCache {
	return &snapshotCache{
		snapshots: make(map[cacheKey]*models.MarketSnapshot),
	}
}

func (c *snapshotCache) get(key cacheKey) *models.MarketSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshots[key]
}

func (c *snapshotCache) set(key cacheKey, snap *models.MarketSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[key] = snap
}

// Fetcher retrieves market snapshots through a Provider, memoizing each
// (symbol, period) result.
type Fetcher struct {
	provider Provider
	cache    *snapshotCache
	logger   zerolog.Logger
}

// NewFetcher creates a new Fetcher backed by the given provider.
func NewFetcher(provider Provider, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		provider: provider,
		cache:    newSnapshotCache(),
		logger:   logging.WithStage(logger, "fetch"),
	}
}

// Fetch returns the snapshot for (symbol, period), from cache when available.
// Provider failures surface as a FetchError and are not retried. A provider
// success with zero history rows returns the snapshot together with
// ErrEmptyHistory so the caller can render a warning and whatever metrics
// the metadata still supports.
func (f *Fetcher) Fetch(ctx context.Context, symbol string, period models.Period) (*models.MarketSnapshot, error) {
	key := cacheKey{Symbol: symbol, Period: period}
	start := time.Now()

	if snap := f.cache.get(key); snap != nil {
		logging.LogFetch(f.logger, symbol, string(period), len(snap.History), true, time.Since(start))
		if len(snap.History) == 0 {
			return snap, apperrors.ErrEmptyHistory
		}
		return snap, nil
	}

	info, err := f.provider.Info(ctx, symbol)
	if err != nil {
		return nil, apperrors.NewFetchError(symbol, string(period), "fetching company info", err)
	}

	history, err := f.provider.History(ctx, symbol, period)
	if err != nil {
		return nil, apperrors.NewFetchError(symbol, string(period), "fetching price history", err)
	}

	snap := &models.MarketSnapshot{
		Symbol:    symbol,
		Period:    period,
		Info:      info,
		History:   history,
		FetchedAt: time.Now(),
	}
	f.cache.set(key, snap)
	logging.LogFetch(f.logger, symbol, string(period), len(history), false, time.Since(start))

	if len(history) == 0 {
		return snap, apperrors.ErrEmptyHistory
	}
	return snap, nil
}

// CachedCount returns the number of cached snapshots.
func (f *Fetcher) CachedCount() int {
	f.cache.mu.RLock()
	defer f.cache.mu.RUnlock()
	return len(f.cache.snapshots)
}
