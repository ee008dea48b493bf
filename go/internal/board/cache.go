package board

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/draftboard/go/internal/models"
)

// PickSource is anything that can produce the full pick list for a league.
type PickSource interface {
	ListDraftPicks(ctx context.Context, leagueID uuid.UUID) ([]models.DraftPick, error)
}

// Cache memoizes pick lists per league for a fixed TTL so reloading a board
// does not re-page the whole view. Historical drafts never change; the TTL
// only bounds staleness after a data backfill.
type Cache struct {
	source PickSource
	ttl    time.Duration
	clock  clockwork.Clock

	mu      sync.Mutex
	entries map[uuid.UUID]cacheEntry
}

type cacheEntry struct {
	picks     []models.DraftPick
	expiresAt time.Time
}

// NewCache wraps source with a TTL cache. A nil clock uses wall time.
func NewCache(source PickSource, ttl time.Duration, clock clockwork.Clock) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cache{
		source:  source,
		ttl:     ttl,
		clock:   clock,
		entries: make(map[uuid.UUID]cacheEntry),
	}
}

// ListDraftPicks returns the cached pick list for a league, fetching from
// the underlying source when missing or expired. Fetch errors are never
// cached.
func (c *Cache) ListDraftPicks(ctx context.Context, leagueID uuid.UUID) ([]models.DraftPick, error) {
	c.mu.Lock()
	entry, ok := c.entries[leagueID]
	c.mu.Unlock()

	if ok && c.clock.Now().Before(entry.expiresAt) {
		return entry.picks, nil
	}

	picks, err := c.source.ListDraftPicks(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[leagueID] = cacheEntry{
		picks:     picks,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
	c.mu.Unlock()

	return picks, nil
}
