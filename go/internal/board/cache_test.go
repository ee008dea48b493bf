package board

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/draftboard/go/internal/models"
)

type countingSource struct {
	picks []models.DraftPick
	err   error
	calls int
}

func (s *countingSource) ListDraftPicks(ctx context.Context, leagueID uuid.UUID) ([]models.DraftPick, error) {
	s.calls++
	return s.picks, s.err
}

func TestCache_ServesFromCacheWithinTTL(t *testing.T) {
	source := &countingSource{picks: []models.DraftPick{{Round: 1, OverallPick: 1}}}
	clock := clockwork.NewFakeClock()
	cache := NewCache(source, time.Hour, clock)

	leagueID := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		picks, err := cache.ListDraftPicks(ctx, leagueID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(picks) != 1 {
			t.Fatalf("picks len = %d, want 1", len(picks))
		}
	}
	if source.calls != 1 {
		t.Fatalf("source calls = %d, want 1", source.calls)
	}
}

func TestCache_RefetchesAfterTTL(t *testing.T) {
	source := &countingSource{picks: []models.DraftPick{{Round: 1, OverallPick: 1}}}
	clock := clockwork.NewFakeClock()
	cache := NewCache(source, time.Hour, clock)

	leagueID := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
	ctx := context.Background()

	if _, err := cache.ListDraftPicks(ctx, leagueID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	clock.Advance(2 * time.Hour)
	if _, err := cache.ListDraftPicks(ctx, leagueID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if source.calls != 2 {
		t.Fatalf("source calls = %d, want 2", source.calls)
	}
}

func TestCache_KeysByLeague(t *testing.T) {
	source := &countingSource{picks: []models.DraftPick{{Round: 1, OverallPick: 1}}}
	cache := NewCache(source, time.Hour, clockwork.NewFakeClock())
	ctx := context.Background()

	if _, err := cache.ListDraftPicks(ctx, uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000003")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := cache.ListDraftPicks(ctx, uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000004")); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if source.calls != 2 {
		t.Fatalf("source calls = %d, want 2 (one per league)", source.calls)
	}
}

func TestCache_DoesNotCacheErrors(t *testing.T) {
	source := &countingSource{err: errors.New("connection refused")}
	cache := NewCache(source, time.Hour, clockwork.NewFakeClock())

	leagueID := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000005")
	ctx := context.Background()

	if _, err := cache.ListDraftPicks(ctx, leagueID); err == nil {
		t.Fatal("expected error")
	}

	source.err = nil
	source.picks = []models.DraftPick{{Round: 1, OverallPick: 1}}
	picks, err := cache.ListDraftPicks(ctx, leagueID)
	if err != nil {
		t.Fatalf("unexpected err after source recovery: %v", err)
	}
	if len(picks) != 1 {
		t.Fatalf("picks len = %d, want 1", len(picks))
	}
	if source.calls != 2 {
		t.Fatalf("source calls = %d, want 2", source.calls)
	}
}
