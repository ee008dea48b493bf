package board

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/draftboard/go/internal/models"
)

type stubRepo struct {
	picks []models.DraftPick
	err   error
}

func (r *stubRepo) ListDraftPicks(ctx context.Context, leagueID uuid.UUID) ([]models.DraftPick, error) {
	return r.picks, r.err
}

func TestApp_GetBoard(t *testing.T) {
	app := NewApp(&stubRepo{picks: []models.DraftPick{
		orderedPick(1, 1, 1, teamA, "Josh", "Allen", "QB"),
		orderedPick(1, 2, 2, teamB, "Bijan", "Robinson", "RB"),
	}})

	b, err := app.GetBoard(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if b.MaxRound != 1 || b.NumSlots != 2 {
		t.Fatalf("shape = %dx%d, want 1x2", b.MaxRound, b.NumSlots)
	}
}

func TestApp_GetBoard_NoPicks(t *testing.T) {
	app := NewApp(&stubRepo{})

	_, err := app.GetBoard(context.Background(), uuid.New())
	if !errors.Is(err, ErrNoPicks) {
		t.Fatalf("err = %v, want ErrNoPicks", err)
	}
}

func TestApp_GetBoard_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	app := NewApp(&stubRepo{err: repoErr})

	_, err := app.GetBoard(context.Background(), uuid.New())
	if !errors.Is(err, repoErr) {
		t.Fatalf("err = %v, want wrapped repository error", err)
	}
}
