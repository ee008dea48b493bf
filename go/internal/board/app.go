package board

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/draftboard/go/internal/models"
	"github.com/rs/zerolog/log"
)

// BoardRepository defines what the app layer needs from the pick source,
// usually the Postgres repository wrapped in the TTL cache.
type BoardRepository interface {
	ListDraftPicks(ctx context.Context, leagueID uuid.UUID) ([]models.DraftPick, error)
}

// App handles draft board business logic.
type App struct {
	repo BoardRepository
}

// NewApp creates a new board App.
func NewApp(repo BoardRepository) *App {
	return &App{
		repo: repo,
	}
}

// GetBoard fetches a league's picks and pivots them into the displayable
// board. ErrNoPicks and ErrMalformedDraftOrder stay unwrappable so the
// gateway can map them onto responses.
func (a *App) GetBoard(ctx context.Context, leagueID uuid.UUID) (*models.Board, error) {
	picks, err := a.repo.ListDraftPicks(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list draft picks: %w", err)
	}

	b, err := Build(picks)
	if err != nil {
		return nil, fmt.Errorf("failed to build board for league %s: %w", leagueID, err)
	}

	if b.Collisions > 0 {
		log.Warn().
			Str("league_id", leagueID.String()).
			Int("collisions", b.Collisions).
			Msg("duplicate board coordinates overwritten, check draft_order data")
	}
	log.Debug().
		Str("league_id", leagueID.String()).
		Int("rounds", b.MaxRound).
		Int("slots", b.NumSlots).
		Msg("built draft board")

	return b, nil
}
