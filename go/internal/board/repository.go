package board

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/draftboard/go/internal/models"
	"github.com/mcdev12/draftboard/go/internal/sqlutil"
)

const defaultPageSize = 1000

// Repository implements draft pick data access against the board view.
type Repository struct {
	db       *sql.DB
	pageSize int
}

// NewRepository creates a new board repository. pageSize bounds each fetch
// page; values <= 0 fall back to the default.
func NewRepository(db *sql.DB, pageSize int) *Repository {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Repository{
		db:       db,
		pageSize: pageSize,
	}
}

const listDraftPicksQuery = `
SELECT round, pick_in_round, overall_pick, team_id, draft_order,
       league_rank, league_points, first_name, last_name, position, team
FROM view_draft_board
WHERE league_id = $1
ORDER BY overall_pick
LIMIT $2 OFFSET $3`

// ListDraftPicks fetches every pick for a league ordered by overall pick,
// paging through the view until a short page signals the end. The complete
// list is assembled before any grid construction happens downstream.
func (r *Repository) ListDraftPicks(ctx context.Context, leagueID uuid.UUID) ([]models.DraftPick, error) {
	var picks []models.DraftPick
	for offset := 0; ; offset += r.pageSize {
		page, err := r.listDraftPicksPage(ctx, leagueID, r.pageSize, offset)
		if err != nil {
			return nil, err
		}
		picks = append(picks, page...)
		if len(page) < r.pageSize {
			return picks, nil
		}
	}
}

func (r *Repository) listDraftPicksPage(ctx context.Context, leagueID uuid.UUID, limit, offset int) ([]models.DraftPick, error) {
	rows, err := r.db.QueryContext(ctx, listDraftPicksQuery, leagueID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query draft picks: %w", err)
	}
	defer rows.Close()

	var picks []models.DraftPick
	for rows.Next() {
		var (
			p            models.DraftPick
			draftOrder   sql.NullInt32
			leagueRank   sql.NullInt32
			leaguePoints sql.NullFloat64
			firstName    sql.NullString
			lastName     sql.NullString
			position     sql.NullString
			team         sql.NullString
		)
		if err := rows.Scan(
			&p.Round, &p.PickInRound, &p.OverallPick, &p.TeamID,
			&draftOrder, &leagueRank, &leaguePoints,
			&firstName, &lastName, &position, &team,
		); err != nil {
			return nil, fmt.Errorf("failed to scan draft pick: %w", err)
		}

		p.DraftOrder = sqlutil.FromSqlInt32(draftOrder)
		p.LeagueRank = sqlutil.FromSqlInt32(leagueRank)
		p.LeaguePoints = sqlutil.FromSqlFloat64(leaguePoints)
		p.FirstName = sqlutil.FromSqlString(firstName, "")
		p.LastName = sqlutil.FromSqlString(lastName, "")
		p.Position = sqlutil.FromSqlString(position, "")
		p.Team = sqlutil.FromSqlString(team, "")

		picks = append(picks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read draft picks: %w", err)
	}

	return picks, nil
}
