package leagues

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mcdev12/draftboard/go/internal/models"
	"github.com/mcdev12/draftboard/go/internal/sqlutil"
)

// Repository implements league metadata access operations
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new leagues repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db: db,
	}
}

const listYearsQuery = `
SELECT DISTINCT year
FROM leagues
ORDER BY year DESC`

// ListYears retrieves every season year with at least one league, newest first.
func (r *Repository) ListYears(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, listYearsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read years: %w", err)
	}

	return years, nil
}

const listLeaguesByYearQuery = `
SELECT league_id, name, year, draft_date
FROM leagues
WHERE year = $1
ORDER BY name`

// ListLeaguesByYear retrieves all leagues for a season, ordered by name.
func (r *Repository) ListLeaguesByYear(ctx context.Context, year int) ([]models.League, error) {
	rows, err := r.db.QueryContext(ctx, listLeaguesByYearQuery, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query leagues: %w", err)
	}
	defer rows.Close()

	var leagues []models.League
	for rows.Next() {
		var (
			lg        models.League
			name      sql.NullString
			draftDate sql.NullTime
		)
		if err := rows.Scan(&lg.ID, &name, &lg.Year, &draftDate); err != nil {
			return nil, fmt.Errorf("failed to scan league: %w", err)
		}
		lg.Name = sqlutil.FromSqlString(name, "")
		lg.DraftDate = sqlutil.FromSqlTime(draftDate)
		leagues = append(leagues, lg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leagues: %w", err)
	}

	return leagues, nil
}
