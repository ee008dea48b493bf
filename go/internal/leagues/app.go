package leagues

import (
	"context"
	"fmt"
	"regexp"

	"github.com/mcdev12/draftboard/go/internal/models"
)

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	ListYears(ctx context.Context) ([]int, error)
	ListLeaguesByYear(ctx context.Context, year int) ([]models.League, error)
}

// App handles leagues business logic
type App struct {
	repo LeaguesRepository
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository) *App {
	return &App{
		repo: repo,
	}
}

// ListYears retrieves the available season years, newest first.
func (a *App) ListYears(ctx context.Context) ([]int, error) {
	years, err := a.repo.ListYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list years: %w", err)
	}
	return years, nil
}

// ListLeagueOptions retrieves a season's leagues as picker options with
// short display labels.
func (a *App) ListLeagueOptions(ctx context.Context, year int) ([]Option, error) {
	lgs, err := a.repo.ListLeaguesByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues for %d: %w", year, err)
	}

	options := make([]Option, len(lgs))
	for i, lg := range lgs {
		options[i] = Option{
			ID:    lg.ID,
			Name:  lg.Name,
			Label: DisplayName(lg),
		}
	}
	return options, nil
}

var leagueNumberRe = regexp.MustCompile(`#(\d+)`)

// DisplayName shortens a league for the picker: "#1036 (July 23)" instead of
// the full "$350 Rotowire Online Championship #1036". Names without a number
// keep their full text, and the draft date is appended when known.
func DisplayName(lg models.League) string {
	label := lg.Name
	if m := leagueNumberRe.FindStringSubmatch(lg.Name); m != nil {
		label = "#" + m[1]
	}
	if lg.DraftDate != nil {
		label += fmt.Sprintf(" (%s %d)", lg.DraftDate.Month(), lg.DraftDate.Day())
	}
	return label
}
