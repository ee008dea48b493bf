package board

import (
	"fmt"
	"strings"

	"github.com/mcdev12/draftboard/go/internal/models"
)

// Build pivots a flat pick list into the displayable board: two parallel
// grids (cell text, position) shaped maxRound x numSlots plus one header per
// slot. The list must be the complete fetch for a single league; rounds or
// slots with no pick degrade to blank cells. Duplicate coordinates keep the
// later pick and bump the collision counter instead of failing, since
// draft_order quality varies across historical seasons.
func Build(picks []models.DraftPick) (*models.Board, error) {
	if len(picks) == 0 {
		return nil, ErrNoPicks
	}

	resolved, err := ResolveSlots(picks)
	if err != nil {
		return nil, err
	}

	maxRound, numSlots := Dimensions(resolved)

	text := make([][]string, maxRound)
	positions := make([][]string, maxRound)
	for r := range text {
		text[r] = make([]string, numSlots)
		positions[r] = make([]string, numSlots)
	}

	collisions := 0
	for _, p := range resolved {
		r, s := p.Round-1, *p.DraftOrder-1
		if text[r][s] != "" {
			collisions++
		}
		text[r][s] = CellText(p)
		positions[r][s] = p.Position
	}

	return &models.Board{
		Text:       text,
		Positions:  positions,
		Headers:    buildHeaders(resolved, numSlots),
		NumSlots:   numSlots,
		MaxRound:   maxRound,
		Collisions: collisions,
	}, nil
}

// buildHeaders labels each slot column: "Slot N" plus a second line with the
// team's season finish and point total when either is known. All picks in a
// column belong to the same team, so the first pick seen per slot fixes that
// column's results.
func buildHeaders(picks []models.DraftPick, numSlots int) []models.ColumnHeader {
	type seasonResult struct {
		rank   *int
		points *float64
	}
	results := make(map[int]seasonResult, numSlots)
	for _, p := range picks {
		if _, ok := results[*p.DraftOrder]; !ok {
			results[*p.DraftOrder] = seasonResult{rank: p.LeagueRank, points: p.LeaguePoints}
		}
	}

	headers := make([]models.ColumnHeader, numSlots)
	for slot := 1; slot <= numSlots; slot++ {
		label := fmt.Sprintf("Slot %d", slot)
		res := results[slot]

		var parts []string
		if res.rank != nil {
			parts = append(parts, fmt.Sprintf("#%d", *res.rank))
		}
		if res.points != nil {
			parts = append(parts, fmt.Sprintf("%.0fpts", *res.points))
		}
		if len(parts) > 0 {
			label += "\n" + strings.Join(parts, " · ")
		}

		headers[slot-1] = models.ColumnHeader{Label: label, Rank: res.rank}
	}
	return headers
}
