package models

import (
	"github.com/google/uuid"
)

// DraftPick represents a single selection row from the draft board view.
type DraftPick struct {
	Round        int       `json:"round"`
	PickInRound  int       `json:"pick_in_round"` // pick number in the round
	OverallPick  int       `json:"overall_pick"`  // pick number overall
	TeamID       uuid.UUID `json:"team_id"`
	DraftOrder   *int      `json:"draft_order,omitempty"` // nil for legacy seasons without stored order
	LeagueRank   *int      `json:"league_rank,omitempty"` // end-of-season standing, 1 = best
	LeaguePoints *float64  `json:"league_points,omitempty"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Position     string    `json:"position"`
	Team         string    `json:"team"` // player's NFL team abbreviation
}
