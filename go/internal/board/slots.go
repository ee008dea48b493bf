package board

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/mcdev12/draftboard/go/internal/models"
)

// ResolveSlots guarantees every pick carries a usable column index.
//
// Modern seasons store draft_order on every row and pass through untouched.
// The 2018 format stores none, so the team-to-slot mapping is rebuilt from
// round 1: teams get slots 1..N in the order they picked, first occurrence
// wins. A draft never mixes the two formats, so seeing any draft_order at
// all means the explicit format is in play.
func ResolveSlots(picks []models.DraftPick) ([]models.DraftPick, error) {
	for _, p := range picks {
		if p.DraftOrder != nil {
			return picks, nil
		}
	}

	var firstRound []models.DraftPick
	for _, p := range picks {
		if p.Round == 1 {
			firstRound = append(firstRound, p)
		}
	}
	sort.SliceStable(firstRound, func(i, j int) bool {
		return firstRound[i].PickInRound < firstRound[j].PickInRound
	})

	teamSlot := make(map[uuid.UUID]int, len(firstRound))
	for _, p := range firstRound {
		if _, ok := teamSlot[p.TeamID]; !ok {
			teamSlot[p.TeamID] = len(teamSlot) + 1
		}
	}

	resolved := make([]models.DraftPick, len(picks))
	for i, p := range picks {
		slot, ok := teamSlot[p.TeamID]
		if !ok {
			return nil, fmt.Errorf("%w: team %s has no round 1 pick", ErrMalformedDraftOrder, p.TeamID)
		}
		p.DraftOrder = &slot
		resolved[i] = p
	}
	return resolved, nil
}

// Dimensions returns the board shape: the highest round and the highest
// resolved slot seen across the pick set.
func Dimensions(picks []models.DraftPick) (maxRound, numSlots int) {
	for _, p := range picks {
		if p.Round > maxRound {
			maxRound = p.Round
		}
		if p.DraftOrder != nil && *p.DraftOrder > numSlots {
			numSlots = *p.DraftOrder
		}
	}
	return maxRound, numSlots
}
