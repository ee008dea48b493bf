package board

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/draftboard/go/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func orderedPick(round, slot, overall int, team uuid.UUID, first, last, pos string) models.DraftPick {
	return models.DraftPick{
		Round:       round,
		PickInRound: slot,
		OverallPick: overall,
		TeamID:      team,
		DraftOrder:  intPtr(slot),
		FirstName:   first,
		LastName:    last,
		Position:    pos,
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	_, err := Build(nil)
	if !errors.Is(err, ErrNoPicks) {
		t.Fatalf("err = %v, want ErrNoPicks", err)
	}
}

func TestBuild_DimensionsAndCoverage(t *testing.T) {
	picks := []models.DraftPick{
		orderedPick(1, 1, 1, teamA, "Josh", "Allen", "QB"),
		orderedPick(1, 2, 2, teamB, "Bijan", "Robinson", "RB"),
		orderedPick(1, 3, 3, teamC, "Ja'Marr", "Chase", "WR"),
		orderedPick(2, 1, 4, teamC, "Sam", "LaPorta", "TE"),
		orderedPick(2, 2, 5, teamB, "Brandon", "Aubrey", "K"),
		orderedPick(2, 3, 6, teamA, "Puka", "Nacua", "WR"),
	}
	// Round 2 snake order: the repository returns picks by overall_pick, but
	// slot placement comes from draft_order alone.
	picks[3].DraftOrder = intPtr(3)
	picks[4].DraftOrder = intPtr(2)
	picks[5].DraftOrder = intPtr(1)

	b, err := Build(picks)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if b.MaxRound != 2 || b.NumSlots != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", b.MaxRound, b.NumSlots)
	}
	if len(b.Text) != 2 || len(b.Text[0]) != 3 || len(b.Positions) != 2 || len(b.Positions[1]) != 3 {
		t.Fatalf("grid slices do not match MaxRound x NumSlots")
	}

	// Every pick lands at exactly one coordinate.
	for _, p := range picks {
		r, s := p.Round-1, *p.DraftOrder-1
		if got, want := b.Text[r][s], CellText(p); got != want {
			t.Errorf("cell [%d][%d] = %q, want %q", r, s, got, want)
		}
		if got := b.Positions[r][s]; got != p.Position {
			t.Errorf("position [%d][%d] = %q, want %q", r, s, got, p.Position)
		}
	}
	if b.Collisions != 0 {
		t.Errorf("Collisions = %d, want 0", b.Collisions)
	}
}

func TestBuild_IncompleteDraftLeavesBlankCells(t *testing.T) {
	picks := []models.DraftPick{
		orderedPick(1, 1, 1, teamA, "Josh", "Allen", "QB"),
		orderedPick(3, 2, 5, teamB, "Puka", "Nacua", "WR"),
	}

	b, err := Build(picks)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if b.MaxRound != 3 || b.NumSlots != 2 {
		t.Fatalf("shape = %dx%d, want 3x2", b.MaxRound, b.NumSlots)
	}
	if b.Text[1][0] != "" || b.Positions[1][0] != "" {
		t.Errorf("missing pick cell not blank: %q / %q", b.Text[1][0], b.Positions[1][0])
	}
	if b.Text[0][1] != "" {
		t.Errorf("cell [0][1] = %q, want blank", b.Text[0][1])
	}
}

func TestBuild_CollisionLastWriteWins(t *testing.T) {
	first := orderedPick(1, 1, 1, teamA, "Josh", "Allen", "QB")
	second := orderedPick(1, 1, 2, teamB, "Bijan", "Robinson", "RB")

	b, err := Build([]models.DraftPick{first, second})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got, want := b.Text[0][0], CellText(second); got != want {
		t.Errorf("cell [0][0] = %q, want later pick %q", got, want)
	}
	if b.Positions[0][0] != "RB" {
		t.Errorf("position [0][0] = %q, want RB", b.Positions[0][0])
	}
	if b.Collisions != 1 {
		t.Errorf("Collisions = %d, want 1", b.Collisions)
	}
}

func TestBuild_Headers(t *testing.T) {
	p1 := orderedPick(1, 1, 1, teamA, "Josh", "Allen", "QB")
	p1.LeagueRank = intPtr(1)
	p1.LeaguePoints = floatPtr(2047)

	p2 := orderedPick(1, 2, 2, teamB, "Bijan", "Robinson", "RB")
	p2.LeagueRank = intPtr(5)

	p3 := orderedPick(1, 3, 3, teamC, "Ja'Marr", "Chase", "WR")

	b, err := Build([]models.DraftPick{p1, p2, p3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	wantLabels := []string{
		"Slot 1\n#1 · 2047pts",
		"Slot 2\n#5",
		"Slot 3",
	}
	if len(b.Headers) != 3 {
		t.Fatalf("headers len = %d, want 3", len(b.Headers))
	}
	for i, want := range wantLabels {
		if got := b.Headers[i].Label; got != want {
			t.Errorf("header %d label = %q, want %q", i, got, want)
		}
	}

	if b.Headers[0].Rank == nil || *b.Headers[0].Rank != 1 {
		t.Errorf("header 0 rank = %v, want 1", b.Headers[0].Rank)
	}
	if b.Headers[2].Rank != nil {
		t.Errorf("header 2 rank = %v, want nil", b.Headers[2].Rank)
	}
}

func TestBuild_PointsRoundToWholeNumbers(t *testing.T) {
	p := orderedPick(1, 1, 1, teamA, "Josh", "Allen", "QB")
	p.LeaguePoints = floatPtr(1893.55)

	b, err := Build([]models.DraftPick{p})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got, want := b.Headers[0].Label, "Slot 1\n1894pts"; got != want {
		t.Errorf("header label = %q, want %q", got, want)
	}
}
