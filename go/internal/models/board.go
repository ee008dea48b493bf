package models

// Board is the pivoted draft grid: rounds as rows, draft slots as columns.
// Text and Positions are parallel grids shaped MaxRound x NumSlots; row r,
// column s hold the pick made in round r+1 at slot s+1. Cells with no pick
// are empty strings.
type Board struct {
	Text       [][]string     `json:"text"`
	Positions  [][]string     `json:"positions"`
	Headers    []ColumnHeader `json:"headers"` // one per slot
	NumSlots   int            `json:"num_slots"`
	MaxRound   int            `json:"max_round"`
	Collisions int            `json:"collisions,omitempty"` // cells overwritten by a later pick at the same coordinate
}

// ColumnHeader labels one slot column. Label is two lines when season
// results exist ("Slot 3\n#1 · 2047pts"), otherwise just "Slot 3".
type ColumnHeader struct {
	Label string `json:"label"`
	Rank  *int   `json:"rank,omitempty"` // nil when the team has no recorded finish
}
