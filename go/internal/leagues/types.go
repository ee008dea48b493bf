package leagues

import (
	"github.com/google/uuid"
)

// Option is one league entry for the league picker: the short display label
// plus enough identity to load its board.
type Option struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Label string    `json:"label"` // e.g. "#1036 (July 23)"
}
