package board

import (
	"fmt"
	"strings"

	"github.com/mcdev12/draftboard/go/internal/models"
)

// CellText formats a pick for its grid cell: "First Last\nPOS · TEAM (overall)".
// Name fields are blank-safe; when both are missing the name line renders as
// an em dash so legacy rows without player names still display something.
func CellText(p models.DraftPick) string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		name = "—"
	}
	return fmt.Sprintf("%s\n%s · %s (%d)", name, p.Position, p.Team, p.OverallPick)
}
