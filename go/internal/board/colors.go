package board

import "fmt"

// PositionColors is the fixed cell palette keyed by position. Kickers share
// a color across both abbreviations, and defenses share a neutral gray.
var PositionColors = map[string]string{
	"QB":   "#FFF0B3",
	"RB":   "#D1EAF5",
	"WR":   "#D4F0D4",
	"TE":   "#FFD9E2",
	"K":    "#E6E6FA",
	"TK":   "#E6E6FA",
	"TDSP": "#E0E0E0",
	"DEF":  "#E0E0E0",
}

// DefaultColor is the cell background for unrecognized or absent positions.
const DefaultColor = "#FFFFFF"

// PositionColor returns the cell background for a position string.
func PositionColor(position string) string {
	if c, ok := PositionColors[position]; ok {
		return c
	}
	return DefaultColor
}

// RankColor maps a team's season finish onto a continuous green/yellow/red
// hue scale for header styling: rank 1 is green (hue 120), last place is red
// (hue 0), the median lands near yellow. A nil rank gets a neutral gray.
// Saturation and lightness are fixed for on-screen contrast; the foreground
// is always white. Deterministic and total, including totalSlots == 1.
func RankColor(rank *int, totalSlots int) (bg, fg string) {
	if rank == nil {
		return "#6c757d", "#fff"
	}
	t := float64(*rank-1) / float64(max(totalSlots-1, 1))
	hue := 120 * (1 - t)
	return fmt.Sprintf("hsl(%.0f, 75%%, 38%%)", hue), "#fff"
}
