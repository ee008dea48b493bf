package gateway

import (
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/google/uuid"
	"github.com/mcdev12/draftboard/go/internal/board"
	"github.com/mcdev12/draftboard/go/internal/models"
)

// The HTML board page: one table, rounds down, slots across. Cell and header
// backgrounds come straight from the board package's color mappers; the
// markup never interprets positions or ranks itself.
const boardPageHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body {font-family: sans-serif; margin: 1rem;}
table {border-collapse: collapse; width: 100%; table-layout: fixed; font-size: 11px;}
th, td {white-space: pre-line; text-align: center; padding: 4px 3px; border: 1px solid #dee2e6; vertical-align: middle; overflow: hidden;}
th {font-size: 10px; padding: 6px 4px;}
.legend span {color: #333; padding: 2px 8px; border-radius: 3px; margin: 0 2px; font-size: 11px;}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="legend">{{range .Legend}}<span style="{{.Style}}">{{.Position}}</span> {{end}}</p>
<table>
<tr><th>Rd</th>{{range .Headers}}<th style="{{.Style}}">{{.Label}}</th>{{end}}</tr>
{{range .Rows}}<tr><th>{{.Round}}</th>{{range .Cells}}<td style="{{.Style}}">{{.Text}}</td>{{end}}</tr>
{{end}}</table>
</body>
</html>
`

var boardPageTemplate = template.Must(template.New("board").Parse(boardPageHTML))

type boardPage struct {
	Title   string
	Legend  []legendEntry
	Headers []styledCell
	Rows    []boardRow
}

type legendEntry struct {
	Position string
	Style    template.CSS
}

type styledCell struct {
	Label string
	Style template.CSS
}

type boardRow struct {
	Round int
	Cells []pageCell
}

type pageCell struct {
	Text  string
	Style template.CSS
}

// renderBoardPage writes the HTML board page for one league.
func renderBoardPage(w io.Writer, leagueID uuid.UUID, b *models.Board) error {
	page := boardPage{
		Title:   fmt.Sprintf("Draft Board — League %s", leagueID),
		Legend:  buildLegend(),
		Headers: make([]styledCell, len(b.Headers)),
		Rows:    make([]boardRow, b.MaxRound),
	}

	for i, hd := range b.Headers {
		bg, fg := board.RankColor(hd.Rank, b.NumSlots)
		page.Headers[i] = styledCell{
			Label: hd.Label,
			Style: template.CSS(fmt.Sprintf("background-color: %s; color: %s;", bg, fg)),
		}
	}

	for r := 0; r < b.MaxRound; r++ {
		row := boardRow{Round: r + 1, Cells: make([]pageCell, b.NumSlots)}
		for s := 0; s < b.NumSlots; s++ {
			cell := pageCell{Text: b.Text[r][s]}
			if pos := b.Positions[r][s]; pos != "" {
				cell.Style = template.CSS(fmt.Sprintf("background-color: %s; color: #333;", board.PositionColor(pos)))
			}
			row.Cells[s] = cell
		}
		page.Rows[r] = row
	}

	return boardPageTemplate.Execute(w, page)
}

// buildLegend lists each distinct position color once, DEF folded into TDSP
// the way the original legend did.
func buildLegend() []legendEntry {
	positions := make([]string, 0, len(board.PositionColors))
	for pos := range board.PositionColors {
		if pos == "DEF" {
			continue
		}
		positions = append(positions, pos)
	}
	sort.Strings(positions)

	legend := make([]legendEntry, len(positions))
	for i, pos := range positions {
		legend[i] = legendEntry{
			Position: pos,
			Style:    template.CSS(fmt.Sprintf("background: %s;", board.PositionColor(pos))),
		}
	}
	return legend
}
