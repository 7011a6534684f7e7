package blocks

import (
	"strings"

	"github.com/olzhass/smena/pkg/grid"
)

// anchorPhrases maps a block kind to the phrases its anchor cell must
// contain, uppercased. Every phrase has to be present, which lets the
// staff block match both "Статистика персонала" and "Статистика по
// персоналу".
//
// Debts has no phrase on purpose: that block carries no header in the
// source sheets and is located relative to the cash block's total row.
// Totals is keyed on a two-cell header and handled separately as well.
var anchorPhrases = map[Kind][]string{
	Income:   {"ДОХОД"},
	Tickets:  {"ВХОДНЫЕ БИЛЕТЫ"},
	Payments: {"НАЛИЧНЫЕ"},
	Staff:    {"СТАТИСТИКА", "ПЕРСОНАЛ"},
	Expenses: {"РАСХОД"},
	Cash:     {"ИНКАССАЦИЯ"},
	Notes:    {"ПРИМЕЧАН"},
}

// FindAnchor scans the grid in row-major order for the first cell whose
// text contains the anchor phrase of the given kind, and classifies the
// block layout from the cell immediately to the right: a number there
// means the line items run horizontally. Kinds without a phrase table
// entry never match.
func FindAnchor(g *grid.Grid, kind Kind) (Anchor, bool) {
	phrases, ok := anchorPhrases[kind]
	if !ok {
		return Anchor{}, false
	}

	for r := 0; r < g.RowCount(); r++ {
		for c := 0; c < g.Width(r); c++ {
			cell := g.Cell(r, c)
			if cell.Kind != grid.Text {
				continue
			}
			if !containsAll(strings.ToUpper(cell.Text), phrases) {
				continue
			}
			layout := Vertical
			if g.Cell(r, c+1).Kind == grid.Number {
				layout = Horizontal
			}
			return Anchor{Kind: kind, Row: r, Col: c, Layout: layout}, true
		}
	}
	return Anchor{}, false
}

// LocateAll resolves every phrase-anchored block in one pass over the
// kinds. Missing blocks are simply absent from the result.
func LocateAll(g *grid.Grid) map[Kind]Anchor {
	anchors := make(map[Kind]Anchor)
	for kind := range anchorPhrases {
		if a, ok := FindAnchor(g, kind); ok {
			anchors[kind] = a
		}
	}
	return anchors
}

func containsAll(text string, phrases []string) bool {
	for _, p := range phrases {
		if !strings.Contains(text, p) {
			return false
		}
	}
	return true
}
