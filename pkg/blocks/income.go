package blocks

import (
	"github.com/olzhass/smena/pkg/grid"
)

// IncomeRecords extracts the «Доходы» block. In the horizontal layout
// the amount drifts a few columns to the right, so up to five offsets
// are probed; a category with no amount anywhere is still kept with a
// zero, matching how the sheets record slow nights.
func (e *Extractor) IncomeRecords(g *grid.Grid) []IncomeRow {
	anchor, ok := FindAnchor(g, Income)
	if !ok {
		e.debug("income anchor not found")
		return nil
	}

	offsets := []int{1}
	if anchor.Layout == Horizontal {
		offsets = []int{1, 2, 3, 4, 5}
	}

	lines := scanLines(g, scanConfig{
		Start:        anchor.Row + 1,
		LabelCol:     anchor.Col,
		ValueOffsets: offsets,
		IsTotal:      isShiftTotal,
		Boundary:     func(label string) bool { return foreignAnchor(Income, label) },
	})

	rows := make([]IncomeRow, 0, len(lines))
	for _, ln := range lines {
		if ln.IsTotal && !ln.ValueFound {
			// Malformed total row: the block ends without a declared total.
			break
		}
		e.debug("income line", "category", ln.Label, "amount", ln.Value, "total", ln.IsTotal)
		rows = append(rows, IncomeRow{Category: ln.Label, Amount: ln.Value, IsTotal: ln.IsTotal})
	}
	return rows
}
