package blocks

import (
	"github.com/shopspring/decimal"

	"github.com/olzhass/smena/pkg/grid"
)

// ExpenseRecords extracts the «Расходы» block. Like income it probes up
// to five columns to the right for the amount, but a line with no amount
// at all is dropped rather than kept at zero: the sheets use such rows
// as sub-headings.
func (e *Extractor) ExpenseRecords(g *grid.Grid) ([]ExpenseRow, Reconciliation) {
	anchor, ok := FindAnchor(g, Expenses)
	if !ok {
		e.debug("expenses anchor not found")
		return nil, Reconcile(decimal.Zero, decimal.NullDecimal{})
	}

	lines := scanLines(g, scanConfig{
		Start:        anchor.Row + 1,
		LabelCol:     anchor.Col,
		ValueOffsets: []int{1, 2, 3, 4, 5},
		IsTotal:      hasTotalWord,
		Boundary:     func(label string) bool { return foreignAnchor(Expenses, label) },
	})

	rows := make([]ExpenseRow, 0, len(lines))
	calc := decimal.Zero
	var reported decimal.NullDecimal

	for _, ln := range lines {
		if !ln.ValueFound {
			if ln.IsTotal {
				// Malformed total row, the block ends without one.
				break
			}
			e.debug("expenses line without amount, skipping", "item", ln.Label)
			continue
		}
		if ln.IsTotal {
			e.debug("expenses total", "amount", ln.Value)
			rows = append(rows, ExpenseRow{ExpenseItem: ln.Label, Amount: ln.Value, IsTotal: true})
			reported = null(ln.Value)
			break
		}
		e.debug("expenses line", "item", ln.Label, "amount", ln.Value)
		rows = append(rows, ExpenseRow{ExpenseItem: ln.Label, Amount: ln.Value})
		calc = calc.Add(ln.Value)
	}

	return rows, Reconcile(calc, reported)
}
