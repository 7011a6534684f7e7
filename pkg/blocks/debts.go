package blocks

import (
	"github.com/shopspring/decimal"

	"github.com/olzhass/smena/pkg/grid"
)

// Staff debts carry no header of their own: the block starts two rows
// below the cash collection's «ИТОГО» row, in the same column, and runs
// for at most debtRows lines.
const (
	debtOffset      = 2
	debtRows        = 10
	cashTotalMinOff = 5
	cashTotalMaxOff = 15
)

// StaffDebts extracts the staff debts block. Without a cash total row to
// anchor on the block cannot be located and the result is empty.
func (e *Extractor) StaffDebts(g *grid.Grid) ([]DebtRow, Reconciliation) {
	anchor, ok := FindAnchor(g, Cash)
	if !ok {
		e.debug("debts: cash anchor not found")
		return nil, Reconcile(decimal.Zero, decimal.NullDecimal{})
	}

	totalRow := -1
	for off := cashTotalMinOff; off < cashTotalMaxOff; off++ {
		r := anchor.Row + off
		if r >= g.RowCount() {
			break
		}
		cell := g.Cell(r, anchor.Col)
		if cell.Kind != grid.Text || !hasTotalWord(cell.Text) {
			continue
		}
		if g.Cell(r, anchor.Col+3).Kind == grid.Number {
			totalRow = r
			break
		}
	}
	if totalRow < 0 {
		e.debug("debts: cash total row not found")
		return nil, Reconcile(decimal.Zero, decimal.NullDecimal{})
	}

	lines := scanLines(g, scanConfig{
		Start:    totalRow + debtOffset,
		LabelCol: anchor.Col,
		Limit:    debtRows,
		IsTotal:  hasTotalWord,
	})

	rows := make([]DebtRow, 0, len(lines))
	calc := decimal.Zero
	var reported decimal.NullDecimal

	for _, ln := range lines {
		amount := numberAt(g, ln.Row, anchor.Col+1)
		e.debug("debts line", "type", ln.Label, "amount", amount, "total", ln.IsTotal)
		rows = append(rows, DebtRow{DebtType: ln.Label, Amount: amount, IsTotal: ln.IsTotal})
		if ln.IsTotal {
			reported = null(amount)
			break
		}
		calc = calc.Add(amount)
	}

	return rows, Reconcile(calc, reported)
}
