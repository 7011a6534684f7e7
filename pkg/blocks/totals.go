package blocks

import (
	"strings"

	"github.com/olzhass/smena/pkg/grid"
)

// balanceRowLimit caps the closing balance block: cash, non-cash and the
// grand total, with a little slack for duplicated rows.
const balanceRowLimit = 5

// balanceVocabulary is the closed set of payment type labels the closing
// balance block may contain. Anything else ends the block.
var balanceVocabulary = map[string]bool{
	"наличные": true,
	"б/н":      true,
	"итого":    true,
}

// TotalsSummary extracts the closing balance block. The block is keyed
// on its header pair: a cell containing «Доход» with «Расход»
// immediately to its right; the payment type column sits one to the
// left of that header.
func (e *Extractor) TotalsSummary(g *grid.Grid) []BalanceRow {
	headerRow, typeCol := findBalanceHeader(g)
	if headerRow < 0 {
		e.debug("totals header not found")
		return nil
	}

	var rows []BalanceRow
	for r := headerRow + 1; r < headerRow+1+balanceRowLimit && r < g.RowCount(); r++ {
		cell := g.Cell(r, typeCol)
		if cell.Kind != grid.Text {
			break
		}
		if !balanceVocabulary[strings.ToLower(cell.Text)] {
			break
		}

		row := BalanceRow{
			PaymentType:   cell.Text,
			IncomeAmount:  numberAt(g, r, typeCol+1),
			ExpenseAmount: numberAt(g, r, typeCol+2),
			NetProfit:     numberAt(g, r, typeCol+3),
		}
		e.debug("totals line", "type", row.PaymentType, "income", row.IncomeAmount, "expense", row.ExpenseAmount, "net", row.NetProfit)
		rows = append(rows, row)
	}
	return rows
}

func findBalanceHeader(g *grid.Grid) (row, typeCol int) {
	for r := 0; r < g.RowCount(); r++ {
		for c := 0; c < g.Width(r); c++ {
			cell := g.Cell(r, c)
			if cell.Kind != grid.Text || !containsUpper(cell.Text, "ДОХОД") {
				continue
			}
			next := g.Cell(r, c+1)
			if next.Kind == grid.Text && containsUpper(next.Text, "РАСХОД") {
				return r, c - 1
			}
		}
	}
	return -1, -1
}
