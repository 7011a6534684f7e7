package blocks

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/olzhass/smena/pkg/grid"
)

// cashLookahead widens the blank-row tolerance for the cash block, whose
// total row often sits several empty rows below the last currency line.
const cashLookahead = 7

// CashCollection extracts the «Инкассация» block: one row per currency
// with quantity, exchange rate and amount. When the amount cell is blank
// it is recomputed as quantity times rate.
func (e *Extractor) CashCollection(g *grid.Grid) ([]CashRow, Reconciliation) {
	anchor, ok := FindAnchor(g, Cash)
	if !ok {
		e.debug("cash anchor not found")
		return nil, Reconcile(decimal.Zero, decimal.NullDecimal{})
	}

	start := anchor.Row + 1
	for r := start; r < start+3 && r < g.RowCount(); r++ {
		if cashHeaderRow(g, r, anchor.Col) {
			start = r + 1
			break
		}
	}

	lines := scanLines(g, scanConfig{
		Start:     start,
		LabelCol:  anchor.Col,
		Lookahead: cashLookahead,
		IsTotal:   hasTotalWord,
	})

	rows := make([]CashRow, 0, len(lines))
	calc := decimal.Zero
	var reported decimal.NullDecimal

	for _, ln := range lines {
		amount := numberAt(g, ln.Row, anchor.Col+3)

		if ln.IsTotal {
			e.debug("cash total", "amount", amount)
			rows = append(rows, CashRow{CurrencyLabel: ln.Label, Amount: amount, IsTotal: true})
			reported = null(amount)
			break
		}

		qty := numberAt(g, ln.Row, anchor.Col+1)
		rate := numberAt(g, ln.Row, anchor.Col+2)
		if amount.IsZero() && !qty.IsZero() && !rate.IsZero() {
			amount = qty.Mul(rate).Round(2)
		}

		e.debug("cash line", "currency", ln.Label, "quantity", qty, "rate", rate, "amount", amount)
		rows = append(rows, CashRow{
			CurrencyLabel: ln.Label,
			Quantity:      null(qty),
			ExchangeRate:  null(rate),
			Amount:        amount,
		})
		calc = calc.Add(amount)
	}

	return rows, Reconcile(calc, reported)
}

// cashHeaderRow recognizes the кол-во/курс/сумма header line.
func cashHeaderRow(g *grid.Grid, row, col int) bool {
	for c := col; c < col+4; c++ {
		cell := g.Cell(row, c)
		if cell.Kind != grid.Text {
			continue
		}
		u := strings.ToUpper(cell.Text)
		if strings.Contains(u, "КОЛ") || strings.Contains(u, "КУРС") {
			return true
		}
	}
	return false
}
