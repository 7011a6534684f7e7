package blocks

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/olzhass/smena/pkg/grid"
)

// TicketSales extracts the «Входные билеты» block: one row per ticket
// price with quantity and amount, closed by an «Итого» row. The
// цена/кол-во/сумма header row between the anchor and the data is
// skipped when present. Both the amount and the quantity are reconciled
// against the total row.
func (e *Extractor) TicketSales(g *grid.Grid) ([]TicketRow, Reconciliation) {
	anchor, ok := FindAnchor(g, Tickets)
	if !ok {
		e.debug("tickets anchor not found")
		return nil, Reconcile(decimal.Zero, decimal.NullDecimal{})
	}

	start := anchor.Row + 1
	for r := start; r < start+3 && r < g.RowCount(); r++ {
		if ticketHeaderRow(g, r, anchor.Col) {
			start = r + 1
			break
		}
		if g.Cell(r, anchor.Col).Kind != grid.Empty {
			start = r
			break
		}
	}

	// Price labels are numbers, so numeric label cells are data here.
	lines := scanLines(g, scanConfig{
		Start:        start,
		LabelCol:     anchor.Col,
		NumberLabels: true,
		IsTotal:      hasTotalWord,
	})

	rows := make([]TicketRow, 0, len(lines))
	calcQty := 0
	calcAmount := decimal.Zero
	var reported decimal.NullDecimal
	reportedQty := 0

	for _, ln := range lines {
		qty := intAt(g, ln.Row, anchor.Col+1)
		amount := numberAt(g, ln.Row, anchor.Col+2)

		if ln.IsTotal {
			e.debug("tickets total", "quantity", qty, "amount", amount)
			rows = append(rows, TicketRow{PriceLabel: ln.Label, Quantity: qty, Amount: amount, IsTotal: true})
			reported = null(amount)
			reportedQty = qty
			break
		}

		e.debug("tickets line", "price", ln.Label, "quantity", qty, "amount", amount)
		rows = append(rows, TicketRow{
			PriceLabel: ln.Label,
			PriceValue: null(numberAt(g, ln.Row, anchor.Col)),
			Quantity:   qty,
			Amount:     amount,
		})
		calcQty += qty
		calcAmount = calcAmount.Add(amount)
	}

	rec := Reconcile(calcAmount, reported)
	if reported.Valid && reportedQty != calcQty {
		rec.Matches = false
	}
	return rows, rec
}

// ticketHeaderRow recognizes the цена/кол-во/сумма header line.
func ticketHeaderRow(g *grid.Grid, row, col int) bool {
	var joined strings.Builder
	for c := col; c < col+3; c++ {
		cell := g.Cell(row, c)
		if cell.Kind == grid.Text {
			joined.WriteString(strings.ToUpper(cell.Text))
			joined.WriteByte(' ')
		}
	}
	text := joined.String()
	return strings.Contains(text, "ЦЕНА") && strings.Contains(text, "КОЛ")
}
