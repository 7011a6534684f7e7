package blocks

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/olzhass/smena/pkg/grid"
)

// PaymentTypes extracts the payment types block. The anchor row
// («НАЛИЧНЫЕ») is itself the first line item; amounts sit two columns to
// the right. The «ИТОГО КАССА» subtotal is flagged but does not close
// the block, the plain «ИТОГО» row does.
func (e *Extractor) PaymentTypes(g *grid.Grid) ([]PaymentRow, Reconciliation) {
	anchor, ok := FindAnchor(g, Payments)
	if !ok {
		e.debug("payments anchor not found")
		return nil, Reconcile(decimal.Zero, decimal.NullDecimal{})
	}

	lines := scanLines(g, scanConfig{
		Start:    anchor.Row,
		LabelCol: anchor.Col,
		IsTotal:  isPaymentsTotal,
	})

	rows := make([]PaymentRow, 0, len(lines))
	calc := decimal.Zero
	var reported decimal.NullDecimal

	for _, ln := range lines {
		amount := numberAt(g, ln.Row, anchor.Col+2)

		switch {
		case ln.IsTotal:
			e.debug("payments total", "amount", amount)
			rows = append(rows, PaymentRow{PaymentType: ln.Label, Amount: amount, IsTotal: true})
			reported = null(amount)
		case isCashSubtotal(ln.Label):
			e.debug("payments cash subtotal", "amount", amount)
			rows = append(rows, PaymentRow{PaymentType: ln.Label, Amount: amount, IsCashSubtotal: true})
		default:
			e.debug("payments line", "type", ln.Label, "amount", amount)
			rows = append(rows, PaymentRow{PaymentType: ln.Label, Amount: amount})
			calc = calc.Add(amount)
		}
	}

	return rows, Reconcile(calc, reported)
}

func isCashSubtotal(label string) bool {
	return strings.HasPrefix(strings.ToUpper(label), "ИТОГО КАССА")
}

// isPaymentsTotal matches the closing «ИТОГО» but not the intermediate
// «ИТОГО КАССА» subtotal.
func isPaymentsTotal(label string) bool {
	u := strings.ToUpper(label)
	return strings.HasPrefix(u, "ИТОГО") && !strings.HasPrefix(u, "ИТОГО КАССА")
}
