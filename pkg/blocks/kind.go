// Package blocks locates and extracts the semantic blocks of a shift
// report grid: income, ticket sales, payment types, staff statistics,
// expenses, cash collection, staff debts, notes and the closing balance.
// The sheets carry no declared schema, so every block is found by a
// case-insensitive anchor phrase and scanned until its own total row or
// the boundary of a neighboring block.
package blocks

// Kind identifies one of the nine semantic blocks.
type Kind int

const (
	Income Kind = iota
	Tickets
	Payments
	Staff
	Expenses
	Cash
	Debts
	Notes
	Totals
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Tickets:
		return "tickets"
	case Payments:
		return "payments"
	case Staff:
		return "staff"
	case Expenses:
		return "expenses"
	case Cash:
		return "cash"
	case Debts:
		return "debts"
	case Notes:
		return "notes"
	case Totals:
		return "totals"
	default:
		return "unknown"
	}
}

// Layout tells how a block's line items sit relative to the anchor.
type Layout int

const (
	// Vertical blocks stack below the anchor with the value in the
	// adjacent column.
	Vertical Layout = iota
	// Horizontal blocks also run down the anchor's column but keep their
	// values offset a few columns to the right on each row.
	Horizontal
)

func (l Layout) String() string {
	if l == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Anchor marks where a block was found.
type Anchor struct {
	Kind   Kind
	Row    int
	Col    int
	Layout Layout
}
