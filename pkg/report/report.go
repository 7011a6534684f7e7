package report

import (
	"context"
	"fmt"

	"github.com/olzhass/smena/pkg/blocks"
)

// ReconciledBlock pairs a block's records with the reconciliation of
// their sum against the total row the sheet declared.
type ReconciledBlock[T any] struct {
	Records        []T                   `json:"records"`
	Reconciliation blocks.Reconciliation `json:"reconciliation"`
}

// Report holds every block extracted from one shift report file, in
// source order.
type Report struct {
	Income   []blocks.IncomeRow                 `json:"income"`
	Tickets  ReconciledBlock[blocks.TicketRow]  `json:"tickets"`
	Payments ReconciledBlock[blocks.PaymentRow] `json:"payments"`
	Staff    []blocks.StaffRow                  `json:"staff"`
	Expenses ReconciledBlock[blocks.ExpenseRow] `json:"expenses"`
	Cash     ReconciledBlock[blocks.CashRow]    `json:"cash"`
	Debts    ReconciledBlock[blocks.DebtRow]    `json:"debts"`
	Notes    blocks.NoteEntries                 `json:"notes"`
	Totals   []blocks.BalanceRow                `json:"totals"`
}

// Warnings lists the blocks whose declared total does not match the
// computed sum. Mismatches are surfaced to the user as warnings, never
// as failures.
func (r *Report) Warnings() []string {
	var warnings []string
	add := func(name string, rec blocks.Reconciliation, count int) {
		if count == 0 || rec.Matches {
			return
		}
		warnings = append(warnings, fmt.Sprintf(
			"%s: declared total %s does not match computed %s",
			name, rec.ReportedTotal.Decimal.StringFixed(2), rec.ComputedTotal.StringFixed(2)))
	}
	add("tickets", r.Tickets.Reconciliation, len(r.Tickets.Records))
	add("payments", r.Payments.Reconciliation, len(r.Payments.Records))
	add("expenses", r.Expenses.Reconciliation, len(r.Expenses.Records))
	add("cash", r.Cash.Reconciliation, len(r.Cash.Records))
	add("debts", r.Debts.Reconciliation, len(r.Debts.Records))
	return warnings
}

// Empty reports whether no block was found at all, which usually means
// the file is not a shift report.
func (r *Report) Empty() bool {
	return len(r.Income) == 0 &&
		len(r.Tickets.Records) == 0 &&
		len(r.Payments.Records) == 0 &&
		len(r.Staff) == 0 &&
		len(r.Expenses.Records) == 0 &&
		len(r.Cash.Records) == 0 &&
		len(r.Debts.Records) == 0 &&
		len(r.Notes.NoCash) == 0 && len(r.Notes.Cash) == 0 && len(r.Notes.Extra) == 0 &&
		len(r.Totals) == 0
}

// Store is the contract the persistence collaborator implements.
// Extraction is always a full re-derivation, so implementations must
// replace whatever was previously stored for the file identity before
// inserting the new records.
type Store interface {
	Replace(ctx context.Context, fileID string, report *Report) error
}
