package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/olzhass/smena/pkg/blocks"
	"github.com/olzhass/smena/pkg/report"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	matchedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
)

func fileHeader(name string) string {
	return headerStyle.Render(name)
}

// printSummary prints one line per block: row count, and for reconciled
// blocks the computed total against the declared one. Mismatches are
// highlighted; they are warnings, not failures.
func printSummary(rep *report.Report) {
	plain("income", len(rep.Income))
	reconciled("tickets", len(rep.Tickets.Records), rep.Tickets.Reconciliation)
	reconciled("payments", len(rep.Payments.Records), rep.Payments.Reconciliation)
	plain("staff", len(rep.Staff))
	reconciled("expenses", len(rep.Expenses.Records), rep.Expenses.Reconciliation)
	reconciled("cash", len(rep.Cash.Records), rep.Cash.Reconciliation)
	reconciled("debts", len(rep.Debts.Records), rep.Debts.Reconciliation)
	plain("notes", len(rep.Notes.NoCash)+len(rep.Notes.Cash)+len(rep.Notes.Extra))
	plain("totals", len(rep.Totals))
}

func plain(name string, count int) {
	if count == 0 {
		return
	}
	fmt.Println(matchedStyle.Render(fmt.Sprintf("= %-8s | %3d rows", name, count)))
}

func reconciled(name string, count int, rec blocks.Reconciliation) {
	if count == 0 {
		return
	}
	if !rec.ReportedTotal.Valid {
		fmt.Println(matchedStyle.Render(fmt.Sprintf("= %-8s | %3d rows | sum %s | no declared total",
			name, count, rec.ComputedTotal.StringFixed(2))))
		return
	}
	line := fmt.Sprintf("%-8s | %3d rows | sum %s | declared %s",
		name, count, rec.ComputedTotal.StringFixed(2), rec.ReportedTotal.Decimal.StringFixed(2))
	if rec.Matches {
		fmt.Println(matchedStyle.Render("= " + line))
		return
	}
	fmt.Println(mismatchStyle.Render("! " + line))
}
