// Package report is the byte-level entry point of the extraction engine:
// it loads a spreadsheet into a grid and runs the block extractors over
// it, either one block at a time or all nine at once.
package report

import (
	"github.com/charmbracelet/log"

	"github.com/olzhass/smena/pkg/blocks"
	"github.com/olzhass/smena/pkg/grid"
)

// Parser extracts shift report blocks from raw spreadsheet bytes. Each
// call builds a fresh grid, so a single Parser is safe to share across
// goroutines.
type Parser struct {
	logger *log.Logger
	ex     *blocks.Extractor
}

// New creates a parser. The logger is optional and only feeds
// diagnostics; nil disables them.
func New(logger *log.Logger) *Parser {
	return &Parser{logger: logger, ex: blocks.New(logger)}
}

// ExtractIncome extracts the income block from raw spreadsheet bytes.
func (p *Parser) ExtractIncome(data []byte) ([]blocks.IncomeRow, error) {
	g, err := grid.Load(data)
	if err != nil {
		return nil, err
	}
	return p.ex.IncomeRecords(g), nil
}

// ExtractTicketSales extracts the ticket sales block and its
// reconciliation against the declared total.
func (p *Parser) ExtractTicketSales(data []byte) ([]blocks.TicketRow, blocks.Reconciliation, error) {
	g, err := grid.Load(data)
	if err != nil {
		return nil, blocks.Reconciliation{}, err
	}
	rows, rec := p.ex.TicketSales(g)
	return rows, rec, nil
}

// ExtractPaymentTypes extracts the payment types block and its
// reconciliation.
func (p *Parser) ExtractPaymentTypes(data []byte) ([]blocks.PaymentRow, blocks.Reconciliation, error) {
	g, err := grid.Load(data)
	if err != nil {
		return nil, blocks.Reconciliation{}, err
	}
	rows, rec := p.ex.PaymentTypes(g)
	return rows, rec, nil
}

// ExtractStaffStatistics extracts the staff statistics block.
func (p *Parser) ExtractStaffStatistics(data []byte) ([]blocks.StaffRow, error) {
	g, err := grid.Load(data)
	if err != nil {
		return nil, err
	}
	return p.ex.StaffStatistics(g), nil
}

// ExtractExpenses extracts the expenses block and its reconciliation.
func (p *Parser) ExtractExpenses(data []byte) ([]blocks.ExpenseRow, blocks.Reconciliation, error) {
	g, err := grid.Load(data)
	if err != nil {
		return nil, blocks.Reconciliation{}, err
	}
	rows, rec := p.ex.ExpenseRecords(g)
	return rows, rec, nil
}

// ExtractCashCollection extracts the cash collection block and its
// reconciliation.
func (p *Parser) ExtractCashCollection(data []byte) ([]blocks.CashRow, blocks.Reconciliation, error) {
	g, err := grid.Load(data)
	if err != nil {
		return nil, blocks.Reconciliation{}, err
	}
	rows, rec := p.ex.CashCollection(g)
	return rows, rec, nil
}

// ExtractStaffDebts extracts the staff debts block and its
// reconciliation.
func (p *Parser) ExtractStaffDebts(data []byte) ([]blocks.DebtRow, blocks.Reconciliation, error) {
	g, err := grid.Load(data)
	if err != nil {
		return nil, blocks.Reconciliation{}, err
	}
	rows, rec := p.ex.StaffDebts(g)
	return rows, rec, nil
}

// ExtractNotes extracts the notes block.
func (p *Parser) ExtractNotes(data []byte) (blocks.NoteEntries, error) {
	g, err := grid.Load(data)
	if err != nil {
		return blocks.NoteEntries{}, err
	}
	return p.ex.NoteEntriesBlock(g), nil
}

// ExtractTotalsSummary extracts the closing balance block.
func (p *Parser) ExtractTotalsSummary(data []byte) ([]blocks.BalanceRow, error) {
	g, err := grid.Load(data)
	if err != nil {
		return nil, err
	}
	return p.ex.TotalsSummary(g), nil
}

// Extract runs all nine block extractions over a single grid.
func (p *Parser) Extract(data []byte) (*Report, error) {
	g, err := grid.Load(data)
	if err != nil {
		return nil, err
	}

	r := &Report{}
	r.Income = p.ex.IncomeRecords(g)
	r.Tickets.Records, r.Tickets.Reconciliation = p.ex.TicketSales(g)
	r.Payments.Records, r.Payments.Reconciliation = p.ex.PaymentTypes(g)
	r.Staff = p.ex.StaffStatistics(g)
	r.Expenses.Records, r.Expenses.Reconciliation = p.ex.ExpenseRecords(g)
	r.Cash.Records, r.Cash.Reconciliation = p.ex.CashCollection(g)
	r.Debts.Records, r.Debts.Reconciliation = p.ex.StaffDebts(g)
	r.Notes = p.ex.NoteEntriesBlock(g)
	r.Totals = p.ex.TotalsSummary(g)
	return r, nil
}
