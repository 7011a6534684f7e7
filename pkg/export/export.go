// Package export renders an extracted shift report back into a styled
// workbook, the shape the club managers are used to reading.
package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/olzhass/smena/pkg/blocks"
	"github.com/olzhass/smena/pkg/report"
)

// Meta labels the workbook header.
type Meta struct {
	Club string
	Date string // date or period, preformatted
}

const sheetName = "Отчет"

type writer struct {
	f      *excelize.File
	row    int
	title  int // style ids
	header int
	bold   int
}

// Workbook renders the report into xlsx bytes. Total rows are bold, each
// block gets a titled section, and the first row names the club and
// date.
func Workbook(r *report.Report, meta Meta) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	w := &writer{f: f, row: 1}
	var err error
	if w.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}}); err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	if w.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	if w.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}}); err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	if meta.Club != "" || meta.Date != "" {
		w.cell(1, "Клуб: "+meta.Club, w.header)
		w.cell(2, "Дата: "+meta.Date, w.header)
		w.row += 2
	}

	section(w, "ДОХОДЫ", r.Income, func(row blocks.IncomeRow) ([]any, bool) {
		return []any{row.Category, amount(row.Amount)}, row.IsTotal
	})
	section(w, "ВХОДНЫЕ БИЛЕТЫ", r.Tickets.Records, func(row blocks.TicketRow) ([]any, bool) {
		return []any{row.PriceLabel, row.Quantity, amount(row.Amount)}, row.IsTotal
	})
	section(w, "ТИПЫ ОПЛАТ", r.Payments.Records, func(row blocks.PaymentRow) ([]any, bool) {
		return []any{row.PaymentType, amount(row.Amount)}, row.IsTotal || row.IsCashSubtotal
	})
	section(w, "СТАТИСТИКА ПЕРСОНАЛА", r.Staff, func(row blocks.StaffRow) ([]any, bool) {
		return []any{row.RoleName, row.StaffCount}, false
	})
	section(w, "РАСХОДЫ", r.Expenses.Records, func(row blocks.ExpenseRow) ([]any, bool) {
		return []any{row.ExpenseItem, amount(row.Amount)}, row.IsTotal
	})
	section(w, "ИНКАССАЦИЯ", r.Cash.Records, func(row blocks.CashRow) ([]any, bool) {
		values := []any{row.CurrencyLabel, nullable(row.Quantity), nullable(row.ExchangeRate), amount(row.Amount)}
		return values, row.IsTotal
	})
	section(w, "ДОЛГИ ПО ПЕРСОНАЛУ", r.Debts.Records, func(row blocks.DebtRow) ([]any, bool) {
		return []any{row.DebtType, amount(row.Amount)}, row.IsTotal
	})
	section(w, "ПРИМЕЧАНИЯ (БЕЗНАЛ)", r.Notes.NoCash, noteColumns)
	section(w, "ПРИМЕЧАНИЯ (НАЛ)", r.Notes.Cash, noteColumns)
	section(w, "ПРОЧЕЕ", r.Notes.Extra, func(text string) ([]any, bool) {
		return []any{text}, false
	})
	section(w, "ИТОГОВЫЙ БАЛАНС", r.Totals, func(row blocks.BalanceRow) ([]any, bool) {
		return []any{row.PaymentType, amount(row.IncomeAmount), amount(row.ExpenseAmount), amount(row.NetProfit)}, false
	})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func noteColumns(row blocks.NoteRow) ([]any, bool) {
	return []any{row.Text, nullable(row.Amount)}, row.IsTotal
}

// section writes a titled block of rows, one spreadsheet row per record,
// bolding the ones the renderer flags.
func section[T any](w *writer, title string, rows []T, render func(T) ([]any, bool)) {
	if len(rows) == 0 {
		return
	}
	w.cell(1, title, w.title)
	w.row++
	for _, r := range rows {
		values, bold := render(r)
		style := 0
		if bold {
			style = w.bold
		}
		for col, v := range values {
			w.cell(col+1, v, style)
		}
		w.row++
	}
	w.row++ // blank separator between blocks
}

func (w *writer) cell(col int, value any, style int) {
	name, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		return
	}
	_ = w.f.SetCellValue(sheetName, name, value)
	if style != 0 {
		_ = w.f.SetCellStyle(sheetName, name, name, style)
	}
}

func amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func nullable(d decimal.NullDecimal) any {
	if !d.Valid {
		return ""
	}
	return d.Decimal.InexactFloat64()
}
