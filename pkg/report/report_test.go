package report

import (
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a full shift report into an in-memory workbook.
// The layout mirrors the sheets the clubs actually send: loose blocks
// scattered down the first sheet with blank rows between them.
func buildWorkbook(t *testing.T, cells map[string]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	for ref, value := range cells {
		if err := f.SetCellValue("Sheet1", ref, value); err != nil {
			t.Fatalf("set cell %s: %v", ref, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func shiftReportCells() map[string]any {
	return map[string]any{
		"A1": "Отчет за смену 01.02.2025",

		"A3": "Доходы",
		"A4": "Бар", "B4": 1200,
		"A5": "Кухня", "B5": "850,50",
		"A6": "Итого за смену", "B6": "2050,50",

		"A8": "Входные билеты",
		"A9": "Цена", "B9": "Кол-во", "C9": "Сумма",
		"A10": 250, "B10": 10, "C10": 2500,
		"A11": 500, "B11": 4, "C11": 2000,
		"A12": "Итого", "B12": 14, "C12": 4500,

		"A14": "Наличные", "C14": 5000,
		"A15": "Безналичный расчет", "C15": 3000,
		"A16": "ИТОГО КАССА", "C16": 8000,
		"A17": "ИТОГО", "C17": 8000,

		"A19": "Статистика персонала",
		"A20": "Администратор", "C20": 2,
		"A21": "Официант", "C21": 5,

		"A23": "Расходы",
		"A24": "Продукты", "B24": 1500,
		"A25": "Такси", "B25": 300,
		"A26": "Итого", "B26": 1800,

		"A28": "Инкассация",
		"B29": "Кол-во", "C29": "Курс", "D29": "Сумма",
		"A30": "USD", "B30": 100, "C30": "78,5",
		"A31": "EUR", "B31": 10, "C31": 5, "D31": 50,
		"A34": "ИТОГО", "D34": 7900,

		"A36": "Иванов", "B36": 500,
		"A37": "Петров", "B37": 300,
		"A38": "Итого", "B38": 800,

		"A40": "Примечания",
		"A41": "Долг б/н", "B41": "Долг нал",
		"A42": "Сидоров 500", "B42": "Аренда 200",
		"A43": "Итого б/н: 500", "B43": "Итого нал: 200",

		"B46": "Доход", "C46": "Расход", "D46": "Прибыль",
		"A47": "Наличные", "B47": 5000, "C47": 1800, "D47": 3200,
		"A48": "б/н", "B48": 3000, "C48": 0, "D48": 3000,
		"A49": "Итого", "B49": 8000, "C49": 1800, "D49": 6200,
	}
}

func TestExtractFullReport(t *testing.T) {
	data := buildWorkbook(t, shiftReportCells())

	rep, err := New(nil).Extract(data)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if len(rep.Income) != 3 {
		t.Errorf("income rows = %d, want 3", len(rep.Income))
	}
	if !rep.Income[2].IsTotal || rep.Income[2].Amount.String() != "2050.5" {
		t.Errorf("income total = %+v", rep.Income[2])
	}

	if len(rep.Tickets.Records) != 3 || !rep.Tickets.Reconciliation.Matches {
		t.Errorf("tickets = %d rows, rec %+v", len(rep.Tickets.Records), rep.Tickets.Reconciliation)
	}

	if len(rep.Payments.Records) != 4 || !rep.Payments.Reconciliation.Matches {
		t.Errorf("payments = %d rows, rec %+v", len(rep.Payments.Records), rep.Payments.Reconciliation)
	}
	if !rep.Payments.Records[2].IsCashSubtotal {
		t.Errorf("payments row 2 = %+v, want cash subtotal", rep.Payments.Records[2])
	}

	if len(rep.Staff) != 2 || rep.Staff[1].StaffCount != 5 {
		t.Errorf("staff = %+v", rep.Staff)
	}

	if len(rep.Expenses.Records) != 3 || !rep.Expenses.Reconciliation.Matches {
		t.Errorf("expenses = %d rows, rec %+v", len(rep.Expenses.Records), rep.Expenses.Reconciliation)
	}

	if len(rep.Cash.Records) != 3 || !rep.Cash.Reconciliation.Matches {
		t.Errorf("cash = %d rows, rec %+v", len(rep.Cash.Records), rep.Cash.Reconciliation)
	}
	// Blank USD amount recomputed from quantity and rate.
	if rep.Cash.Records[0].Amount.String() != "7850" {
		t.Errorf("usd amount = %s, want 7850", rep.Cash.Records[0].Amount)
	}

	if len(rep.Debts.Records) != 3 || !rep.Debts.Reconciliation.Matches {
		t.Errorf("debts = %d rows, rec %+v", len(rep.Debts.Records), rep.Debts.Reconciliation)
	}

	if len(rep.Notes.NoCash) != 2 || len(rep.Notes.Cash) != 2 {
		t.Errorf("notes = %+v", rep.Notes)
	}
	if !rep.Notes.NoCash[1].IsTotal || rep.Notes.NoCash[1].Amount.Decimal.String() != "500" {
		t.Errorf("no-cash total = %+v", rep.Notes.NoCash[1])
	}

	if len(rep.Totals) != 3 {
		t.Errorf("totals = %+v", rep.Totals)
	}

	if rep.Empty() {
		t.Error("report must not be empty")
	}
	if warnings := rep.Warnings(); len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	data := buildWorkbook(t, shiftReportCells())
	parser := New(nil)

	first, err := parser.Extract(data)
	if err != nil {
		t.Fatalf("first extract: %v", err)
	}
	second, err := parser.Extract(data)
	if err != nil {
		t.Fatalf("second extract: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("re-extracting the same bytes must yield an identical report")
	}
}

func TestExtractWarnsOnMismatch(t *testing.T) {
	cells := shiftReportCells()
	cells["C12"] = 9999 // break the declared tickets total

	rep, err := New(nil).Extract(buildWorkbook(t, cells))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if rep.Tickets.Reconciliation.Matches {
		t.Error("tickets reconciliation should not match")
	}

	warnings := rep.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if !strings.HasPrefix(warnings[0], "tickets:") {
		t.Errorf("warning = %q, want tickets prefix", warnings[0])
	}
}

func TestExtractEmptySheet(t *testing.T) {
	rep, err := New(nil).Extract(buildWorkbook(t, map[string]any{"A1": "пусто"}))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !rep.Empty() {
		t.Errorf("report should be empty, got %+v", rep)
	}
}

func TestExtractCorruptBytes(t *testing.T) {
	if _, err := New(nil).Extract([]byte("PK\x03\x04 not a workbook")); err == nil {
		t.Fatal("expected load error")
	}
}

func TestExtractSingleBlocks(t *testing.T) {
	data := buildWorkbook(t, shiftReportCells())
	parser := New(nil)

	income, err := parser.ExtractIncome(data)
	if err != nil || len(income) != 3 {
		t.Errorf("ExtractIncome = %d rows, err %v", len(income), err)
	}
	tickets, rec, err := parser.ExtractTicketSales(data)
	if err != nil || len(tickets) != 3 || !rec.Matches {
		t.Errorf("ExtractTicketSales = %d rows, rec %+v, err %v", len(tickets), rec, err)
	}
	notes, err := parser.ExtractNotes(data)
	if err != nil || len(notes.NoCash) != 2 {
		t.Errorf("ExtractNotes = %+v, err %v", notes, err)
	}
}
