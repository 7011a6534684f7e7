package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/olzhass/smena/pkg/blocks"
	"github.com/olzhass/smena/pkg/report"
)

func TestWorkbook(t *testing.T) {
	rep := &report.Report{
		Income: []blocks.IncomeRow{
			{Category: "Бар", Amount: decimal.NewFromInt(1200)},
			{Category: "Итого за смену", Amount: decimal.NewFromInt(1200), IsTotal: true},
		},
		Staff: []blocks.StaffRow{
			{RoleName: "Администратор", StaffCount: 2},
		},
	}

	data, err := Workbook(rep, Meta{Club: "Арена", Date: "01.02.2025"})
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("rendered workbook does not open: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != "Отчет" {
		t.Errorf("sheets = %v, want [Отчет]", got)
	}

	a1, err := f.GetCellValue("Отчет", "A1")
	if err != nil || a1 != "Клуб: Арена" {
		t.Errorf("A1 = %q, err %v; want Клуб: Арена", a1, err)
	}

	rows, err := f.GetRows("Отчет")
	if err != nil {
		t.Fatalf("read rendered rows: %v", err)
	}
	var sawTitle, sawTotal, sawStaff bool
	for _, row := range rows {
		for _, cell := range row {
			switch cell {
			case "ДОХОДЫ":
				sawTitle = true
			case "Итого за смену":
				sawTotal = true
			case "Администратор":
				sawStaff = true
			}
		}
	}
	if !sawTitle || !sawTotal || !sawStaff {
		t.Errorf("rendered workbook misses rows: title=%v total=%v staff=%v", sawTitle, sawTotal, sawStaff)
	}
}

func TestWorkbookEmptyReport(t *testing.T) {
	data, err := Workbook(&report.Report{}, Meta{})
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK\x03\x04")) {
		t.Error("expected xlsx bytes")
	}
}
