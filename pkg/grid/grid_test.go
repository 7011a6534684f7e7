package grid

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestLoadCSV(t *testing.T) {
	data := []byte("Доходы\nБар,1200\nКухня,\"850,50\"\n")

	g, err := Load(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if g.RowCount() != 3 {
		t.Fatalf("expected 3 rows, got %d", g.RowCount())
	}
	if cell := g.Cell(0, 0); cell.Kind != Text || cell.Text != "Доходы" {
		t.Errorf("cell (0,0) = %+v, want text Доходы", cell)
	}
	if cell := g.Cell(1, 1); cell.Kind != Number || cell.Number.String() != "1200" {
		t.Errorf("cell (1,1) = %+v, want number 1200", cell)
	}
	if cell := g.Cell(2, 1); cell.Kind != Number || cell.Number.String() != "850.5" {
		t.Errorf("cell (2,1) = %+v, want number 850.5", cell)
	}
}

func TestLoadXLSX(t *testing.T) {
	f := excelize.NewFile()
	_ = f.SetCellValue("Sheet1", "A1", "Доходы")
	_ = f.SetCellValue("Sheet1", "A2", "Бар")
	_ = f.SetCellValue("Sheet1", "B2", 1200)
	_ = f.SetCellValue("Sheet1", "A3", "Кухня")
	_ = f.SetCellValue("Sheet1", "B3", "850,50")
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to build workbook: %v", err)
	}

	g, err := Load(buf.Bytes())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cell := g.Cell(0, 0); cell.Kind != Text || cell.Text != "Доходы" {
		t.Errorf("cell (0,0) = %+v, want text Доходы", cell)
	}
	if cell := g.Cell(1, 1); cell.Kind != Number || cell.Number.String() != "1200" {
		t.Errorf("cell (1,1) = %+v, want number 1200", cell)
	}
	if cell := g.Cell(2, 1); cell.Kind != Number || cell.Number.String() != "850.5" {
		t.Errorf("cell (2,1) = %+v, want number 850.5", cell)
	}
}

func TestLoadCorruptXLSX(t *testing.T) {
	// Looks like a zip but is not a workbook.
	data := []byte("PK\x03\x04 definitely not a workbook")

	_, err := Load(data)
	if err == nil {
		t.Fatal("expected error for corrupt workbook")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %T: %v", err, err)
	}
	if loadErr.Format != "xlsx" {
		t.Errorf("expected format xlsx, got %s", loadErr.Format)
	}
}

func TestRaggedAndOutOfRange(t *testing.T) {
	g := New([][]string{
		{"a", "1"},
		{"b"},
	})

	if g.Width(0) != 2 || g.Width(1) != 1 {
		t.Errorf("widths = %d, %d; want 2, 1", g.Width(0), g.Width(1))
	}
	if cell := g.Cell(1, 5); cell.Kind != Empty {
		t.Errorf("out-of-range cell = %+v, want empty", cell)
	}
	if cell := g.Cell(-1, 0); cell.Kind != Empty {
		t.Errorf("negative row cell = %+v, want empty", cell)
	}
	if cell := g.Cell(9, 9); cell.Kind != Empty {
		t.Errorf("past-end cell = %+v, want empty", cell)
	}
}

func TestClassifyWhitespace(t *testing.T) {
	g := New([][]string{{"   ", " Бар ", " 1200 "}})

	if cell := g.Cell(0, 0); cell.Kind != Empty {
		t.Errorf("blank cell = %+v, want empty", cell)
	}
	if cell := g.Cell(0, 1); cell.Kind != Text || cell.Text != "Бар" {
		t.Errorf("cell (0,1) = %+v, want trimmed text", cell)
	}
	if cell := g.Cell(0, 2); cell.Kind != Number || cell.Number.String() != "1200" {
		t.Errorf("cell (0,2) = %+v, want number 1200", cell)
	}
}
