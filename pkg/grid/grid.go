// Package grid turns raw spreadsheet bytes into a two-dimensional grid of
// typed cells. Only the first sheet is read. The grid is ragged: rows keep
// whatever width the source gave them, and out-of-range lookups come back
// as empty cells so callers never bounds-check.
package grid

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/extrame/xls"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/olzhass/smena/pkg/money"
)

// maxRows caps how far legacy .xls decoding reads.
const maxRows = 1000

// Kind classifies a single cell.
type Kind int

const (
	Empty Kind = iota
	Number
	Text
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Text:
		return "text"
	default:
		return "empty"
	}
}

// Cell is one grid cell. Number cells keep both the normalized value and
// the raw text they were built from.
type Cell struct {
	Kind   Kind
	Text   string
	Number decimal.Decimal
}

// Grid is an immutable row-major container of cells.
type Grid struct {
	rows [][]Cell
}

// LoadError reports an unreadable byte stream. Everything past loading
// degrades silently, this is the only hard failure of the engine.
type LoadError struct {
	Format string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s grid: %v", e.Format, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load decodes spreadsheet bytes into a grid. The container is sniffed
// from the leading magic: zip means xlsx/xlsm, an OLE header means legacy
// xls, anything else is treated as CSV.
func Load(data []byte) (*Grid, error) {
	switch {
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		return loadXLSX(data)
	case bytes.HasPrefix(data, []byte{0xD0, 0xCF, 0x11, 0xE0}):
		return loadXLS(data)
	default:
		return loadCSV(data)
	}
}

func loadXLSX(data []byte) (*Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Format: "xlsx", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Format: "xlsx", Err: fmt.Errorf("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &LoadError{Format: "xlsx", Err: err}
	}
	return New(rows), nil
}

func loadXLS(data []byte) (*Grid, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, &LoadError{Format: "xls", Err: err}
	}
	return New(workbook.ReadAllCells(maxRows)), nil
}

func loadCSV(data []byte) (*Grid, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Format: "csv", Err: err}
		}
		rows = append(rows, record)
	}
	return New(rows), nil
}

// New builds a grid from raw string rows, classifying every cell exactly
// once. Classification never fails: values that merely look numeric but
// cannot be normalized stay Text and fall through to the lenient parser
// downstream.
func New(raw [][]string) *Grid {
	rows := make([][]Cell, len(raw))
	for r, rawRow := range raw {
		row := make([]Cell, len(rawRow))
		for c, value := range rawRow {
			row[c] = classify(value)
		}
		rows[r] = row
	}
	return &Grid{rows: rows}
}

func classify(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: Empty}
	}
	if money.LooksNumeric(trimmed) {
		return Cell{Kind: Number, Text: trimmed, Number: money.Parse(trimmed)}
	}
	return Cell{Kind: Text, Text: trimmed}
}

// RowCount returns the number of rows in the grid.
func (g *Grid) RowCount() int {
	return len(g.rows)
}

// Width returns the number of cells in the given row.
func (g *Grid) Width(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// Cell returns the cell at (row, col), or an empty cell when the
// coordinates fall outside the grid.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.rows) {
		return Cell{Kind: Empty}
	}
	if col < 0 || col >= len(g.rows[row]) {
		return Cell{Kind: Empty}
	}
	return g.rows[row][col]
}
