package blocks

import (
	"github.com/shopspring/decimal"

	"github.com/olzhass/smena/pkg/grid"
	"github.com/olzhass/smena/pkg/money"
)

// defaultLookahead is how many rows past a blank the scanner keeps
// expecting the block's total row before giving up.
const defaultLookahead = 4

type stepKind int

const (
	// stepLine emits a labelled data row and keeps scanning.
	stepLine stepKind = iota
	// stepSkip tolerates a stray blank row because a total row is still
	// ahead.
	stepSkip
	// stepTotal emits the block's total row and terminates the scan.
	stepTotal
	// stepStop terminates the scan without emitting: end of block, a
	// numeric label (the column belongs to another block by now), or a
	// neighboring block's anchor text.
	stepStop
)

// line is one labelled row collected by the scanner. Value holds the
// first number found at the configured offsets; ValueFound is false when
// every probed cell was empty.
type line struct {
	Row        int
	Label      string
	IsTotal    bool
	Value      decimal.Decimal
	ValueFound bool
}

// scanConfig parametrizes the generic line scanner shared by all block
// extractors. Per-kind extractors differ only in these knobs plus how
// they map lines to records.
type scanConfig struct {
	Start        int   // first row to scan
	LabelCol     int   // column holding the line labels
	ValueOffsets []int // value columns to probe, relative to LabelCol
	Lookahead    int   // blank-row tolerance, defaultLookahead when zero
	Limit        int   // max rows to scan, unlimited when zero
	NumberLabels bool  // treat numeric label cells as data, not a boundary
	IsTotal      func(label string) bool
	Boundary     func(label string) bool // label opening a different block
}

// scanLines walks rows from cfg.Start collecting labelled lines until a
// stop condition fires. The total row, when present, is always the last
// line and always terminates the scan.
func scanLines(g *grid.Grid, cfg scanConfig) []line {
	var lines []line
	for row := cfg.Start; row < g.RowCount(); row++ {
		if cfg.Limit > 0 && row >= cfg.Start+cfg.Limit {
			break
		}
		kind, ln := scanRow(g, cfg, row)
		switch kind {
		case stepLine:
			lines = append(lines, ln)
		case stepSkip:
			continue
		case stepTotal:
			lines = append(lines, ln)
			return lines
		case stepStop:
			return lines
		}
	}
	return lines
}

// scanRow classifies a single row into an explicit scan step.
func scanRow(g *grid.Grid, cfg scanConfig, row int) (stepKind, line) {
	label := g.Cell(row, cfg.LabelCol)

	switch label.Kind {
	case grid.Empty:
		if cfg.IsTotal != nil && totalAhead(g, cfg, row+1) {
			return stepSkip, line{}
		}
		return stepStop, line{}
	case grid.Number:
		if !cfg.NumberLabels {
			return stepStop, line{}
		}
	}

	ln := line{Row: row, Label: label.Text}
	if cfg.IsTotal != nil && cfg.IsTotal(label.Text) {
		ln.IsTotal = true
		ln.Value, ln.ValueFound, _ = probeValue(g, row, cfg.LabelCol, cfg.ValueOffsets)
		return stepTotal, ln
	}

	var boundary bool
	ln.Value, ln.ValueFound, boundary = probeValue(g, row, cfg.LabelCol, cfg.ValueOffsets)
	if boundary {
		return stepStop, line{}
	}
	if !ln.ValueFound && cfg.Boundary != nil && cfg.Boundary(label.Text) {
		return stepStop, line{}
	}
	return stepLine, ln
}

// probeValue walks the value offsets left to right and normalizes the
// first non-empty cell. A text cell that does not look numeric is the
// label of the next block, reported as a boundary rather than a value.
func probeValue(g *grid.Grid, row, labelCol int, offsets []int) (value decimal.Decimal, found, boundary bool) {
	for _, off := range offsets {
		cell := g.Cell(row, labelCol+off)
		switch cell.Kind {
		case grid.Empty:
			continue
		case grid.Number:
			return cell.Number, true, false
		case grid.Text:
			if !money.LooksNumeric(cell.Text) {
				return decimal.Zero, false, true
			}
			return money.Parse(cell.Text), true, false
		}
	}
	return decimal.Zero, false, false
}

// totalAhead reports whether a total label shows up within the blank-row
// lookahead window.
func totalAhead(g *grid.Grid, cfg scanConfig, from int) bool {
	lookahead := cfg.Lookahead
	if lookahead == 0 {
		lookahead = defaultLookahead
	}
	for r := from; r < from+lookahead && r < g.RowCount(); r++ {
		cell := g.Cell(r, cfg.LabelCol)
		if cell.Kind == grid.Text && cfg.IsTotal(cell.Text) {
			return true
		}
	}
	return false
}
