package blocks

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/olzhass/smena/pkg/grid"
	"github.com/olzhass/smena/pkg/money"
)

// Extractor runs the per-block extractions over a grid. The logger is an
// optional diagnostics sink; a nil logger silences the intermediate cell
// chatter without changing behavior.
type Extractor struct {
	logger *log.Logger
}

// New creates an extractor with an optional diagnostics logger.
func New(logger *log.Logger) *Extractor {
	return &Extractor{logger: logger}
}

func (e *Extractor) debug(msg string, kv ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, kv...)
	}
}

// numberAt normalizes the cell at (row, col) to a decimal, leniently.
func numberAt(g *grid.Grid, row, col int) decimal.Decimal {
	cell := g.Cell(row, col)
	switch cell.Kind {
	case grid.Number:
		return cell.Number
	case grid.Text:
		return money.Parse(cell.Text)
	default:
		return decimal.Zero
	}
}

// intAt is the integer variant of numberAt, truncating toward zero.
func intAt(g *grid.Grid, row, col int) int {
	return int(numberAt(g, row, col).IntPart())
}

// hasTotalWord matches any label containing «итого».
func hasTotalWord(label string) bool {
	return strings.Contains(strings.ToUpper(label), "ИТОГО")
}

// isShiftTotal matches the income block's closing «Итого за смену» row.
func isShiftTotal(label string) bool {
	u := strings.ToUpper(label)
	return strings.Contains(u, "ИТОГО") && strings.Contains(u, "СМЕН")
}

// foreignAnchor reports whether a label is the anchor phrase of some
// block other than the one being scanned.
func foreignAnchor(own Kind, label string) bool {
	u := strings.ToUpper(label)
	for kind, phrases := range anchorPhrases {
		if kind == own {
			continue
		}
		if containsAll(u, phrases) {
			return true
		}
	}
	return false
}

func null(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
