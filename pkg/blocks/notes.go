package blocks

import (
	"strings"

	"github.com/olzhass/smena/pkg/grid"
	"github.com/olzhass/smena/pkg/money"
)

// balanceWords end the notes block: once the closing balance vocabulary
// shows up the free text is over.
var balanceWords = []string{"ДОХОД", "РАСХОД", "ПРИБЫЛЬ"}

// NoteEntriesBlock extracts the «Примечания» block: two parallel columns
// of free text, «безнал» on the left and «нал» on the right, each closed
// by its own «Итого…» line carrying an amount after the colon. Lines
// showing up after both columns have closed are collected as extras.
func (e *Extractor) NoteEntriesBlock(g *grid.Grid) NoteEntries {
	anchor, ok := FindAnchor(g, Notes)
	if !ok {
		e.debug("notes anchor not found")
		return NoteEntries{}
	}
	col := anchor.Col

	start := anchor.Row + 1
	for r := start; r < g.RowCount(); r++ {
		left, right := cellText(g, r, col), cellText(g, r, col+1)
		if left == "" && right == "" {
			continue
		}
		// A «долг…» header line labels the two columns and is skipped.
		if containsUpper(left, "ДОЛГ") || containsUpper(right, "ДОЛГ") {
			start = r + 1
		} else {
			start = r
		}
		break
	}

	var entries NoteEntries
	leftDone, rightDone := false, false

	for r := start; r < g.RowCount(); r++ {
		left, right := cellText(g, r, col), cellText(g, r, col+1)
		if left == "" && right == "" {
			continue
		}
		if hasBalanceWord(left) || hasBalanceWord(right) {
			e.debug("notes: balance block reached", "row", r)
			break
		}

		processedLeft, processedRight := false, false

		if left != "" && !leftDone {
			row, total := noteRow(left)
			entries.NoCash = append(entries.NoCash, row)
			leftDone = total
			processedLeft = true
		}
		if right != "" && !rightDone {
			row, total := noteRow(right)
			entries.Cash = append(entries.Cash, row)
			rightDone = total
			processedRight = true
		}

		switch {
		case leftDone && rightDone && !processedLeft && !processedRight:
			combined := strings.TrimSpace(strings.Join(nonEmpty(left, right), " "))
			if combined != "" {
				entries.Extra = append(entries.Extra, combined)
			}
		case !processedLeft && left != "":
			entries.Extra = append(entries.Extra, left)
		case !processedRight && right != "":
			entries.Extra = append(entries.Extra, right)
		}
	}

	return entries
}

// noteRow builds one note line, parsing the trailing amount of an
// «Итого…» line from whatever follows the colon.
func noteRow(text string) (NoteRow, bool) {
	if !strings.HasPrefix(strings.ToUpper(text), "ИТОГО") {
		return NoteRow{Text: text}, false
	}
	tail := text
	if idx := strings.LastIndex(text, ":"); idx >= 0 {
		tail = text[idx+1:]
	}
	return NoteRow{Text: text, IsTotal: true, Amount: null(money.Parse(tail))}, true
}

func cellText(g *grid.Grid, row, col int) string {
	return g.Cell(row, col).Text
}

func containsUpper(text, phrase string) bool {
	return strings.Contains(strings.ToUpper(text), phrase)
}

func hasBalanceWord(text string) bool {
	u := strings.ToUpper(text)
	for _, w := range balanceWords {
		if strings.Contains(u, w) {
			return true
		}
	}
	return false
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
