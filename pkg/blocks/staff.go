package blocks

import (
	"github.com/olzhass/smena/pkg/grid"
)

// StaffStatistics extracts the «Статистика персонала» block: role name
// in the anchor column, headcount two columns to the right. The block
// has no total row; the first blank row or a neighboring block's anchor
// ends it.
func (e *Extractor) StaffStatistics(g *grid.Grid) []StaffRow {
	anchor, ok := FindAnchor(g, Staff)
	if !ok {
		e.debug("staff anchor not found")
		return nil
	}

	lines := scanLines(g, scanConfig{
		Start:    anchor.Row + 1,
		LabelCol: anchor.Col,
		Boundary: func(label string) bool { return foreignAnchor(Staff, label) },
	})

	rows := make([]StaffRow, 0, len(lines))
	for _, ln := range lines {
		count := intAt(g, ln.Row, anchor.Col+2)
		e.debug("staff line", "role", ln.Label, "count", count)
		rows = append(rows, StaffRow{RoleName: ln.Label, StaffCount: count})
	}
	return rows
}
