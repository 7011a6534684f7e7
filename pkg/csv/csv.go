// Package csv renders block records as CSV sections.
package csv

import (
	"bytes"
	"strings"
)

// Row is any block record that can render itself as CSV fields.
type Row interface {
	Fields() []string
}

// FilterFunc selects which rows make it into the output.
type FilterFunc[T Row] func(T) bool

// Create renders a header line followed by one line per row. Fields
// containing commas or quotes are quoted.
func Create[T Row](header []string, rows []T, filter FilterFunc[T]) []byte {
	var buf bytes.Buffer
	writeLine(&buf, header)
	for _, r := range rows {
		if filter == nil || filter(r) {
			writeLine(&buf, r.Fields())
		}
	}
	return buf.Bytes()
}

// Section appends a titled block of rows to an existing buffer, used to
// stack several blocks into one file.
func Section[T Row](buf *bytes.Buffer, title string, header []string, rows []T) {
	if len(rows) == 0 {
		return
	}
	if buf.Len() > 0 {
		buf.WriteByte('\n')
	}
	writeLine(buf, []string{title})
	writeLine(buf, header)
	for _, r := range rows {
		writeLine(buf, r.Fields())
	}
}

func writeLine(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(escape(f))
	}
	buf.WriteByte('\n')
}

func escape(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
