package model

import (
	"strings"
)

// Table represents a table with a header row and data rows.
//
// Rows are not required to have the same length as Headers. Shorter rows are
// padded with empty cells when rendered; they are never rejected.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t *Table) Kind() BlockKind { return BlockKindTable }

// NewTable creates a table with the given header cells
func NewTable(headers ...string) *Table {
	return &Table{
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow appends a data row
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the widest of the header and every data row
func (t *Table) ColCount() int {
	cols := len(t.Headers)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// ToMarkdown converts the table to a pipe table
func (t *Table) ToMarkdown() string {
	if len(t.Headers) == 0 && len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	// A headerless table is a continuation: rows only, padded to the
	// widest row
	width := len(t.Headers)
	if width == 0 {
		width = t.ColCount()
	} else {
		writeRow(&sb, t.Headers, width)

		sb.WriteString("|")
		for range t.Headers {
			sb.WriteString(" --- |")
		}
		sb.WriteString("\n")
	}

	for _, row := range t.Rows {
		writeRow(&sb, row, width)
	}

	return sb.String()
}

// writeRow writes one pipe row, padding it to width cells
func writeRow(sb *strings.Builder, cells []string, width int) {
	sb.WriteString("|")
	for j := 0; j < len(cells) || j < width; j++ {
		sb.WriteString(" ")
		if j < len(cells) {
			sb.WriteString(strings.ReplaceAll(cells[j], "\n", " "))
		}
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}
