package tables

import "strings"

// MergedTable is the result of stitching two fragments together. Unlike a
// Fragment it has no position: the sweep splices its markdown into the page
// where the first fragment was.
type MergedTable struct {
	Headers        []string
	DataRows       [][]string
	ColumnCount    int
	AtContentStart bool
	AtContentEnd   bool
}

// MergeFragments appends second's data rows to first's. The header comes
// from first, or from second when first has none. A header repeated by
// second is already outside its data rows, so nothing is duplicated.
func MergeFragments(first, second Fragment) MergedTable {
	rows := make([][]string, 0, len(first.DataRows)+len(second.DataRows))
	for _, row := range first.DataRows {
		rows = append(rows, append([]string(nil), row...))
	}
	for _, row := range second.DataRows {
		rows = append(rows, append([]string(nil), row...))
	}

	headers := first.Headers
	if headers == nil {
		headers = second.Headers
	}
	if headers != nil {
		headers = append([]string(nil), headers...)
	}

	return MergedTable{
		Headers:        headers,
		DataRows:       rows,
		ColumnCount:    max(first.ColumnCount, second.ColumnCount),
		AtContentStart: first.AtContentStart,
		AtContentEnd:   second.AtContentEnd,
	}
}

// Markdown renders the table. Every row is padded to the column count and
// every line ends with a newline.
func (m MergedTable) Markdown() string {
	return buildMarkdownTable(m.Headers, m.DataRows, m.ColumnCount)
}

// Fragment converts the merged table back into an unpositioned fragment.
// StartPos and EndPos are zero.
func (m MergedTable) Fragment() Fragment {
	content := strings.TrimSuffix(m.Markdown(), "\n")
	return Fragment{
		Content:        content,
		HasHeader:      m.Headers != nil,
		IsComplete:     true,
		AtContentStart: m.AtContentStart,
		AtContentEnd:   m.AtContentEnd,
		ColumnCount:    m.ColumnCount,
		Headers:        m.Headers,
		DataRows:       m.DataRows,
	}
}

// buildMarkdownTable renders headers (when present) and rows as a pipe
// table. A zero column count falls back to the header width, then to the
// width of the first row; with nothing to go on the table is empty.
func buildMarkdownTable(headers []string, rows [][]string, columns int) string {
	if columns <= 0 {
		switch {
		case headers != nil:
			columns = len(headers)
		case len(rows) > 0:
			columns = len(rows[0])
		default:
			return ""
		}
	}

	var sb strings.Builder

	if headers != nil {
		writeRow(&sb, headers, columns)

		sb.WriteString("|")
		for i := 0; i < columns; i++ {
			sb.WriteString(" --- |")
		}
		sb.WriteString("\n")
	}

	for _, row := range rows {
		writeRow(&sb, row, columns)
	}

	return sb.String()
}

// writeRow writes one row padded with empty cells up to columns. Rows wider
// than columns are written in full.
func writeRow(sb *strings.Builder, cells []string, columns int) {
	sb.WriteString("|")
	for i := 0; i < len(cells) || i < columns; i++ {
		sb.WriteString(" ")
		if i < len(cells) {
			sb.WriteString(cells[i])
		}
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}
