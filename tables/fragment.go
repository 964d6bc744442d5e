package tables

// Fragment is one detected run of table rows within a page of markdown.
type Fragment struct {
	// Content is the run's lines joined by "\n", without a trailing newline
	Content string

	// StartPos and EndPos are byte offsets into the page text. EndPos
	// includes the newline of the run's last line when there is one.
	StartPos int
	EndPos   int

	// HasHeader is true when a separator row follows the first row
	HasHeader bool
	// IsComplete is true when the run contains a separator row at all
	IsComplete bool

	// Only blank lines precede / follow the run
	AtContentStart bool
	AtContentEnd   bool

	// ColumnCount is the widest parsed row
	ColumnCount int

	// Headers is nil when the run has no header row
	Headers []string
	// DataRows excludes the header row and separator rows
	DataRows [][]string
}

// RowCount returns the number of data rows
func (f Fragment) RowCount() int {
	return len(f.DataRows)
}

// Len returns the number of bytes the fragment spans in its page text
func (f Fragment) Len() int {
	return f.EndPos - f.StartPos
}
