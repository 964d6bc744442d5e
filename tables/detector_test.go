package tables

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// ============================================================================
// Detection Tests
// ============================================================================

func TestDetectFragments_SimpleTable(t *testing.T) {
	content := `
Some text before

| Header 1 | Header 2 |
| --- | --- |
| Cell 1 | Cell 2 |
| Cell 3 | Cell 4 |

Some text after
`

	fragments := DetectFragments(content)
	if len(fragments) != 1 {
		t.Fatalf("len(fragments) = %d, want 1", len(fragments))
	}

	f := fragments[0]
	if !f.HasHeader || !f.IsComplete {
		t.Errorf("HasHeader = %v, IsComplete = %v, want both true", f.HasHeader, f.IsComplete)
	}
	if f.AtContentStart || f.AtContentEnd {
		t.Errorf("table surrounded by text should not touch either boundary")
	}
	if f.ColumnCount != 2 {
		t.Errorf("ColumnCount = %d, want 2", f.ColumnCount)
	}
	if diff := cmp.Diff([]string{"Header 1", "Header 2"}, f.Headers); diff != "" {
		t.Errorf("Headers mismatch (-want +got):\n%s", diff)
	}
	want := [][]string{{"Cell 1", "Cell 2"}, {"Cell 3", "Cell 4"}}
	if diff := cmp.Diff(want, f.DataRows); diff != "" {
		t.Errorf("DataRows mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectFragments_ExactCells(t *testing.T) {
	content := "| A | B |\n| --- | --- |\n| 1 | 2 |\n| 3 | 4 |\n"

	fragments := DetectFragments(content)
	if len(fragments) != 1 {
		t.Fatalf("len(fragments) = %d, want 1", len(fragments))
	}

	want := Fragment{
		Content:        "| A | B |\n| --- | --- |\n| 1 | 2 |\n| 3 | 4 |",
		StartPos:       0,
		EndPos:         len(content),
		HasHeader:      true,
		IsComplete:     true,
		AtContentStart: true,
		AtContentEnd:   true,
		ColumnCount:    2,
		Headers:        []string{"A", "B"},
		DataRows:       [][]string{{"1", "2"}, {"3", "4"}},
	}
	if diff := cmp.Diff(want, fragments[0]); diff != "" {
		t.Errorf("fragment mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectFragments_WithoutHeader(t *testing.T) {
	content := "| Cell 1 | Cell 2 |\n| Cell 3 | Cell 4 |\n"

	fragments := DetectFragments(content)
	if len(fragments) != 1 {
		t.Fatalf("len(fragments) = %d, want 1", len(fragments))
	}
	f := fragments[0]
	if f.HasHeader || f.IsComplete {
		t.Errorf("HasHeader = %v, IsComplete = %v, want both false", f.HasHeader, f.IsComplete)
	}
	if !f.AtContentStart {
		t.Error("table should be at content start")
	}
	if f.Headers != nil {
		t.Errorf("Headers = %v, want nil", f.Headers)
	}
	if f.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", f.RowCount())
	}
}

func TestDetectFragments_MultipleTables(t *testing.T) {
	content := `
| A | B |
| --- | --- |
| 1 | 2 |

Some text between tables

| X | Y | Z |
| --- | --- | --- |
| a | b | c |
`

	fragments := DetectFragments(content)
	if len(fragments) != 2 {
		t.Fatalf("len(fragments) = %d, want 2", len(fragments))
	}
	if fragments[0].ColumnCount != 2 {
		t.Errorf("first ColumnCount = %d, want 2", fragments[0].ColumnCount)
	}
	if fragments[1].ColumnCount != 3 {
		t.Errorf("second ColumnCount = %d, want 3", fragments[1].ColumnCount)
	}
	if !fragments[0].AtContentStart || fragments[0].AtContentEnd {
		t.Error("first table should touch only the start")
	}
	if fragments[1].AtContentStart || !fragments[1].AtContentEnd {
		t.Error("second table should touch only the end")
	}
}

func TestDetectFragments_Boundaries(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantStart bool
		wantEnd   bool
	}{
		{"at end", "Some text\n\n| A | B |\n| --- | --- |\n| 1 | 2 |", false, true},
		{"at start", "| A | B |\n| --- | --- |\n| 1 | 2 |\n\nSome text", true, false},
		{"blank lines around", "\n  \n| A |\n\t\n\n", true, true},
		{"trailing sentence", "| A | B |\n| 1 | 2 |\nA sentence.", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragments := DetectFragments(tt.content)
			if len(fragments) != 1 {
				t.Fatalf("len(fragments) = %d, want 1", len(fragments))
			}
			if fragments[0].AtContentStart != tt.wantStart {
				t.Errorf("AtContentStart = %v, want %v", fragments[0].AtContentStart, tt.wantStart)
			}
			if fragments[0].AtContentEnd != tt.wantEnd {
				t.Errorf("AtContentEnd = %v, want %v", fragments[0].AtContentEnd, tt.wantEnd)
			}
		})
	}
}

func TestDetectFragments_EmptyCells(t *testing.T) {
	content := "| A | B | C |\n| --- | --- | --- |\n| 1 |  | 3 |\n|  | 2 |  |"

	fragments := DetectFragments(content)
	if len(fragments) != 1 {
		t.Fatalf("len(fragments) = %d, want 1", len(fragments))
	}
	if fragments[0].ColumnCount != 3 {
		t.Errorf("ColumnCount = %d, want 3", fragments[0].ColumnCount)
	}
	want := [][]string{{"1", "", "3"}, {"", "2", ""}}
	if diff := cmp.Diff(want, fragments[0].DataRows); diff != "" {
		t.Errorf("DataRows mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectFragments_RaggedRows(t *testing.T) {
	content := "| A | B |\n| --- | --- |\n| 1 | 2 | 3 |\n| 4 |"

	f := DetectFragments(content)[0]
	if f.ColumnCount != 3 {
		t.Errorf("ColumnCount = %d, want widest row 3", f.ColumnCount)
	}
	if f.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2", f.RowCount())
	}
}

func TestDetectFragments_SeparatorFirst(t *testing.T) {
	content := "| --- | --- |\n| 1 | 2 |"

	f := DetectFragments(content)[0]
	if f.HasHeader {
		t.Error("a leading separator has no header row above it")
	}
	if !f.IsComplete {
		t.Error("IsComplete should follow separator presence")
	}
	if f.Headers != nil {
		t.Errorf("Headers = %v, want nil", f.Headers)
	}
	if diff := cmp.Diff([][]string{{"1", "2"}}, f.DataRows); diff != "" {
		t.Errorf("DataRows mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectFragments_StrayRowBeforeSeparator(t *testing.T) {
	content := "| H1 | H2 |\n| stray | row |\n| --- | --- |\n| 1 | 2 |"

	f := DetectFragments(content)[0]
	if !f.HasHeader {
		t.Error("HasHeader should be true")
	}
	if diff := cmp.Diff([]string{"H1", "H2"}, f.Headers); diff != "" {
		t.Errorf("Headers mismatch (-want +got):\n%s", diff)
	}
	want := [][]string{{"stray", "row"}, {"1", "2"}}
	if diff := cmp.Diff(want, f.DataRows); diff != "" {
		t.Errorf("stray rows must be kept as data (-want +got):\n%s", diff)
	}
}

func TestDetectFragments_AlignedSeparator(t *testing.T) {
	content := "| Left | Center | Right |\n|:-----|:------:|------:|\n| a | b | c |"

	f := DetectFragments(content)[0]
	if !f.HasHeader || f.RowCount() != 1 {
		t.Errorf("HasHeader = %v, RowCount() = %d, want true and 1", f.HasHeader, f.RowCount())
	}
}

func TestDetectFragments_NotRows(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"plain text", "Just some text on page 1"},
		{"double pipe", "||"},
		{"unclosed row", "| A | B"},
		{"pipe in prose", "a | b | c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFragments(tt.content); len(got) != 0 {
				t.Errorf("DetectFragments(%q) = %d fragments, want 0", tt.content, len(got))
			}
		})
	}
}

// ============================================================================
// Offset Tests
// ============================================================================

func TestDetectFragments_OffsetsSliceRun(t *testing.T) {
	content := "intro\n| A |\n| 1 |\noutro"

	f := DetectFragments(content)[0]
	if got := content[f.StartPos:f.EndPos]; got != "| A |\n| 1 |\n" {
		t.Errorf("content[StartPos:EndPos] = %q", got)
	}
	if f.Len() != len("| A |\n| 1 |\n") {
		t.Errorf("Len() = %d", f.Len())
	}
}

func TestDetectFragments_NoTrailingNewline(t *testing.T) {
	content := "text\n| A |\n| 1 |"

	f := DetectFragments(content)[0]
	if f.EndPos != len(content) {
		t.Errorf("EndPos = %d, want %d", f.EndPos, len(content))
	}
	if f.StartPos != len("text\n") {
		t.Errorf("StartPos = %d, want %d", f.StartPos, len("text\n"))
	}
}

func TestDetectFragments_MultibyteOffsets(t *testing.T) {
	content := "Résumé 日本語 🎉\n\n| 名前 | 年齢 |\n| --- | --- |\n| 太郎 | 30 |\n| Zoë | 🎂 |\ntrailing ü"

	fragments := DetectFragments(content)
	if len(fragments) != 1 {
		t.Fatalf("len(fragments) = %d, want 1", len(fragments))
	}
	f := fragments[0]

	wantStart := strings.Index(content, "| 名前")
	wantEnd := strings.Index(content, "trailing")
	if f.StartPos != wantStart || f.EndPos != wantEnd {
		t.Errorf("offsets = [%d, %d), want [%d, %d)", f.StartPos, f.EndPos, wantStart, wantEnd)
	}
	if !utf8.ValidString(content[:f.StartPos]) || !utf8.ValidString(content[f.EndPos:]) {
		t.Error("offsets split a multi-byte character")
	}
	if diff := cmp.Diff([]string{"名前", "年齢"}, f.Headers); diff != "" {
		t.Errorf("Headers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"太郎", "30"}, {"Zoë", "🎂"}}, f.DataRows); diff != "" {
		t.Errorf("DataRows mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectFragments_CRLF(t *testing.T) {
	content := "intro\r\n| A | B |\r\n| --- | --- |\r\n| 1 | 2 |\r\nafter\r\n"

	f := DetectFragments(content)[0]
	if got := content[f.StartPos:f.EndPos]; got != "| A | B |\r\n| --- | --- |\r\n| 1 | 2 |\r\n" {
		t.Errorf("content[StartPos:EndPos] = %q", got)
	}
	if f.Content != "| A | B |\n| --- | --- |\n| 1 | 2 |" {
		t.Errorf("Content = %q", f.Content)
	}
	if !f.HasHeader || f.ColumnCount != 2 {
		t.Errorf("HasHeader = %v, ColumnCount = %d", f.HasHeader, f.ColumnCount)
	}
}

func TestAssertBoundary(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an offset inside a character")
		}
	}()
	assertBoundary("é", 1)
}

func TestNewLineTable(t *testing.T) {
	tests := []struct {
		text  string
		lines []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tt := range tests {
		lt := newLineTable(tt.text)
		if diff := cmp.Diff(tt.lines, lt.lines); diff != "" {
			t.Errorf("newLineTable(%q) lines mismatch (-want +got):\n%s", tt.text, diff)
		}
		if n := len(lt.ends); n > 0 && lt.ends[n-1] != len(tt.text) {
			t.Errorf("newLineTable(%q) last end = %d, want %d", tt.text, lt.ends[n-1], len(tt.text))
		}
	}
}

// ============================================================================
// Registry Tests
// ============================================================================

func TestDetectorRegistry(t *testing.T) {
	if d := GetDetector("pipe"); d == nil || d.Name() != "pipe" {
		t.Errorf("GetDetector(pipe) = %v", d)
	}
	if d := GetDetector("missing"); d != nil {
		t.Errorf("GetDetector(missing) = %v, want nil", d)
	}

	r := NewRegistry()
	r.Register(NewPipeDetector())
	if diff := cmp.Diff([]string{"pipe"}, r.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	found := false
	for _, name := range ListDetectors() {
		if name == "pipe" {
			found = true
		}
	}
	if !found {
		t.Error("pipe detector should be registered globally")
	}
}
