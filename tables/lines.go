package tables

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// verifyOffsets enables character boundary assertions on every computed
// offset. Tests switch it on.
var verifyOffsets = false

// lineTable splits a text into lines and records where each one starts and
// where its terminator ends. Every offset handed out by the detector comes
// from this table.
type lineTable struct {
	text string
	// lines holds line content without "\n" or a trailing "\r"
	lines []string
	// starts[i] is the byte offset of line i; ends[i] is the offset just
	// past its newline, or len(text) for an unterminated last line
	starts []int
	ends   []int
}

// newLineTable splits text the way a line iterator does: a trailing newline
// does not produce an empty last line and an empty text has no lines.
func newLineTable(text string) *lineTable {
	lt := &lineTable{text: text}
	for pos := 0; pos < len(text); {
		end := len(text)
		line := text[pos:]
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
			end = pos + nl + 1
		}
		lt.lines = append(lt.lines, strings.TrimSuffix(line, "\r"))
		lt.starts = append(lt.starts, pos)
		lt.ends = append(lt.ends, end)
		pos = end
	}
	return lt
}

// len returns the number of lines
func (lt *lineTable) len() int {
	return len(lt.lines)
}

// span returns the byte range covering lines [from, to)
func (lt *lineTable) span(from, to int) (int, int) {
	start, end := len(lt.text), len(lt.text)
	if from < len(lt.starts) {
		start = lt.starts[from]
	}
	if to > 0 && to <= len(lt.ends) {
		end = lt.ends[to-1]
	}
	if verifyOffsets {
		assertBoundary(lt.text, start)
		assertBoundary(lt.text, end)
	}
	return start, end
}

// blank reports whether every line in [from, to) is empty or whitespace
func (lt *lineTable) blank(from, to int) bool {
	for i := from; i < to; i++ {
		if strings.TrimSpace(lt.lines[i]) != "" {
			return false
		}
	}
	return true
}

func assertBoundary(text string, pos int) {
	if pos < 0 || pos > len(text) {
		panic(fmt.Sprintf("tables: offset %d outside text of length %d", pos, len(text)))
	}
	if pos < len(text) && !utf8.RuneStart(text[pos]) {
		panic(fmt.Sprintf("tables: offset %d is not a character boundary", pos))
	}
}
