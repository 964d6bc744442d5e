package tables

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// rowPattern matches any line shaped like a pipe table row
	rowPattern = regexp.MustCompile(`^\s*\|(.+)\|\s*$`)
	// separatorPattern matches a header separator such as | --- | :-: |
	separatorPattern = regexp.MustCompile(`^\s*\|[\s:-]+\|[\s|:-]*$`)
)

// Detector is the interface for table fragment detection
type Detector interface {
	// DetectFragments finds table fragments in one page of markdown
	DetectFragments(text string) []Fragment

	// Name returns the detector name
	Name() string
}

// PipeDetector finds GitHub-style pipe tables line by line. It performs no
// validation beyond line shape: malformed tables come back incomplete
// rather than failing.
type PipeDetector struct{}

// NewPipeDetector creates a pipe table detector
func NewPipeDetector() *PipeDetector {
	return &PipeDetector{}
}

// Name returns the detector's identifier ("pipe").
func (d *PipeDetector) Name() string {
	return "pipe"
}

// DetectFragments returns one fragment per maximal run of row-shaped lines,
// in document order.
func (d *PipeDetector) DetectFragments(text string) []Fragment {
	lt := newLineTable(text)

	var fragments []Fragment
	for i := 0; i < lt.len(); {
		if !rowPattern.MatchString(lt.lines[i]) {
			i++
			continue
		}

		// Find the extent of the run, remembering the last separator
		start, end := i, i
		separator := -1
		for end < lt.len() && rowPattern.MatchString(lt.lines[end]) {
			if separatorPattern.MatchString(lt.lines[end]) {
				separator = end - start
			}
			end++
		}

		fragments = append(fragments, lt.fragment(start, end, separator))
		i = end
	}

	return fragments
}

// fragment builds the Fragment for lines [start, end). separator is relative
// to start, or -1.
func (lt *lineTable) fragment(start, end, separator int) Fragment {
	lines := lt.lines[start:end]
	headers, rows, columns := parseRows(lines, separator >= 0)
	startPos, endPos := lt.span(start, end)

	return Fragment{
		Content:        strings.Join(lines, "\n"),
		StartPos:       startPos,
		EndPos:         endPos,
		HasHeader:      separator > 0,
		IsComplete:     separator >= 0,
		AtContentStart: lt.blank(0, start),
		AtContentEnd:   lt.blank(end, lt.len()),
		ColumnCount:    columns,
		Headers:        headers,
		DataRows:       rows,
	}
}

// parseRows splits a run into header and data rows. When the run has a
// separator, its first row is the header; every other non-separator row is
// data, including stray rows sitting between the header and the separator.
func parseRows(lines []string, hasSeparator bool) ([]string, [][]string, int) {
	var headers []string
	rows := make([][]string, 0, len(lines))
	columns := 0

	for i, line := range lines {
		if separatorPattern.MatchString(line) {
			continue
		}

		cells := parseRow(line)
		if len(cells) == 0 {
			continue
		}
		if len(cells) > columns {
			columns = len(cells)
		}

		if hasSeparator && i == 0 {
			headers = cells
		} else {
			rows = append(rows, cells)
		}
	}

	return headers, rows, columns
}

// parseRow strips the outer pipes of a row and returns its trimmed cells
func parseRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 || trimmed[0] != '|' || trimmed[len(trimmed)-1] != '|' {
		return nil
	}

	cells := strings.Split(trimmed[1:len(trimmed)-1], "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// DetectorRegistry holds registered detectors
type DetectorRegistry struct {
	detectors map[string]Detector
}

// NewRegistry creates a new detector registry
func NewRegistry() *DetectorRegistry {
	return &DetectorRegistry{
		detectors: make(map[string]Detector),
	}
}

// Register registers a detector
func (r *DetectorRegistry) Register(detector Detector) {
	r.detectors[detector.Name()] = detector
}

// Get retrieves a detector by name
func (r *DetectorRegistry) Get(name string) Detector {
	return r.detectors[name]
}

// List returns all registered detector names, sorted
func (r *DetectorRegistry) List() []string {
	names := make([]string, 0, len(r.detectors))
	for name := range r.detectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterDetector registers a detector globally
func RegisterDetector(detector Detector) {
	globalRegistry.Register(detector)
}

// GetDetector retrieves a detector by name
func GetDetector(name string) Detector {
	return globalRegistry.Get(name)
}

// ListDetectors returns all registered detector names
func ListDetectors() []string {
	return globalRegistry.List()
}

func init() {
	// Register default detectors
	RegisterDetector(NewPipeDetector())
}

// DetectFragments finds table fragments in one page of markdown using the
// pipe detector.
func DetectFragments(text string) []Fragment {
	return defaultDetector.DetectFragments(text)
}

var defaultDetector = NewPipeDetector()
