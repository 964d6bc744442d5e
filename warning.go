package tablestitch

import (
	"fmt"
	"strings"
)

// WarningKind classifies a non-fatal condition found while stitching
type WarningKind int

const (
	// WarningDuplicatePage: two input pages carry the same number
	WarningDuplicatePage WarningKind = iota
	// WarningRejectedBoundary: tables meet at a page boundary but were kept
	// apart because their columns or headers differ
	WarningRejectedBoundary
	// WarningEmptiedPage: merging moved everything off a page
	WarningEmptiedPage
)

func (k WarningKind) String() string {
	switch k {
	case WarningDuplicatePage:
		return "duplicate page"
	case WarningRejectedBoundary:
		return "rejected boundary"
	case WarningEmptiedPage:
		return "emptied page"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue reported next to a result
type Warning struct {
	Kind    WarningKind
	Page    uint32 // page number the warning refers to
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("page %d: %s: %s", w.Page, w.Kind, w.Message)
}

// FormatWarnings renders warnings one per line
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
