package tables

import (
	"log/slog"
	"strings"
)

// PageContent is the rendered markdown of one page
type PageContent struct {
	Number uint32 `json:"page" yaml:"page"`
	Text   string `json:"text" yaml:"text"`
}

// MergedPage is a page after the sweep
type MergedPage struct {
	Number uint32 `json:"page" yaml:"page"`
	Text   string `json:"text" yaml:"text"`
	// MergedFromNext is set when rows from the following page were pulled
	// into this page
	MergedFromNext bool `json:"merged_from_next" yaml:"merged_from_next"`
	// MergedIntoPrevious is set when this page's leading table was moved to
	// an earlier page
	MergedIntoPrevious bool `json:"merged_into_previous" yaml:"merged_into_previous"`
}

// PageDecision records one comparison made during a sweep
type PageDecision struct {
	// Index and NextIndex are the positions of the compared pages in the
	// input. NextIndex is Index+1 unless the pages between were emptied by
	// earlier merges.
	Index     int
	NextIndex int
	// Page and NextPage are the page numbers being compared
	Page     uint32
	NextPage uint32
	Decision Decision
	// Last is the trailing fragment of Page, First the leading fragment of
	// NextPage
	Last  Fragment
	First Fragment
}

// Stats summarizes a sweep
type Stats struct {
	Comparisons int // fragment pairs compared
	Merges      int // pairs merged
	RowsMoved   int // data rows moved to an earlier page
}

// Option configures a PageMerger
type Option func(*PageMerger)

// WithLogger sets the logger that receives one debug record per comparison
func WithLogger(logger *slog.Logger) Option {
	return func(m *PageMerger) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDecisionHook registers a function called after every comparison
func WithDecisionHook(hook func(PageDecision)) Option {
	return func(m *PageMerger) {
		m.onDecision = hook
	}
}

// WithDetector replaces the fragment detector
func WithDetector(detector Detector) Option {
	return func(m *PageMerger) {
		if detector != nil {
			m.detector = detector
		}
	}
}

// PageMerger merges tables across adjacent pages. It keeps no state between
// calls to Merge and may be shared.
type PageMerger struct {
	detector   Detector
	logger     *slog.Logger
	onDecision func(PageDecision)
}

// NewPageMerger creates a merger using the pipe detector and a logger that
// discards everything
func NewPageMerger(opts ...Option) *PageMerger {
	m := &PageMerger{
		detector: defaultDetector,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge runs the sweep over pages and returns the rewritten pages, in the
// same order, together with statistics. The input is not modified.
func (m *PageMerger) Merge(pages []PageContent) ([]MergedPage, Stats) {
	var stats Stats
	if len(pages) == 0 {
		return []MergedPage{}, stats
	}

	results := make([]MergedPage, len(pages))
	for i, p := range pages {
		results[i] = MergedPage{Number: p.Number, Text: p.Text}
	}

	// Fragments are re-detected on every visit because a merge rewrites
	// page i. Only an unsuccessful comparison moves the cursor forward.
	for i := 0; i < len(results)-1; {
		if m.mergePair(results, i, partner(results, i), &stats) {
			continue
		}
		i++
	}

	return results, stats
}

// partner returns the page whose leading table may continue page i: page
// i+1, or the first page after it when the pages in between were emptied by
// merges earlier in this sweep. A page left blank by a merge holds nothing
// that could separate two halves of a table. Pages that were blank from the
// start still count as content boundaries.
func partner(results []MergedPage, i int) int {
	j := i + 1
	for j < len(results)-1 && results[j].MergedIntoPrevious && isBlank(results[j].Text) {
		j++
	}
	return j
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// mergePair compares the last fragment of page i with the first fragment of
// page j and splices them together when they belong to one table.
func (m *PageMerger) mergePair(results []MergedPage, i, j int, stats *Stats) bool {
	current, next := &results[i], &results[j]

	currentFragments := m.detector.DetectFragments(current.Text)
	nextFragments := m.detector.DetectFragments(next.Text)
	if len(currentFragments) == 0 || len(nextFragments) == 0 {
		return false
	}

	last := currentFragments[len(currentFragments)-1]
	first := nextFragments[0]
	decision := Explain(last, first)

	stats.Comparisons++
	m.logger.Debug("compared page boundary",
		"page", current.Number,
		"next_page", next.Number,
		"merge", decision.Merge,
		"reason", decision.Reason.String(),
		"last_columns", last.ColumnCount,
		"first_columns", first.ColumnCount)

	if m.onDecision != nil {
		m.onDecision(PageDecision{
			Index:     i,
			NextIndex: j,
			Page:      current.Number,
			NextPage:  next.Number,
			Decision:  decision,
			Last:      last,
			First:     first,
		})
	}

	// Each merge must shrink page j, otherwise the retry never ends
	if !decision.Merge || first.Len() <= 0 {
		return false
	}

	merged := MergeFragments(last, first)

	current.Text = current.Text[:last.StartPos] + merged.Markdown() + current.Text[last.EndPos:]
	current.MergedFromNext = true

	next.Text = next.Text[:first.StartPos] + next.Text[first.EndPos:]
	next.MergedIntoPrevious = true

	stats.Merges++
	stats.RowsMoved += first.RowCount()
	m.logger.Debug("merged table across pages",
		"page", current.Number,
		"next_page", next.Number,
		"rows_moved", first.RowCount(),
		"rows_total", len(merged.DataRows))

	return true
}

var defaultMerger = NewPageMerger()

// MergeAcrossPages merges tables split across adjacent pages. A table that
// spans several pages ends up entirely on the page where it starts; the
// pages it came from keep whatever followed it. Only the last table of a page
// and the first table of the following page are ever compared, and pages are
// never revisited once the sweep has passed them.
func MergeAcrossPages(pages []PageContent) []MergedPage {
	merged, _ := defaultMerger.Merge(pages)
	return merged
}
