package tablestitch

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/tsawler/tablestitch/model"
	"github.com/tsawler/tablestitch/tables"
)

// Stitcher provides a fluent interface for merging split tables.
// Each configuration method returns a new Stitcher instance, making it
// safe for concurrent use and allowing method chaining.
type Stitcher struct {
	// Source: exactly one of doc and pages is used
	doc   *model.Document
	pages []tables.PageContent

	options stitchOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Stitcher with a deep copy of options.
// The source is shared; it is never modified.
func (s *Stitcher) clone() *Stitcher {
	return &Stitcher{
		doc:     s.doc,
		pages:   s.pages,
		options: s.options.clone(),
		err:     s.err,
	}
}

// ============================================================================
// Configuration Methods (return new Stitcher instance)
// ============================================================================

// Pages restricts merging to the pages at the given positions (1-indexed,
// in input order, regardless of page numbers). Multiple calls are
// cumulative. Pages that are not selected are left out of the result, and
// tables are only merged between selected pages that are next to each other
// in the input.
//
// Example:
//
//	doc, _, err := tablestitch.FromDocument(d).Pages(3, 4, 5).Document()
func (s *Stitcher) Pages(pages ...int) *Stitcher {
	newS := s.clone()
	newS.options.pages = append(newS.options.pages, pages...)
	return newS
}

// PageRange selects a range of page positions (1-indexed, inclusive).
//
// Example:
//
//	doc, _, err := tablestitch.FromDocument(d).PageRange(5, 10).Document()
func (s *Stitcher) PageRange(start, end int) *Stitcher {
	newS := s.clone()
	for i := start; i <= end; i++ {
		newS.options.pages = append(newS.options.pages, i)
	}
	return newS
}

// WithLogger sets the logger receiving merge decisions (debug) and a summary
// of each run (info). A nil logger is ignored.
func (s *Stitcher) WithLogger(logger *slog.Logger) *Stitcher {
	newS := s.clone()
	if logger != nil {
		newS.options.logger = logger
	}
	return newS
}

// WithDetector selects the registered table detector used to find
// fragments. An unknown name makes every terminal operation fail with
// ErrUnknownDetector.
//
// Example:
//
//	md, _, err := tablestitch.FromDocument(d).WithDetector("pipe").ToMarkdown()
func (s *Stitcher) WithDetector(name string) *Stitcher {
	newS := s.clone()
	detector := tables.GetDetector(name)
	if detector == nil {
		if newS.err == nil {
			newS.err = fmt.Errorf("%w: %q (registered: %s)", ErrUnknownDetector, name,
				strings.Join(tables.ListDetectors(), ", "))
		}
		return newS
	}
	newS.options.detector = detector
	return newS
}

// ExcludeTitle leaves the document title out of ToMarkdown output.
func (s *Stitcher) ExcludeTitle() *Stitcher {
	newS := s.clone()
	newS.options.excludeTitle = true
	return newS
}

// ExcludePageSeparators leaves the "## Page N" separators out of ToMarkdown
// output.
//
// Example:
//
//	md, _, err := tablestitch.FromDocument(d).ExcludePageSeparators().ToMarkdown()
func (s *Stitcher) ExcludePageSeparators() *Stitcher {
	newS := s.clone()
	newS.options.excludeSeparators = true
	return newS
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Merged runs the merge and returns the selected pages as rewritten text.
func (s *Stitcher) Merged() ([]tables.MergedPage, []Warning, error) {
	res, err := s.run()
	if err != nil {
		return nil, nil, err
	}
	return res.merged, res.warnings, nil
}

// Document runs the merge and returns a new document. Pages the merge did
// not touch keep their blocks; a rewritten page holds its new text as a
// single RawMarkdown block, or nothing when the merge emptied it.
//
// Example:
//
//	doc, warnings, err := tablestitch.FromDocument(converted).Document()
func (s *Stitcher) Document() (*model.Document, []Warning, error) {
	res, err := s.run()
	if err != nil {
		return nil, nil, err
	}

	var out *model.Document
	var source []*model.Page
	if s.doc != nil {
		full := s.doc.Clone()
		source = full.Pages
		out = full
		out.Pages = make([]*model.Page, 0, len(res.merged))
	} else {
		out = model.NewDocument()
	}

	for i, mp := range res.merged {
		var page *model.Page
		if source != nil {
			page = source[res.positions[i]]
		} else {
			page = model.NewPage(mp.Number)
			page.AddBlock(&model.RawMarkdown{Markdown: mp.Text})
		}

		if mp.MergedFromNext || mp.MergedIntoPrevious {
			page.Blocks = make([]model.Block, 0, 1)
			if !isBlank(mp.Text) {
				page.AddBlock(&model.RawMarkdown{Markdown: mp.Text})
			}
		}
		out.AddPage(page)
	}

	return out, res.warnings, nil
}

// ToMarkdown runs the merge and renders the resulting document.
//
// Example:
//
//	md, warnings, err := tablestitch.FromDocument(converted).ToMarkdown()
func (s *Stitcher) ToMarkdown() (string, []Warning, error) {
	doc, warnings, err := s.Document()
	if err != nil {
		return "", nil, err
	}

	var sb strings.Builder

	if doc.Title != "" && !s.options.excludeTitle {
		sb.WriteString("# ")
		sb.WriteString(doc.Title)
		sb.WriteString("\n\n")
	}

	for _, page := range doc.Pages {
		if len(doc.Pages) > 1 && !s.options.excludeSeparators {
			sb.WriteString(model.PageSeparator(page.Number))
		}
		sb.WriteString(page.ToMarkdown())
	}

	return sb.String(), warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// runResult holds the outcome of one merge run.
type runResult struct {
	positions []int // 0-indexed input position of each merged page
	merged    []tables.MergedPage
	stats     tables.Stats
	warnings  []Warning
}

// run selects pages, merges each contiguous run of them and collects
// warnings.
func (s *Stitcher) run() (*runResult, error) {
	if s.err != nil {
		return nil, s.err
	}

	all := s.pages
	if s.doc != nil {
		all = PageTexts(s.doc)
	}
	if len(all) == 0 {
		return nil, ErrNoPages
	}

	positions, err := resolvePages(len(all), s.options.pages)
	if err != nil {
		return nil, err
	}

	res := &runResult{positions: positions}
	res.warnings = duplicatePages(all, positions)

	merger := tables.NewPageMerger(
		tables.WithDetector(s.options.detector),
		tables.WithLogger(s.options.logger),
		tables.WithDecisionHook(func(d tables.PageDecision) {
			if w, ok := rejectedBoundary(d); ok {
				res.warnings = append(res.warnings, w)
			}
		}),
	)

	for _, run := range contiguousRuns(positions) {
		input := make([]tables.PageContent, len(run))
		for i, pos := range run {
			input[i] = all[pos]
		}

		merged, stats := merger.Merge(input)
		res.merged = append(res.merged, merged...)
		res.stats.Comparisons += stats.Comparisons
		res.stats.Merges += stats.Merges
		res.stats.RowsMoved += stats.RowsMoved
	}

	for _, mp := range res.merged {
		if mp.MergedIntoPrevious && isBlank(mp.Text) {
			res.warnings = append(res.warnings, Warning{
				Kind:    WarningEmptiedPage,
				Page:    mp.Number,
				Message: "all content was merged into an earlier page",
			})
		}
	}

	s.options.logger.Info("stitched pages",
		"detector", s.options.detector.Name(),
		"pages", len(res.merged),
		"comparisons", res.stats.Comparisons,
		"merges", res.stats.Merges,
		"rows_moved", res.stats.RowsMoved,
		"warnings", len(res.warnings))

	return res, nil
}

// resolvePages converts 1-indexed positions to 0-indexed and validates them.
// If no positions are given, every page is selected.
func resolvePages(pageCount int, requested []int) ([]int, error) {
	if len(requested) == 0 {
		positions := make([]int, pageCount)
		for i := range positions {
			positions[i] = i
		}
		return positions, nil
	}

	seen := make(map[int]bool)
	var positions []int
	for _, p := range requested {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p-1] {
			seen[p-1] = true
			positions = append(positions, p-1)
		}
	}

	sort.Ints(positions)
	return positions, nil
}

// contiguousRuns splits sorted positions into runs of consecutive values.
func contiguousRuns(positions []int) [][]int {
	var runs [][]int
	for i, pos := range positions {
		if i == 0 || pos != positions[i-1]+1 {
			runs = append(runs, nil)
		}
		runs[len(runs)-1] = append(runs[len(runs)-1], pos)
	}
	return runs
}

// duplicatePages reports page numbers used more than once among the selected
// pages.
func duplicatePages(all []tables.PageContent, positions []int) []Warning {
	var warnings []Warning
	seen := make(map[uint32]bool)
	for _, pos := range positions {
		number := all[pos].Number
		if seen[number] {
			warnings = append(warnings, Warning{
				Kind:    WarningDuplicatePage,
				Page:    number,
				Message: fmt.Sprintf("page number appears more than once (position %d)", pos+1),
			})
		}
		seen[number] = true
	}
	return warnings
}

// rejectedBoundary turns a refused merge into a warning when the refusal
// came from the table contents rather than from surrounding text.
func rejectedBoundary(d tables.PageDecision) (Warning, bool) {
	if d.Decision.Merge {
		return Warning{}, false
	}
	switch d.Decision.Reason {
	case tables.ReasonColumnMismatch:
		return Warning{
			Kind:    WarningRejectedBoundary,
			Page:    d.Page,
			Message: fmt.Sprintf("table continues on page %d with %d columns instead of %d", d.NextPage, d.First.ColumnCount, d.Last.ColumnCount),
		}, true
	case tables.ReasonHeaderMismatch:
		return Warning{
			Kind:    WarningRejectedBoundary,
			Page:    d.Page,
			Message: fmt.Sprintf("table on page %d starts with a different header", d.NextPage),
		}, true
	default:
		return Warning{}, false
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
