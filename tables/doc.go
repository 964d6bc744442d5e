// Package tables detects markdown tables that were split by a page break and
// stitches them back together.
//
// Converters emit one markdown text per logical page. When a table in the
// source runs over a page boundary (a PDF page break, a slide boundary), the
// result is two or more pipe tables: the head of the table at the end of one
// page and its continuation at the start of the next, sometimes with the
// header row repeated. This package recombines them.
//
// # Fragments
//
// [DetectFragments] scans one page of markdown and returns a [Fragment] for
// every maximal run of lines shaped like table rows:
//
//	fragments := tables.DetectFragments(pageText)
//	last := fragments[len(fragments)-1]
//	fmt.Println(last.ColumnCount, last.AtContentEnd)
//
// Fragments are throwaway analysis results. They are derived from text, carry
// byte offsets into that text, and are never stored in a document.
//
// # Merge Decisions
//
// [CanMerge] decides whether two fragments are one logical table. In order:
//
//  1. the first fragment must be the last content of its page
//  2. the second fragment must be the first content of the next page
//  3. column counts must agree (a zero count never blocks)
//  4. a headerless second fragment is a continuation
//  5. a second fragment with a header merges only if it repeats the first
//     fragment's header exactly
//
// [Explain] returns the same verdict together with the [Reason] behind it.
// When in doubt the engine does not merge: two pages left unmerged are
// visible to a reader, two unrelated tables fused together are not.
//
// # Page Sweep
//
// [MergeAcrossPages] walks the pages left to right, comparing the last
// fragment of each page with the first fragment of the next. A successful
// merge rewrites both pages and the same pair is examined again, so a table
// running over three or more pages is absorbed into the page where it
// starts. Pages are never revisited once the sweep has moved past them.
//
// [PageMerger] runs the same sweep with a logger, a decision hook and
// statistics:
//
//	merger := tables.NewPageMerger(tables.WithLogger(logger))
//	merged, stats := merger.Merge(pages)
//
// # Detectors
//
// Fragment detection is performed by types implementing the [Detector]
// interface. The package registers a [PipeDetector] under the name "pipe".
package tables
