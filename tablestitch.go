// Package tablestitch provides a fluent API for merging markdown tables that
// a converter split across page boundaries.
//
// Basic usage:
//
//	doc, warnings, err := tablestitch.FromDocument(converted).Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tablestitch.FormatWarnings(warnings))
//	}
//
// With options:
//
//	md, _, err := tablestitch.FromDocument(converted).
//	    Pages(2, 3, 4).
//	    ExcludePageSeparators().
//	    ToMarkdown()
//
// For lower-level control, the tables package is also available.
package tablestitch

import (
	"errors"
	"fmt"

	"github.com/tsawler/tablestitch/model"
	"github.com/tsawler/tablestitch/tables"
)

var (
	// ErrNoDocument is returned when a Stitcher was created from a nil document
	ErrNoDocument = errors.New("no document")
	// ErrNoPages is returned when there is nothing to merge
	ErrNoPages = errors.New("no pages to process")
	// ErrUnknownDetector is returned when a detector name is not registered
	ErrUnknownDetector = errors.New("unknown table detector")
)

// FromDocument returns a Stitcher over a converted document. The document is
// never modified.
//
// Example:
//
//	doc, warnings, err := tablestitch.FromDocument(converted).Document()
func FromDocument(doc *model.Document) *Stitcher {
	s := &Stitcher{
		doc:     doc,
		options: defaultOptions(),
	}
	if doc == nil {
		s.err = ErrNoDocument
		return s
	}
	for i, page := range doc.Pages {
		if page == nil {
			s.err = fmt.Errorf("page %d: %w", i+1, model.ErrNilPage)
			break
		}
	}
	return s
}

// FromPages returns a Stitcher over already-rendered page texts.
//
// Example:
//
//	merged, _, err := tablestitch.FromPages(pages).Merged()
func FromPages(pages []tables.PageContent) *Stitcher {
	return &Stitcher{
		pages:   append([]tables.PageContent(nil), pages...),
		options: defaultOptions(),
	}
}

// PageTexts renders every page of doc to markdown, keeping page numbers.
// Nil pages are skipped.
func PageTexts(doc *model.Document) []tables.PageContent {
	if doc == nil {
		return nil
	}
	pages := make([]tables.PageContent, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		if page == nil {
			continue
		}
		pages = append(pages, tables.PageContent{Number: page.Number, Text: page.ToMarkdown()})
	}
	return pages
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil.
//
// Example:
//
//	pages := tablestitch.Must(pagefile.Load(ctx, "report.json"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustValue is a helper that wraps a terminal operation such as Document()
// or ToMarkdown() and panics if the error is non-nil. It discards warnings.
//
// Example:
//
//	md := tablestitch.MustValue(tablestitch.FromDocument(doc).ToMarkdown())
func MustValue[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
