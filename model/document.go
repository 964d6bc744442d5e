package model

import (
	"strconv"
	"strings"
)

// Document represents a complete converted document
type Document struct {
	Title    string // empty when the source has no title
	Pages    []*Page
	Metadata map[string]string
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages:    make([]*Page, 0),
		Metadata: make(map[string]string),
	}
}

// FromPage creates a document holding a single page
func FromPage(page *Page) *Document {
	doc := NewDocument()
	doc.AddPage(page)
	return doc
}

// AddPage appends a page. The page keeps the number its converter gave it.
func (d *Document) AddPage(page *Page) {
	d.Pages = append(d.Pages, page)
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Images returns all images referenced from all pages
func (d *Document) Images() []*Image {
	var images []*Image
	for _, page := range d.Pages {
		images = append(images, page.Images()...)
	}
	return images
}

// ToMarkdown renders the whole document
func (d *Document) ToMarkdown() string {
	var sb strings.Builder

	if d.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(d.Title)
		sb.WriteString("\n\n")
	}

	for _, page := range d.Pages {
		if page == nil {
			continue
		}
		if len(d.Pages) > 1 {
			sb.WriteString(PageSeparator(page.Number))
		}
		sb.WriteString(page.ToMarkdown())
	}

	return sb.String()
}

// PageSeparator returns the text placed before each page of a multi-page
// document
func PageSeparator(number uint32) string {
	return "\n---\n## Page " + strconv.FormatUint(uint64(number), 10) + "\n\n"
}

// TextOnly returns a copy of the document with images replaced by text
func (d *Document) TextOnly() *Document {
	nd := d.cloneShell()
	for _, page := range d.Pages {
		nd.AddPage(page.TextOnly())
	}
	return nd
}

// Clone returns a deep copy of the document
func (d *Document) Clone() *Document {
	nd := d.cloneShell()
	for _, page := range d.Pages {
		nd.AddPage(page.Clone())
	}
	return nd
}

// cloneShell copies everything except the pages
func (d *Document) cloneShell() *Document {
	nd := NewDocument()
	nd.Title = d.Title
	for k, v := range d.Metadata {
		nd.Metadata[k] = v
	}
	return nd
}
