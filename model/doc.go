// Package model provides the intermediate representation (IR) for converted
// document content.
//
// Every format converter produces these types, and every serializer reads
// them, making this package the shared vocabulary of the module.
//
// # Document Structure
//
// The [Document] type represents a complete document with a title, metadata
// and an ordered list of pages:
//
//	doc := model.NewDocument()
//	doc.Title = "Quarterly Report"
//	doc.AddPage(page)
//
// Each [Page] carries a page number and an ordered list of [Block] values.
// Page numbers come from the converter and are neither required to be unique
// nor contiguous.
//
// # Blocks
//
// All page content implements the [Block] interface. The concrete types are:
//
//   - [Text] - plain text
//   - [Heading] - headings (levels 1-6)
//   - [ImageRef] - a reference to an [Image]
//   - [Table] - header row plus data rows
//   - [List] - ordered or unordered lists
//   - [Code] - fenced code with an optional language
//   - [Quote] - block quotes
//   - [RawMarkdown] - markdown that is already formatted
//
// # Rendering
//
// ToMarkdown is defined on every level and is the only rendering contract
// into plain text:
//
//   - a block renders itself, always newline terminated
//   - a table without headers renders its rows only
//   - a page joins its blocks with a blank line
//   - a document prefixes a title and, for multi-page documents, a
//     "## Page N" separator before every page
//
// # Serialization
//
// Pages and documents marshal to JSON with every block wrapped in a tagged
// envelope ({"type": "table", ...}), so heterogeneous content round-trips
// through a single common form.
package model
