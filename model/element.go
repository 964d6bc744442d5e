package model

import (
	"strconv"
	"strings"
)

// BlockKind represents the type of a content block
type BlockKind int

const (
	BlockKindUnknown BlockKind = iota
	BlockKindText
	BlockKindHeading
	BlockKindImage
	BlockKindTable
	BlockKindList
	BlockKindCode
	BlockKindQuote
	BlockKindMarkdown
)

func (k BlockKind) String() string {
	switch k {
	case BlockKindText:
		return "text"
	case BlockKindHeading:
		return "heading"
	case BlockKindImage:
		return "image"
	case BlockKindTable:
		return "table"
	case BlockKindList:
		return "list"
	case BlockKindCode:
		return "code"
	case BlockKindQuote:
		return "quote"
	case BlockKindMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// parseBlockKind is the inverse of BlockKind.String
func parseBlockKind(s string) BlockKind {
	for k := BlockKindText; k <= BlockKindMarkdown; k++ {
		if k.String() == s {
			return k
		}
	}
	return BlockKindUnknown
}

// Block is the interface for all page content
type Block interface {
	Kind() BlockKind
	// ToMarkdown renders the block. The result is newline terminated unless
	// the block is empty raw markdown.
	ToMarkdown() string
}

// Text represents a run of plain text
type Text struct {
	Text string
}

func (t *Text) Kind() BlockKind    { return BlockKindText }
func (t *Text) ToMarkdown() string { return t.Text + "\n" }

// Heading represents a heading
type Heading struct {
	Level int // 1-6
	Text  string
}

func (h *Heading) Kind() BlockKind { return BlockKindHeading }

// ToMarkdown renders an ATX heading. Out of range levels are clamped.
func (h *Heading) ToMarkdown() string {
	level := h.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + h.Text + "\n"
}

// ImageRef places an image in the page flow
type ImageRef struct {
	Image *Image
}

func (i *ImageRef) Kind() BlockKind { return BlockKindImage }

// ToMarkdown renders the image link, followed by its description or alt text
// in italics when one is known.
func (i *ImageRef) ToMarkdown() string {
	if i.Image == nil {
		return ""
	}
	id := i.Image.ID
	if text := i.Image.DisplayText(); text != "" {
		return "![" + id + "](" + id + ")\n\n*" + text + "*\n"
	}
	return "![" + id + "](" + id + ")\n"
}

// List represents an ordered or unordered list
type List struct {
	Ordered bool
	Items   []string
}

func (l *List) Kind() BlockKind { return BlockKindList }

func (l *List) ToMarkdown() string {
	var sb strings.Builder
	for i, item := range l.Items {
		if l.Ordered {
			sb.WriteString(strconv.Itoa(i + 1))
			sb.WriteString(". ")
		} else {
			sb.WriteString("- ")
		}
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Code represents a fenced code block
type Code struct {
	Language string // empty when unknown
	Body     string
}

func (c *Code) Kind() BlockKind { return BlockKindCode }

func (c *Code) ToMarkdown() string {
	return "```" + c.Language + "\n" + c.Body + "\n```\n"
}

// Quote represents a block quote
type Quote struct {
	Text string
}

func (q *Quote) Kind() BlockKind { return BlockKindQuote }

// ToMarkdown prefixes every line with "> ".
func (q *Quote) ToMarkdown() string {
	lines := splitLines(q.Text)
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n") + "\n"
}

// RawMarkdown holds content that is already formatted as markdown
type RawMarkdown struct {
	Markdown string
}

func (r *RawMarkdown) Kind() BlockKind    { return BlockKindMarkdown }
func (r *RawMarkdown) ToMarkdown() string { return r.Markdown }

// splitLines splits s on newlines, dropping a single trailing newline and any
// carriage return before a newline. An empty string has no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
