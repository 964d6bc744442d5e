package pagefile

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/tablestitch/tables"
)

// separatorPattern matches the page separator written by
// model.PageSeparator, with either line ending
var separatorPattern = regexp.MustCompile(`\r?\n---\r?\n## Page (\d{1,9})\r?\n\r?\n`)

// SplitMarkdown splits a rendered document back into pages. It reverses
// model.Document.ToMarkdown: a leading "# Title" line becomes the title and
// each "## Page N" separator starts page N. Text without separators is a
// single page numbered 1, title included.
func SplitMarkdown(text string) *File {
	matches := separatorPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return &File{Pages: []tables.PageContent{{Number: 1, Text: text}}}
	}

	file := &File{}
	file.Title, file.Preface = splitTitle(text[:matches[0][0]])

	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		// At most nine digits, so always fits
		number, _ := strconv.ParseUint(text[m[2]:m[3]], 10, 32)
		file.Pages = append(file.Pages, tables.PageContent{
			Number: uint32(number),
			Text:   text[m[1]:end],
		})
	}

	return file
}

// splitTitle separates a "# Title" heading and the blank line after it from
// whatever else precedes the first page.
func splitTitle(prefix string) (string, string) {
	line, rest, _ := strings.Cut(prefix, "\n")
	line = strings.TrimSuffix(line, "\r")
	if !strings.HasPrefix(line, "# ") {
		return "", prefix
	}

	rest = strings.TrimPrefix(rest, "\r")
	rest = strings.TrimPrefix(rest, "\n")
	return strings.TrimPrefix(line, "# "), rest
}
