// Package format provides page file format detection for the tablestitch
// library.
package format

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"regexp"
	"strings"
)

// Format represents a supported page file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// JSON indicates pages encoded as JSON.
	JSON
	// YAML indicates pages encoded as YAML.
	YAML
	// Markdown indicates a rendered document, pages split on "## Page N".
	Markdown
	// HTML indicates HTML rendered from markdown. It is only written, never
	// read.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	case Markdown:
		return "Markdown"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case JSON:
		return ".json"
	case YAML:
		return ".yaml"
	case Markdown:
		return ".md"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Parse maps a format name as given on a command line ("json", "yml",
// "md", ...) to a Format. The second result is false for unknown names.
func Parse(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, true
	case "yaml", "yml":
		return YAML, true
	case "markdown", "md":
		return Markdown, true
	case "html", "htm":
		return HTML, true
	default:
		return Unknown, false
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".md", ".markdown", ".txt":
		return Markdown
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}

	// yamlKeyPattern matches the first line of a YAML page file
	yamlKeyPattern = regexp.MustCompile(`^(- )?(page|text|title|metadata|pages):(\s|$)`)
)

// DetectFromContent inspects decoded UTF-8 content to determine the format.
// Anything that is neither JSON nor recognizably a YAML page file is
// treated as Markdown. Returns Unknown only for blank input.
func DetectFromContent(data []byte) Format {
	data = bytes.TrimPrefix(data, utf8BOM)

	lines := leadingLines(data, 2)
	if len(lines) == 0 {
		return Unknown
	}

	first := lines[0]
	if (first[0] == '{' || first[0] == '[') && looksLikeJSON(data, first) {
		return JSON
	}

	// A rendered document without a title opens with a page separator,
	// which looks like a YAML document marker
	if first == "---" {
		if len(lines) > 1 && strings.HasPrefix(lines[1], "## Page ") {
			return Markdown
		}
		return YAML
	}

	if yamlKeyPattern.MatchString(first) {
		return YAML
	}

	return Markdown
}

// looksLikeJSON tells a JSON document from markdown that opens with a
// bracket, such as a link or "[TOC]". Invalid JSON still counts when its first
// line opens an object or an array of objects or strings, so that truncated
// files fail to decode instead of passing as text.
func looksLikeJSON(data []byte, first string) bool {
	if json.Valid(bytes.TrimSpace(data)) {
		return true
	}
	rest := strings.TrimLeft(first[1:], " \t")
	if rest == "" {
		return true
	}
	switch first[0] {
	case '{':
		return rest[0] == '"' || rest[0] == '}'
	default:
		return rest[0] == '{' || rest[0] == '"' || rest[0] == ']'
	}
}

// leadingLines returns up to n non-blank lines from the start of data,
// trimmed of surrounding whitespace.
func leadingLines(data []byte, n int) []string {
	var lines []string
	for len(data) > 0 && len(lines) < n {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		if trimmed := strings.TrimSpace(string(line)); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
