package pagefile

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/tsawler/tablestitch/format"
	"github.com/tsawler/tablestitch/internal/yamlutil"
	"github.com/tsawler/tablestitch/model"
)

type encodeOptions struct {
	separators bool
}

// EncodeOption configures Encode
type EncodeOption func(*encodeOptions)

// WithoutSeparators leaves the "## Page N" separators out of Markdown and
// HTML output. The result can no longer be split back into pages.
func WithoutSeparators() EncodeOption {
	return func(o *encodeOptions) {
		o.separators = false
	}
}

// Encode writes file in the given format. Markdown output always carries a
// separator before every page, even a single one, so that Decode restores
// the same pages. HTML is the Markdown output rendered as GitHub-flavored
// markdown.
func Encode(w io.Writer, file *File, f format.Format, opts ...EncodeOption) error {
	o := encodeOptions{separators: true}
	for _, opt := range opts {
		opt(&o)
	}

	switch f {
	case format.JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(file); err != nil {
			return fmt.Errorf("pagefile: json: %w", err)
		}
		return nil

	case format.YAML:
		out, err := yamlutil.Marshal(file)
		if err != nil {
			return fmt.Errorf("pagefile: %w", err)
		}
		_, err = w.Write(out)
		return err

	case format.Markdown:
		_, err := io.WriteString(w, file.Markdown(o.separators))
		return err

	case format.HTML:
		md := goldmark.New(goldmark.WithExtensions(extension.GFM))
		if err := md.Convert([]byte(file.Markdown(o.separators)), w); err != nil {
			return fmt.Errorf("pagefile: html: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// Markdown renders the file as one document: title, preface, then every
// page, each preceded by a separator when separators is true.
func (f *File) Markdown(separators bool) string {
	var sb strings.Builder

	if f.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(f.Title)
		sb.WriteString("\n\n")
	}
	sb.WriteString(f.Preface)

	for _, page := range f.Pages {
		if separators {
			sb.WriteString(model.PageSeparator(page.Number))
		}
		sb.WriteString(page.Text)
	}

	return sb.String()
}
