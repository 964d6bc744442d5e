// Package pagefile reads and writes the page files consumed by the
// tablestitch command: one markdown text per page, stored as JSON, YAML or
// a rendered markdown document.
package pagefile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/tablestitch/format"
	"github.com/tsawler/tablestitch/internal/yamlutil"
	"github.com/tsawler/tablestitch/tables"
)

// MaxInputSize limits the size of a page file (default 64MB).
var MaxInputSize int64 = 64 << 20

var (
	ErrUnsupportedFormat = errors.New("pagefile: unsupported format")
	ErrEmptyInput        = errors.New("pagefile: no pages in input")
	ErrInputTooLarge     = errors.New("pagefile: input exceeds maximum size")
)

// File is the content of a page file.
type File struct {
	Title    string            `json:"title,omitempty" yaml:"title,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// Preface is text found before the first page of a rendered document
	Preface string               `json:"preface,omitempty" yaml:"preface,omitempty"`
	Pages   []tables.PageContent `json:"pages" yaml:"pages"`
}

// Load reads the page file at path. The format comes from the file
// extension, or from the content when the extension is not recognized.
func Load(ctx context.Context, path string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pagefile: %w", err)
	}
	defer f.Close()

	file, err := Decode(&ctxReader{ctx: ctx, r: f}, format.Detect(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode reads a page file in the given format. format.Unknown (or HTML,
// which is never read) selects the format from the content. Input may be
// UTF-8, with or without a byte order mark, or UTF-16 with one.
func Decode(r io.Reader, f format.Format) (*File, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("pagefile: read: %w", err)
	}
	if int64(len(raw)) > MaxInputSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, MaxInputSize)
	}

	data, err := decodeText(raw)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	if f == format.Unknown || f == format.HTML {
		f = format.DetectFromContent(data)
	}

	var file *File
	switch f {
	case format.JSON:
		file, err = decodeJSON(data)
	case format.YAML:
		file, err = decodeYAML(data)
	case format.Markdown:
		file = SplitMarkdown(string(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, err
	}

	if len(file.Pages) == 0 {
		return nil, ErrEmptyInput
	}
	return file, nil
}

// decodeText converts raw input to UTF-8, honoring a byte order mark.
// Invalid UTF-8 sequences are replaced rather than rejected.
func decodeText(raw []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return nil, fmt.Errorf("pagefile: decode text: %w", err)
	}
	return data, nil
}

// decodeJSON accepts either a bare array of pages or a File object.
func decodeJSON(data []byte) (*File, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var pages []tables.PageContent
		if err := json.Unmarshal(trimmed, &pages); err != nil {
			return nil, fmt.Errorf("pagefile: json: %w", err)
		}
		return &File{Pages: pages}, nil
	}

	var file File
	if err := json.Unmarshal(trimmed, &file); err != nil {
		return nil, fmt.Errorf("pagefile: json: %w", err)
	}
	return &file, nil
}

// decodeYAML accepts either a sequence of pages or a File mapping.
func decodeYAML(data []byte) (*File, error) {
	var probe any
	if err := yamlutil.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("pagefile: %w", err)
	}

	if _, ok := probe.([]any); ok {
		var pages []tables.PageContent
		if err := yamlutil.UnmarshalStrict(data, &pages); err != nil {
			return nil, fmt.Errorf("pagefile: %w", err)
		}
		return &File{Pages: pages}, nil
	}

	var file File
	if err := yamlutil.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("pagefile: %w", err)
	}
	return &file, nil
}

// ctxReader stops reading once its context is done
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
