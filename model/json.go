package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownBlockType is returned when decoding a block whose type tag is
	// not one of the built-in kinds.
	ErrUnknownBlockType = errors.New("unknown block type")
	// ErrNilPage is returned when a document's page list holds null
	ErrNilPage = errors.New("nil page")
)

// blockJSON is the tagged envelope every block is serialized into
type blockJSON struct {
	Type     string     `json:"type"`
	Text     string     `json:"text,omitempty"`
	Level    int        `json:"level,omitempty"`
	Image    *Image     `json:"image,omitempty"`
	Headers  []string   `json:"headers,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
	Ordered  bool       `json:"ordered,omitempty"`
	Items    []string   `json:"items,omitempty"`
	Language string     `json:"language,omitempty"`
	Body     string     `json:"body,omitempty"`
}

type pageJSON struct {
	Number        uint32      `json:"page_number"`
	Content       []blockJSON `json:"content"`
	RenderedImage *Image      `json:"rendered_image,omitempty"`
}

type documentJSON struct {
	Title    string            `json:"title,omitempty"`
	Pages    []*Page           `json:"pages"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// MarshalBlock encodes a single block in its tagged form
func MarshalBlock(block Block) ([]byte, error) {
	env, err := toEnvelope(block)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// UnmarshalBlock decodes a block produced by MarshalBlock
func UnmarshalBlock(data []byte) (Block, error) {
	var env blockJSON
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding block: %w", err)
	}
	return fromEnvelope(env)
}

func toEnvelope(block Block) (blockJSON, error) {
	env := blockJSON{Type: block.Kind().String()}
	switch b := block.(type) {
	case *Text:
		env.Text = b.Text
	case *Heading:
		env.Level = b.Level
		env.Text = b.Text
	case *ImageRef:
		env.Image = b.Image
	case *Table:
		env.Headers = b.Headers
		env.Rows = b.Rows
	case *List:
		env.Ordered = b.Ordered
		env.Items = b.Items
	case *Code:
		env.Language = b.Language
		env.Body = b.Body
	case *Quote:
		env.Text = b.Text
	case *RawMarkdown:
		env.Text = b.Markdown
	default:
		return blockJSON{}, fmt.Errorf("%w: %T", ErrUnknownBlockType, block)
	}
	return env, nil
}

func fromEnvelope(env blockJSON) (Block, error) {
	switch parseBlockKind(env.Type) {
	case BlockKindText:
		return &Text{Text: env.Text}, nil
	case BlockKindHeading:
		return &Heading{Level: env.Level, Text: env.Text}, nil
	case BlockKindImage:
		return &ImageRef{Image: env.Image}, nil
	case BlockKindTable:
		return &Table{Headers: env.Headers, Rows: env.Rows}, nil
	case BlockKindList:
		return &List{Ordered: env.Ordered, Items: env.Items}, nil
	case BlockKindCode:
		return &Code{Language: env.Language, Body: env.Body}, nil
	case BlockKindQuote:
		return &Quote{Text: env.Text}, nil
	case BlockKindMarkdown:
		return &RawMarkdown{Markdown: env.Text}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockType, env.Type)
	}
}

// MarshalJSON implements json.Marshaler
func (p *Page) MarshalJSON() ([]byte, error) {
	pj := pageJSON{
		Number:        p.Number,
		Content:       make([]blockJSON, 0, len(p.Blocks)),
		RenderedImage: p.RenderedImage,
	}
	for i, block := range p.Blocks {
		env, err := toEnvelope(block)
		if err != nil {
			return nil, fmt.Errorf("page %d block %d: %w", p.Number, i, err)
		}
		pj.Content = append(pj.Content, env)
	}
	return json.Marshal(pj)
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Page) UnmarshalJSON(data []byte) error {
	var pj pageJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}
	blocks := make([]Block, 0, len(pj.Content))
	for i, env := range pj.Content {
		block, err := fromEnvelope(env)
		if err != nil {
			return fmt.Errorf("page %d block %d: %w", pj.Number, i, err)
		}
		blocks = append(blocks, block)
	}
	p.Number = pj.Number
	p.Blocks = blocks
	p.RenderedImage = pj.RenderedImage
	return nil
}

// MarshalJSON implements json.Marshaler
func (d *Document) MarshalJSON() ([]byte, error) {
	pages := d.Pages
	if pages == nil {
		pages = []*Page{}
	}
	return json.Marshal(documentJSON{
		Title:    d.Title,
		Pages:    pages,
		Metadata: d.Metadata,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Document) UnmarshalJSON(data []byte) error {
	var dj documentJSON
	if err := json.Unmarshal(data, &dj); err != nil {
		return err
	}
	for i, page := range dj.Pages {
		if page == nil {
			return fmt.Errorf("page %d: %w", i+1, ErrNilPage)
		}
	}
	d.Title = dj.Title
	d.Pages = dj.Pages
	if d.Pages == nil {
		d.Pages = make([]*Page, 0)
	}
	d.Metadata = dj.Metadata
	if d.Metadata == nil {
		d.Metadata = make(map[string]string)
	}
	return nil
}
