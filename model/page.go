package model

import "strings"

// Page represents a single page of converted content
type Page struct {
	Number uint32  // Page number as assigned by the converter
	Blocks []Block // Ordered content

	// Optional rendering of the whole page (scanned documents, slides)
	RenderedImage *Image
}

// NewPage creates an empty page
func NewPage(number uint32) *Page {
	return &Page{
		Number: number,
		Blocks: make([]Block, 0),
	}
}

// AddBlock appends a block to the page
func (p *Page) AddBlock(block Block) {
	p.Blocks = append(p.Blocks, block)
}

// Images returns the images referenced by the page content
func (p *Page) Images() []*Image {
	var images []*Image
	for _, block := range p.Blocks {
		if ref, ok := block.(*ImageRef); ok && ref.Image != nil {
			images = append(images, ref.Image)
		}
	}
	return images
}

// ToMarkdown renders every block, separated by a blank line
func (p *Page) ToMarkdown() string {
	parts := make([]string, len(p.Blocks))
	for i, block := range p.Blocks {
		parts[i] = block.ToMarkdown()
	}
	return strings.Join(parts, "\n")
}

// TextOnly returns a copy of the page with every image replaced by a text
// block naming it
func (p *Page) TextOnly() *Page {
	np := NewPage(p.Number)
	for _, block := range p.Blocks {
		ref, ok := block.(*ImageRef)
		if !ok {
			np.AddBlock(cloneBlock(block))
			continue
		}
		label := ""
		if ref.Image != nil {
			label = ref.Image.DisplayText()
			if label == "" {
				label = ref.Image.ID
			}
		}
		np.AddBlock(&Text{Text: "[Image: " + label + "]"})
	}
	return np
}

// Clone returns a deep copy of the page
func (p *Page) Clone() *Page {
	np := &Page{
		Number:        p.Number,
		Blocks:        make([]Block, len(p.Blocks)),
		RenderedImage: p.RenderedImage.clone(),
	}
	for i, block := range p.Blocks {
		np.Blocks[i] = cloneBlock(block)
	}
	return np
}

// cloneBlock deep copies the built-in block types. Unknown implementations
// are shared.
func cloneBlock(block Block) Block {
	switch b := block.(type) {
	case *Text:
		c := *b
		return &c
	case *Heading:
		c := *b
		return &c
	case *ImageRef:
		return &ImageRef{Image: b.Image.clone()}
	case *Table:
		c := &Table{Headers: append([]string(nil), b.Headers...)}
		if b.Rows != nil {
			c.Rows = make([][]string, len(b.Rows))
			for i, row := range b.Rows {
				c.Rows[i] = append([]string(nil), row...)
			}
		}
		return c
	case *List:
		return &List{Ordered: b.Ordered, Items: append([]string(nil), b.Items...)}
	case *Code:
		c := *b
		return &c
	case *Quote:
		c := *b
		return &c
	case *RawMarkdown:
		c := *b
		return &c
	default:
		return block
	}
}
