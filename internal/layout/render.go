package layout

import (
	"fmt"
	"html"
	"strings"

	"github.com/alnah/go-article/internal/assets"
	"github.com/alnah/go-article/internal/registry"
)

// BlockKind is the type of a renderable section.
type BlockKind int

// Block kinds. Values outside this set are skipped by the renderer.
const (
	BlockText BlockKind = iota
	BlockSubtitle
	BlockImage
)

// Block is one section of the article. For images, Content is the caption.
type Block struct {
	Kind    BlockKind
	Content string
}

// Document is the renderer input.
type Document struct {
	Title  string
	Blocks []Block
}

// ImageCount returns the number of image blocks.
func (d Document) ImageCount() int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind == BlockImage {
			n++
		}
	}
	return n
}

// captions returns all image captions in document order.
func (d Document) captions() []string {
	var out []string
	for _, b := range d.Blocks {
		if b.Kind == BlockImage {
			out = append(out, b.Content)
		}
	}
	return out
}

// Renderer turns documents into markup. It holds only immutable fragments
// and is safe for concurrent use.
type Renderer struct {
	header string
	footer string
}

// New creates a Renderer with header and footer fragments from loader.
func New(loader assets.FragmentLoader) (*Renderer, error) {
	header, err := loader.LoadFragment(assets.Header)
	if err != nil {
		return nil, fmt.Errorf("loading header fragment: %w", err)
	}
	footer, err := loader.LoadFragment(assets.Footer)
	if err != nil {
		return nil, fmt.Errorf("loading footer fragment: %w", err)
	}
	return &Renderer{
		header: strings.TrimSpace(header),
		footer: strings.TrimSpace(footer),
	}, nil
}

// Render returns the markup for doc laid out with tmpl.
// The variant used is tmpl.SelectVariant(doc.ImageCount()).
func (r *Renderer) Render(doc Document, tmpl registry.Template) string {
	return r.RenderVariant(doc, tmpl.Style, tmpl.SelectVariant(doc.ImageCount()))
}

// RenderVariant renders doc with an explicit style and variant.
func (r *Renderer) RenderVariant(doc Document, style string, variant registry.Variant) string {
	styles := stylesFor(style)

	var buf strings.Builder
	buf.WriteString(r.header)

	buf.WriteString(`<section class="article" style="`)
	buf.WriteString(containerFor(style))
	buf.WriteString(`">`)

	if doc.Title != "" {
		writeBlock(&buf, "h1", styles.title, doc.Title)
	}
	buf.WriteString(dividerBlock)

	st := newImageState(doc.captions())
	for _, b := range doc.Blocks {
		switch b.Kind {
		case BlockText:
			writeBlock(&buf, "p", styles.text, b.Content)
		case BlockSubtitle:
			writeBlock(&buf, "h2", styles.subtitle, b.Content)
		case BlockImage:
			writeImage(&buf, styles, variant, st)
		}
	}

	buf.WriteString(`</section>`)
	buf.WriteString(r.footer)
	return buf.String()
}

// imageState tracks the caption cursor and the image-asset index.
// The two counters move independently.
type imageState struct {
	captions []string
	cursor   int // next caption to consume
	index    int // image-asset index, starts at 1
}

func newImageState(captions []string) *imageState {
	return &imageState{captions: captions, index: 1}
}

// nextCaption consumes one caption; past the end it yields "".
func (s *imageState) nextCaption() string {
	c := ""
	if s.cursor < len(s.captions) {
		c = s.captions[s.cursor]
	}
	s.cursor++
	return c
}

func writeImage(buf *strings.Builder, styles blockStyles, variant registry.Variant, st *imageState) {
	switch variant {
	case registry.DoubleImageWithCaption:
		left, right := st.nextCaption(), st.nextCaption()
		if left == "" {
			left = placeholderCaption(st.index)
		}
		if right == "" {
			right = placeholderCaption(st.index + 1)
		}
		leftURL := rotationImages[(st.index-1)%2]
		rightURL := rotationImages[st.index%2]
		st.index += 2

		buf.WriteString(`<section class="image-pair" style="display:flex;justify-content:space-between;margin:16px 0;">`)
		writeFigure(buf, leftURL, left, styles.caption)
		writeFigure(buf, rightURL, right, styles.caption)
		buf.WriteString(`</section>`)

	case registry.DoubleImageNoCaption:
		buf.WriteString(`<section class="image-gallery" style="display:flex;justify-content:space-between;margin:16px 0;">`)
		writeFigure(buf, decorativeLeft, "", "")
		writeFigure(buf, decorativeRight, "", "")
		buf.WriteString(`</section>`)

	default:
		buf.WriteString(`<section class="image-single" style="margin:16px 0;text-align:center;">`)
		buf.WriteString(`<img src="`)
		buf.WriteString(decorativeSolo)
		buf.WriteString(`" alt="" style="width:100%;display:block;border-radius:6px;"/>`)
		buf.WriteString(`</section>`)
	}
}

// writeFigure writes one half of a two-column image block.
// An empty caption writes no caption paragraph.
func writeFigure(buf *strings.Builder, src, caption, captionStyle string) {
	buf.WriteString(`<section style="width:49%;">`)
	buf.WriteString(`<img src="`)
	buf.WriteString(src)
	buf.WriteString(`" alt="`)
	buf.WriteString(html.EscapeString(caption))
	buf.WriteString(`" style="width:100%;display:block;border-radius:6px;"/>`)
	if caption != "" {
		writeBlock(buf, "p", captionStyle, caption)
	}
	buf.WriteString(`</section>`)
}

func writeBlock(buf *strings.Builder, tag, style, content string) {
	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(` style="`)
	buf.WriteString(style)
	buf.WriteString(`">`)
	buf.WriteString(html.EscapeString(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">")
}
