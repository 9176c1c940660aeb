package extract

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// readMarkdown returns one entry per block: headings, paragraphs, list
// items, table rows and code lines. Markdown images become image markers
// followed by their alt text.
func (e *Extractor) readMarkdown(src []byte) []string {
	doc := e.md.Parser().Parse(text.NewReader(src))

	var out []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
			var b strings.Builder
			writeInline(&b, v, src)
			out = append(out, b.String())
			return ast.WalkSkipChildren, nil
		case *east.TableHeader, *east.TableRow:
			var cells []string
			for c := v.FirstChild(); c != nil; c = c.NextSibling() {
				var b strings.Builder
				writeInline(&b, c, src)
				cells = append(cells, strings.TrimSpace(b.String()))
			}
			out = append(out, strings.Join(cells, " | "))
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			lines := v.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				out = append(out, string(seg.Value(src)))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return out
}

// writeInline appends the text of n's inline children to b. Soft and hard
// line breaks are kept so that each source line stays a paragraph.
func writeInline(b *strings.Builder, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.Image:
			b.WriteString(imageMarker)
			writeInline(b, v, src)
		case *ast.AutoLink:
			b.Write(v.Label(src))
		case *ast.RawHTML:
			for i := 0; i < v.Segments.Len(); i++ {
				seg := v.Segments.At(i)
				b.Write(seg.Value(src))
			}
		default:
			writeInline(b, c, src)
		}
	}
}
