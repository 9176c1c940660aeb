package extract

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements start and end a line.
var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Section: true, atom.Article: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Li: true, atom.Blockquote: true, atom.Pre: true, atom.Tr: true,
	atom.Figcaption: true, atom.Figure: true, atom.Header: true, atom.Footer: true,
	atom.Dt: true, atom.Dd: true, atom.Caption: true,
}

// skippedElements are dropped with their content.
var skippedElements = map[atom.Atom]bool{
	atom.Head: true, atom.Script: true, atom.Style: true,
	atom.Noscript: true, atom.Template: true,
}

// readHTML returns the text of block elements in document order.
// Whitespace inside text nodes is collapsed as a browser would. <img>
// becomes an image marker followed by its alt text, <br> a line break.
func readHTML(src string) ([]string, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	var (
		lines []string
		buf   strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			lines = append(lines, buf.String())
			buf.Reset()
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := collapseSpace(n.Data); t != "" {
				buf.WriteString(t)
			}
			return
		case html.ElementNode:
			if skippedElements[n.DataAtom] {
				return
			}
			switch n.DataAtom {
			case atom.Br:
				flush()
				return
			case atom.Img:
				buf.WriteString(imageMarker)
				buf.WriteString(attrValue(n, "alt"))
				return
			case atom.Td, atom.Th:
				if buf.Len() > 0 {
					buf.WriteString(" | ")
				}
			}
		}

		block := n.Type == html.ElementNode && blockElements[n.DataAtom]
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		}
	}
	walk(root)
	flush()

	return lines, nil
}

// collapseSpace turns runs of whitespace into one space. Leading and
// trailing runs are kept as a single space so inline elements stay apart.
func collapseSpace(s string) string {
	if strings.TrimSpace(s) == "" {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(strings.Fields(s), " ")
	if first := s[0]; first == ' ' || first == '\n' || first == '\t' || first == '\r' {
		out = " " + out
	}
	if last := s[len(s)-1]; last == ' ' || last == '\n' || last == '\t' || last == '\r' {
		out += " "
	}
	return out
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
