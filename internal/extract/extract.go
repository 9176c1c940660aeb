package extract

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/unicode/norm"
)

// MaxDocumentSize caps accepted input at 32MB.
const MaxDocumentSize = 32 << 20

// imageMarker is written in place of embedded pictures so the classifier
// sees them as image sections.
const imageMarker = "[图片]"

// Extractor reads documents into paragraph lines. It is safe for
// concurrent use.
type Extractor struct {
	strip *bluemonday.Policy
	md    goldmark.Markdown
}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{
		strip: bluemonday.StrictPolicy(),
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Extract returns the normalised, non-empty lines of the document in data.
// filename is only a format hint and may be empty.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), MaxDocumentSize)
	}

	format := Detect(data, filename)

	var raw []string
	var err error
	switch format {
	case FormatDocx:
		raw, err = readDocx(ctx, data)
	default:
		var text string
		if text, err = decodeText(data); err == nil {
			switch format {
			case FormatMarkdown:
				raw = e.readMarkdown([]byte(text))
			case FormatHTML:
				raw, err = readHTML(text)
			default:
				raw = []string{text}
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", format, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := e.Normalize(raw...)
	if len(lines) == 0 {
		return nil, ErrEmptyDocument
	}
	return lines, nil
}

// Normalize splits each input on line breaks and returns the cleaned,
// non-empty lines in order. It is also used for pasted manual content.
func (e *Extractor) Normalize(texts ...string) []string {
	var out []string
	for _, t := range texts {
		for _, line := range splitLines(t) {
			if line = e.cleanLine(line); line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}

func (e *Extractor) cleanLine(line string) string {
	if strings.ContainsAny(line, "<>&") {
		line = html.UnescapeString(e.strip.Sanitize(line))
	}
	line = norm.NFC.String(line)
	return strings.TrimSpace(strings.Map(dropControl, line))
}

// dropControl removes control characters other than tab, and zero-width
// spaces left over from copy-paste.
func dropControl(r rune) rune {
	if r == '\t' {
		return r
	}
	if r < 0x20 || r == 0x7f || r == '\u200b' || r == '\ufeff' {
		return -1
	}
	return r
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// decodeText validates that data is UTF-8 text and strips a leading BOM.
func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: not valid UTF-8", ErrUnreadableDocument)
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("%w: binary content", ErrUnreadableDocument)
	}
	return string(data), nil
}
