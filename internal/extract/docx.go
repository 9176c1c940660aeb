package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	docxBody = "word/document.xml"
	wordNS   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	// maxDocxBody bounds the decompressed document part.
	maxDocxBody = 128 << 20
)

// readDocx returns the text of every w:p in the main document part.
// Runs are concatenated, w:tab becomes a tab and w:br / w:cr a space.
func readDocx(ctx context.Context, data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == docxBody {
			body = f
			break
		}
	}
	if body == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrUnreadableDocument, docxBody)
	}
	if body.UncompressedSize64 > maxDocxBody {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrDocumentTooLarge, docxBody, body.UncompressedSize64)
	}

	rc, err := body.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	defer rc.Close()

	return readParagraphs(ctx, io.LimitReader(rc, maxDocxBody))
}

func readParagraphs(ctx context.Context, r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		lines  []string
		buf    strings.Builder
		depth  int // w:p nesting, text boxes nest paragraphs
		inText bool
	)

	for n := 0; ; n++ {
		if n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "p":
				depth++
			case "t":
				inText = true
			case "tab":
				if depth > 0 {
					buf.WriteByte('\t')
				}
			case "br", "cr":
				if depth > 0 {
					buf.WriteByte(' ')
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if depth--; depth == 0 {
					lines = append(lines, buf.String())
					buf.Reset()
				}
			}
		case xml.CharData:
			if inText && depth > 0 {
				buf.Write(t)
			}
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("%w: unterminated paragraph", ErrUnreadableDocument)
	}
	return lines, nil
}
