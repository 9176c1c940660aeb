package extract

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format identifies a document reader.
type Format string

// Supported formats.
const (
	FormatDocx     Format = "docx"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatText     Format = "text"
)

var (
	zipMagic = []byte("PK\x03\x04")
	utf8BOM  = []byte("\xef\xbb\xbf")
)

var extensions = map[string]Format{
	".docx":     FormatDocx,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".html":     FormatHTML,
	".htm":      FormatHTML,
	".txt":      FormatText,
	".text":     FormatText,
}

// Detect returns the reader for data. A zip signature always means docx.
// Otherwise a known extension on filename decides, and without one data
// starting with '<' is read as HTML and anything else as plain text.
func Detect(data []byte, filename string) Format {
	if bytes.HasPrefix(data, zipMagic) {
		return FormatDocx
	}
	if f, ok := extensions[strings.ToLower(filepath.Ext(filename))]; ok {
		return f
	}
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("<")) {
		return FormatHTML
	}
	return FormatText
}

// SupportedExtensions lists the file extensions the CLI picks up when
// converting a directory.
func SupportedExtensions() []string {
	return []string{".docx", ".md", ".markdown", ".html", ".htm", ".txt"}
}
