// Package extract turns uploaded document bytes into the ordered list of
// paragraph lines the classifier consumes.
//
// Four inputs are understood: Word documents (.docx), Markdown, HTML and
// UTF-8 plain text. Detect picks the reader from the leading bytes and the
// file name. Every reader produces raw lines which then go through the same
// normaliser: markup is stripped, entities are decoded, text is put in
// Unicode NFC form, lines are trimmed and blank lines dropped.
package extract
