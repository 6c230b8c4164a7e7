package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// docx extracts the text of a Word document: body paragraphs in document
// order, then table contents with cells joined by " | " per row, one row per
// line. No formatting survives. A .docx file is a zip archive whose main
// part is word/document.xml; legacy .doc files are not archives and fail the
// open, which is reported with a hint rather than a crash.
func (e *Extractor) docx(data []byte) (Content, error) {
	if !e.Caps.DOCX {
		return Content{}, &Error{
			Message: "Word document support is not available on this server",
			Hint:    "Copy the problem into the text box instead",
		}
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Content{}, &Error{
			Message: "Could not read the Word document",
			Hint:    "Save the file as .docx and try again, or type the problem as text",
		}
	}

	var doc io.ReadCloser
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			doc, err = f.Open()
			break
		}
	}
	if doc == nil || err != nil {
		return Content{}, &Error{
			Message: "The Word document has no readable content",
			Hint:    "Save the file as .docx and try again, or type the problem as text",
		}
	}
	defer doc.Close()

	text, err := wordText(doc)
	if err != nil {
		return Content{}, &Error{
			Message: "Could not read the Word document",
			Hint:    "Save the file as .docx and try again, or type the problem as text",
		}
	}
	if strings.TrimSpace(text) == "" {
		return Content{}, &Error{
			Message: "No text content found in the document",
			Hint:    "The document appears to be empty or contains only images",
		}
	}
	return Content{Text: text}, nil
}

// wordText walks the WordprocessingML token stream. Paragraph text outside
// tables is collected first; tables are appended after.
func wordText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var paragraphs []string
	var tables []string

	var para strings.Builder
	var cell strings.Builder
	var row []string
	var table []string

	tableDepth := 0
	inParagraph := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "tr":
				row = row[:0]
			case "tc":
				cell.Reset()
			case "p":
				inParagraph = true
				para.Reset()
			case "t":
				var text string
				if err := dec.DecodeElement(&text, &t); err != nil {
					return "", err
				}
				if tableDepth > 0 {
					cell.WriteString(text)
				} else if inParagraph {
					para.WriteString(text)
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth--
				if tableDepth == 0 && len(table) > 0 {
					tables = append(tables, strings.Join(table, "\n"))
					table = table[:0]
				}
			case "tr":
				if tableDepth > 0 && len(row) > 0 {
					table = append(table, strings.Join(row, " | "))
				}
			case "tc":
				if trimmed := strings.TrimSpace(cell.String()); trimmed != "" {
					row = append(row, trimmed)
				}
			case "p":
				if tableDepth == 0 {
					if trimmed := strings.TrimSpace(para.String()); trimmed != "" {
						paragraphs = append(paragraphs, trimmed)
					}
				}
				inParagraph = false
			}
		}
	}

	parts := append(paragraphs, tables...)
	return strings.Join(parts, "\n"), nil
}
