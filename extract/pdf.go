package extract

import (
	"bytes"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdf extracts text from a PDF and, when the document has any pages, keeps
// the original bytes as an inline attachment so the caller can fall back to
// vision-based solving of scanned documents. With neither capability enabled
// the upload is rejected with a hint.
func (e *Extractor) pdf(data []byte) (Content, error) {
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return Content{}, &Error{
			Message: "The uploaded file is not a readable PDF",
			Hint:    "Try uploading a clearer image or a text-based PDF, or type the problem as text",
		}
	}

	var content Content

	if e.Caps.PDFText {
		if text, err := pdfText(data); err == nil {
			content.Text = text
		}
	}
	if e.Caps.PDFVision {
		content.Images = []Image{{MIME: "application/pdf", Data: data}}
	}

	if content.Text == "" && len(content.Images) == 0 {
		return Content{}, &Error{
			Message: "Could not extract content from the PDF",
			Hint:    "Try uploading a clearer image or a text-based PDF, or type the problem as text",
		}
	}
	return content, nil
}

// pdfText pulls the plain text out of a PDF. The pdf library panics on some
// malformed files, so the whole read is fenced with a recover.
func pdfText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &Error{
				Message: "Could not read the PDF",
				Hint:    "The file may be corrupted; try re-exporting it or uploading an image",
			}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
