// Package extract converts uploaded file bytes into content the model can
// work with: plain text, an image, or both.
package extract

import (
	"fmt"
	"sort"
	"strings"
)

// Image is a binary attachment ready for a multimodal model call.
type Image struct {
	MIME string
	Data []byte
}

// Content is the result of extracting an upload. Either field may be empty;
// the caller decides between text-based and vision-based solving.
type Content struct {
	Text   string
	Images []Image
}

// Error is an extraction failure with a hint the frontend can show directly.
type Error struct {
	Message string
	Hint    string
}

func (e *Error) Error() string { return e.Message }

// Capabilities describes which optional extraction paths are available. It
// is computed once at startup and injected, so tests can substitute any
// combination.
type Capabilities struct {
	PDFText   bool
	PDFVision bool
	DOCX      bool
}

func DefaultCapabilities() Capabilities {
	return Capabilities{PDFText: true, PDFVision: true, DOCX: true}
}

// Features lists the enabled upload paths for the health endpoint.
func (c Capabilities) Features() []string {
	features := []string{"text_input", "image_upload"}
	if c.PDFText || c.PDFVision {
		features = append(features, "pdf_upload")
	}
	if c.DOCX {
		features = append(features, "docx_upload")
	}
	return features
}

var imageExts = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
}

var documentExts = map[string]bool{
	"pdf":  true,
	"docx": true,
	"doc":  true,
}

// Supported reports whether a file extension (without the dot) is accepted.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	_, isImage := imageExts[ext]
	return isImage || documentExts[ext]
}

// SupportedList returns the accepted extensions, sorted, for error bodies and
// the public config endpoint.
func SupportedList() []string {
	out := make([]string, 0, len(imageExts)+len(documentExts))
	for ext := range imageExts {
		out = append(out, ext)
	}
	for ext := range documentExts {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Ext returns the lower-cased extension of a filename, without the dot.
func Ext(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i == -1 || i == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

// Extractor dispatches uploads to the right extraction path.
type Extractor struct {
	Caps Capabilities
}

func New(caps Capabilities) *Extractor {
	return &Extractor{Caps: caps}
}

// FromUpload extracts content from an uploaded file based on its extension.
// The caller has already checked Supported().
func (e *Extractor) FromUpload(filename string, data []byte) (Content, error) {
	ext := Ext(filename)
	switch {
	case imageExts[ext] != "":
		return e.image(data, ext)
	case ext == "pdf":
		return e.pdf(data)
	case ext == "docx" || ext == "doc":
		return e.docx(data)
	default:
		return Content{}, &Error{
			Message: fmt.Sprintf("Unsupported file type: .%s", ext),
			Hint:    fmt.Sprintf("Supported types: %s", strings.Join(SupportedList(), ", ")),
		}
	}
}
