package extract

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestExt(t *testing.T) {
	cases := map[string]string{
		"homework.PDF":   "pdf",
		"photo.jpeg":     "jpeg",
		"archive.tar.gz": "gz",
		"noextension":    "",
		"trailingdot.":   "",
	}
	for name, want := range cases {
		if got := Ext(name); got != want {
			t.Errorf("Ext(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestSupported(t *testing.T) {
	for _, ext := range []string{"png", "jpg", "jpeg", "gif", "webp", "bmp", "pdf", "docx", "doc", "PNG"} {
		if !Supported(ext) {
			t.Errorf("Supported(%q) = false", ext)
		}
	}
	for _, ext := range []string{"exe", "txt", "svg", ""} {
		if Supported(ext) {
			t.Errorf("Supported(%q) = true", ext)
		}
	}
}

func TestImageFlattensTransparency(t *testing.T) {
	// A fully transparent 2x2 PNG must come back opaque white.
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	e := New(DefaultCapabilities())
	content, err := e.FromUpload("problem.png", buf.Bytes())
	if err != nil {
		t.Fatalf("FromUpload error: %v", err)
	}
	if len(content.Images) != 1 || content.Images[0].MIME != "image/png" {
		t.Fatalf("unexpected content: %+v", content)
	}

	decoded, err := png.Decode(bytes.NewReader(content.Images[0].Data))
	if err != nil {
		t.Fatalf("re-decoding flattened image: %v", err)
	}
	r, g, b, a := decoded.At(0, 0).RGBA()
	white := color.RGBA{255, 255, 255, 255}
	wr, wg, wb, wa := white.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("pixel = (%d,%d,%d,%d), want opaque white", r, g, b, a)
	}
}

func TestImageRejectsGarbage(t *testing.T) {
	e := New(DefaultCapabilities())
	_, err := e.FromUpload("problem.png", []byte("not an image at all"))
	var exErr *Error
	if !errors.As(err, &exErr) {
		t.Fatalf("want *Error, got %v", err)
	}
	if exErr.Hint == "" {
		t.Error("extraction error should carry a user hint")
	}
}

func TestPDFRejectsCorruptFile(t *testing.T) {
	e := New(DefaultCapabilities())
	for _, data := range [][]byte{nil, []byte(""), []byte("this is not a pdf")} {
		_, err := e.FromUpload("homework.pdf", data)
		var exErr *Error
		if !errors.As(err, &exErr) {
			t.Fatalf("want *Error for corrupt pdf, got %v", err)
		}
	}
}

func TestPDFVisionFallbackKeepsBytes(t *testing.T) {
	// Looks like a PDF but has no readable text; with vision enabled the raw
	// bytes ride along as an attachment.
	data := []byte("%PDF-1.4 scanned garbage")
	e := New(Capabilities{PDFText: true, PDFVision: true, DOCX: true})
	content, err := e.FromUpload("scan.pdf", data)
	if err != nil {
		t.Fatalf("FromUpload error: %v", err)
	}
	if len(content.Images) != 1 || content.Images[0].MIME != "application/pdf" {
		t.Fatalf("expected a pdf attachment, got %+v", content.Images)
	}
}

func TestPDFNoCapabilities(t *testing.T) {
	e := New(Capabilities{PDFText: false, PDFVision: false, DOCX: true})
	_, err := e.FromUpload("homework.pdf", []byte("%PDF-1.4 whatever"))
	var exErr *Error
	if !errors.As(err, &exErr) {
		t.Fatalf("want *Error with no pdf capabilities, got %v", err)
	}
}

func TestCapabilitiesFeatures(t *testing.T) {
	full := DefaultCapabilities().Features()
	joined := strings.Join(full, ",")
	for _, want := range []string{"text_input", "image_upload", "pdf_upload", "docx_upload"} {
		if !strings.Contains(joined, want) {
			t.Errorf("features %v missing %q", full, want)
		}
	}

	none := Capabilities{}.Features()
	joined = strings.Join(none, ",")
	if strings.Contains(joined, "pdf_upload") || strings.Contains(joined, "docx_upload") {
		t.Errorf("disabled capabilities still advertised: %v", none)
	}
}
