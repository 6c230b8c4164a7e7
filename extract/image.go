package extract

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// image decodes an uploaded picture and re-encodes it as PNG. Transparent or
// palette images are flattened onto a white background first: math notation
// rendered over transparency comes out unreadable otherwise.
func (e *Extractor) image(data []byte, ext string) (Content, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Content{}, &Error{
			Message: "Could not read the uploaded image",
			Hint:    "Try uploading a clearer photo, or type the problem as text",
		}
	}

	if needsFlattening(img) {
		img = flattenOnWhite(img)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Content{}, &Error{
			Message: "Could not process the uploaded image",
			Hint:    "Try a different image format, or type the problem as text",
		}
	}
	return Content{Images: []Image{{MIME: "image/png", Data: buf.Bytes()}}}, nil
}

func needsFlattening(img image.Image) bool {
	if _, ok := img.(*image.Paletted); ok {
		return true
	}
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return false
}

func flattenOnWhite(img image.Image) image.Image {
	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.White, image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)
	return flat
}
