// Package export writes the canvas raster to image and document formats.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
)

// FileName is the name offered for the saved PNG.
const FileName = "drawing.png"

// ErrEmptyCanvas is returned, and nothing is written, when the canvas has
// no pixels.
var ErrEmptyCanvas = errors.New("canvas has no pixels")

// Raster is a canvas that can encode itself as PNG.
type Raster interface {
	Width() int
	Height() int
	EncodePNG(w io.Writer) error
}

// EncodePNG renders r to PNG bytes.
func EncodePNG(r Raster) ([]byte, error) {
	if r == nil || r.Width() <= 0 || r.Height() <= 0 {
		return nil, ErrEmptyCanvas
	}
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG encodes r fully before writing, so a failed encode leaves w
// untouched.
func WritePNG(w io.Writer, r Raster) error {
	data, err := EncodePNG(r)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	log.Printf("[EXPORT] Wrote %d byte PNG (%dx%d)", len(data), r.Width(), r.Height())
	return nil
}
