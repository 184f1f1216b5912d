package export

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"
)

// PDFFileName is the name offered for the exported PDF.
const PDFFileName = "drawing.pdf"

// WritePDF writes a single page, sized to the canvas in points, with the
// canvas raster placed at the origin.
func WritePDF(w io.Writer, r Raster) error {
	data, err := EncodePNG(r)
	if err != nil {
		return err
	}

	width, height := float64(r.Width()), float64(r.Height())
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opt, bytes.NewReader(data))
	p.ImageOptions("canvas", 0, 0, width, height, false, opt, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	log.Printf("[EXPORT] Wrote PDF page (%.0fx%.0f pt)", width, height)
	return nil
}
