package docconv

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// renderPDF reduces the intermediate to text, segments it into blocks, and
// writes them through the PDF backend.
func (e *Engine) renderPDF(ir intermediate) ([]byte, error) {
	if e.backends.PDFWriter == nil {
		return nil, e.unavailable(BackendPDFWriter)
	}
	blocks := segmentBlocks(e.reduceToText(ir))
	data, err := e.backends.PDFWriter.Write(blocks)
	if err != nil {
		return nil, fmt.Errorf("write PDF: %w", err)
	}
	return data, nil
}

// fpdfWriter is the built-in PDF writing backend.
type fpdfWriter struct{}

func (fpdfWriter) Write(blocks []Block) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, b := range blocks {
		if b.Heading {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 16)
			pdf.MultiCell(0, 8, tr(b.Text), "", "L", false)
			pdf.Ln(2)
			continue
		}
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, tr(b.Text), "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
