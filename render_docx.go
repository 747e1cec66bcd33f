package docconv

import (
	"fmt"

	"github.com/nicholasgasior/docconv-go/internal/ooxml"
)

// renderDocx applies the same block segmentation as the PDF path and writes
// the result through the DOCX backend.
func (e *Engine) renderDocx(ir intermediate) ([]byte, error) {
	if e.backends.DocWriter == nil {
		return nil, e.unavailable(BackendDocxWriter)
	}
	blocks := segmentBlocks(e.reduceToText(ir))
	data, err := e.backends.DocWriter.Write(blocks)
	if err != nil {
		return nil, fmt.Errorf("write DOCX: %w", err)
	}
	return data, nil
}

// ooxmlWriter is the built-in DOCX writing backend.
type ooxmlWriter struct{}

func (ooxmlWriter) Write(blocks []Block) ([]byte, error) {
	paras := make([]ooxml.Paragraph, len(blocks))
	for i, b := range blocks {
		paras[i] = ooxml.Paragraph{Text: b.Text, Heading: b.Heading}
	}
	return ooxml.WriteDocument(paras)
}

// ooxmlReader is the built-in DOCX reading backend.
type ooxmlReader struct{}

func (ooxmlReader) Paragraphs(data []byte) ([]string, error) {
	return ooxml.Paragraphs(data)
}
