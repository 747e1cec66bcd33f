package docconv

import (
	"fmt"
	"strings"
)

// Backend names as reported by Capabilities and the format report.
const (
	BackendMarkdown   = "markdown-renderer"
	BackendHTMLText   = "html-text-extractor"
	BackendDocxReader = "docx-reader"
	BackendDocxWriter = "docx-writer"
	BackendPDFWriter  = "pdf-writer"
)

// MarkupRenderer renders markdown source to an HTML fragment.
type MarkupRenderer interface {
	Render(markdown string) (string, error)
}

// TextExtractor reduces an HTML document to plain text.
type TextExtractor interface {
	Extract(html string) (string, error)
}

// DocReader extracts paragraph texts, in document order, from DOCX bytes.
type DocReader interface {
	Paragraphs(data []byte) ([]string, error)
}

// Block is one paragraph of renderable output. Heading blocks are rendered
// as level-1 headings by the binary writers.
type Block struct {
	Text    string
	Heading bool
}

// DocWriter renders blocks into DOCX bytes.
type DocWriter interface {
	Write(blocks []Block) ([]byte, error)
}

// PDFWriter renders blocks into PDF bytes.
type PDFWriter interface {
	Write(blocks []Block) ([]byte, error)
}

// Backends is the engine's capability table. A nil field means the backend
// is unavailable and every path that needs it fails with
// BackendUnavailableError.
type Backends struct {
	Markup    MarkupRenderer
	Extractor TextExtractor
	DocReader DocReader
	DocWriter DocWriter
	PDFWriter PDFWriter
}

// backendOrder fixes the reporting order of backends.
var backendOrder = []string{
	BackendMarkdown,
	BackendHTMLText,
	BackendDocxReader,
	BackendDocxWriter,
	BackendPDFWriter,
}

// backendModules names the module implementing each backend, used for
// availability hints.
var backendModules = map[string]string{
	BackendMarkdown:   "github.com/yuin/goldmark",
	BackendHTMLText:   "golang.org/x/net/html",
	BackendDocxReader: "internal/ooxml (archive/zip + encoding/xml)",
	BackendDocxWriter: "internal/ooxml (archive/zip + encoding/xml)",
	BackendPDFWriter:  "github.com/jung-kurt/gofpdf",
}

// Capabilities reports current backend availability. The map is recomputed
// from the live backend table on every call, never cached.
func (e *Engine) Capabilities() map[string]bool {
	return map[string]bool{
		BackendMarkdown:   e.backends.Markup != nil,
		BackendHTMLText:   e.backends.Extractor != nil,
		BackendDocxReader: e.backends.DocReader != nil,
		BackendDocxWriter: e.backends.DocWriter != nil,
		BackendPDFWriter:  e.backends.PDFWriter != nil,
	}
}

func (e *Engine) unavailable(backend string) error {
	return &BackendUnavailableError{Backend: backend, Module: backendModules[backend]}
}

// FormatReport produces the human-readable supported-formats report: format
// sets, backend availability, and notes on binary handling.
func (e *Engine) FormatReport() string {
	caps := e.Capabilities()

	var b strings.Builder
	b.WriteString("Document Converter - Supported Formats\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	fmt.Fprintf(&b, "Input Formats: %s\n", strings.Join(InputFormats, ", "))
	fmt.Fprintf(&b, "Output Formats: %s\n\n", strings.Join(OutputFormats, ", "))

	b.WriteString("Backend Availability:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	for _, name := range backendOrder {
		status := "✗ Not available"
		if caps[name] {
			status = "✓ Available"
		}
		fmt.Fprintf(&b, "%s: %s (%s)\n", name, status, backendModules[name])
	}

	b.WriteString("\nNotes:\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")
	b.WriteString("- Binary formats (PDF, DOCX) require base64 encoded content\n")
	b.WriteString("- PDF input extraction is not implemented\n")
	b.WriteString("- RTF has no conversion rule in either direction\n")

	return b.String()
}
