package docconv

import "net/http"

// Option configures an Engine.
type Option func(*Engine)

// WithMarkupRenderer replaces the markdown rendering backend. Passing nil
// marks the backend unavailable.
func WithMarkupRenderer(r MarkupRenderer) Option {
	return func(e *Engine) { e.backends.Markup = r }
}

// WithTextExtractor replaces the HTML text extraction backend.
func WithTextExtractor(x TextExtractor) Option {
	return func(e *Engine) { e.backends.Extractor = x }
}

// WithDocReader replaces the DOCX reading backend.
func WithDocReader(r DocReader) Option {
	return func(e *Engine) { e.backends.DocReader = r }
}

// WithDocWriter replaces the DOCX writing backend.
func WithDocWriter(w DocWriter) Option {
	return func(e *Engine) { e.backends.DocWriter = w }
}

// WithPDFWriter replaces the PDF writing backend.
func WithPDFWriter(w PDFWriter) Option {
	return func(e *Engine) { e.backends.PDFWriter = w }
}

// WithHTTPClient sets the client used by ConvertURL.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Engine) {
		if c != nil {
			e.client = c
		}
	}
}
