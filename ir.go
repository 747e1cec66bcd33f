package docconv

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// irKind tags the intermediate value. Markdown and HTML are carried as text
// strings tagged by kind, not parsed into a tree.
type irKind string

const (
	kindText     irKind = "text"
	kindMarkdown irKind = "markdown"
	kindHTML     irKind = "html"
)

// intermediate is the tagged text value every input format is reduced to
// before rendering. The payload is always decoded text, never binary.
type intermediate struct {
	kind    irKind
	payload string
}

// buildIR reduces validated request content to an intermediate value,
// dispatching on the input format. Binary inputs are base64-decoded here;
// a decode failure is reported before any backend dispatch.
func (e *Engine) buildIR(format, content string) (intermediate, error) {
	switch format {
	case FormatTxt:
		return intermediate{kind: kindText, payload: content}, nil

	case FormatMd:
		return intermediate{kind: kindMarkdown, payload: content}, nil

	case FormatHTML:
		return intermediate{kind: kindHTML, payload: content}, nil

	case FormatDocx:
		data, err := base64.StdEncoding.DecodeString(content)
		if err != nil {
			return intermediate{}, &MalformedPayloadError{Format: format, Err: err}
		}
		return e.readDocx(data)

	case FormatPdf:
		// Accepted as a label but deliberately rejected on input.
		return intermediate{}, &UnsupportedOperationError{
			Message: "PDF input processing not yet implemented. Extract the text externally and resubmit as txt",
		}

	case FormatRtf:
		return intermediate{}, &UnsupportedOperationError{
			Message: "Input format 'rtf' conversion not implemented",
		}
	}
	return intermediate{}, fmt.Errorf("unhandled input format %q", format)
}

// readDocx extracts paragraph texts from DOCX bytes and joins them with
// newlines, producing a text-kind intermediate.
func (e *Engine) readDocx(data []byte) (intermediate, error) {
	if e.backends.DocReader == nil {
		return intermediate{}, e.unavailable(BackendDocxReader)
	}
	paras, err := e.backends.DocReader.Paragraphs(data)
	if err != nil {
		return intermediate{}, fmt.Errorf("extract DOCX text: %w", err)
	}
	return intermediate{kind: kindText, payload: strings.Join(paras, "\n")}, nil
}
