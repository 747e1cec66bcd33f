package docconv

import "strings"

// renderText converts an intermediate value to plain text. Markdown is
// stripped naively by removing the literal markup characters; this is a
// documented limitation, not a markdown parser.
func (e *Engine) renderText(ir intermediate) (string, error) {
	switch ir.kind {
	case kindHTML:
		if e.backends.Extractor == nil {
			return "", e.unavailable(BackendHTMLText)
		}
		return e.backends.Extractor.Extract(ir.payload)
	case kindMarkdown:
		return stripMarkdown(ir.payload), nil
	}
	return ir.payload, nil
}

func stripMarkdown(s string) string {
	s = strings.ReplaceAll(s, "#", "")
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}
