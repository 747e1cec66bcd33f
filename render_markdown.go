package docconv

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// uppercaseHeadingMinLen is the minimum rune count for an all-caps line to be
// promoted to a level-1 heading. Fixed design parameter.
const uppercaseHeadingMinLen = 3

// renderMarkdown converts an intermediate value to markdown. Text is run
// through the heading-promotion heuristic; HTML is first reduced to text;
// markdown passes through untouched, so already-promoted headings are never
// prefixed twice.
func (e *Engine) renderMarkdown(ir intermediate) (string, error) {
	switch ir.kind {
	case kindText:
		return textToMarkdown(ir.payload), nil
	case kindHTML:
		if e.backends.Extractor == nil {
			return "", e.unavailable(BackendHTMLText)
		}
		text, err := e.backends.Extractor.Extract(ir.payload)
		if err != nil {
			return "", err
		}
		return textToMarkdown(text), nil
	}
	return ir.payload, nil
}

// textToMarkdown promotes plain-text structure to markdown headings: a fully
// upper-case line longer than three runes becomes a title-cased level-1
// heading, a line ending in ':' becomes a level-2 heading with the colon
// stripped. Everything else passes through, with per-line whitespace trimmed.
func textToMarkdown(text string) string {
	title := cases.Title(language.English)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			out = append(out, "")
		case isUpper(line) && utf8.RuneCountInString(line) > uppercaseHeadingMinLen:
			out = append(out, "# "+title.String(line))
		case strings.HasSuffix(line, ":"):
			out = append(out, "## "+strings.TrimSuffix(line, ":"))
		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
