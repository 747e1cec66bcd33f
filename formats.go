package docconv

import "strings"

// Format identifiers. The supported sets are fixed at build time; the
// classifier rejects anything else before conversion work begins.
const (
	FormatTxt  = "txt"
	FormatMd   = "md"
	FormatHTML = "html"
	FormatDocx = "docx"
	FormatPdf  = "pdf"
	FormatRtf  = "rtf"
)

// InputFormats and OutputFormats list the accepted format labels, in the
// order they are reported to callers.
var (
	InputFormats  = []string{FormatTxt, FormatMd, FormatHTML, FormatDocx, FormatPdf, FormatRtf}
	OutputFormats = []string{FormatTxt, FormatMd, FormatHTML, FormatDocx, FormatPdf, FormatRtf}
)

// normalizeFormat lower-cases and trims a format label.
func normalizeFormat(f string) string {
	return strings.ToLower(strings.TrimSpace(f))
}

func classifyInput(f string) (string, error) {
	return classify(f, "input", InputFormats)
}

func classifyOutput(f string) (string, error) {
	return classify(f, "output", OutputFormats)
}

func classify(f, direction string, supported []string) (string, error) {
	f = normalizeFormat(f)
	for _, s := range supported {
		if f == s {
			return f, nil
		}
	}
	return "", &InvalidFormatError{
		Direction: direction,
		Value:     f,
		Supported: supported,
	}
}

// isBinaryFormat reports whether content for the given format travels as
// base64-encoded bytes rather than raw text.
func isBinaryFormat(f string) bool {
	return f == FormatPdf || f == FormatDocx
}
