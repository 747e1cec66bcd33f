package docconv

import (
	"encoding/base64"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

// DetectFormat sniffs document content and reports the closest supported
// input format. Content may be raw text or base64-encoded bytes; when the
// raw bytes look like plain text but decode cleanly from base64 to a known
// binary type, the binary detection wins.
func (e *Engine) DetectFormat(content string) string {
	format, mime := sniff([]byte(content))

	if format == FormatTxt {
		if decoded, err := base64.StdEncoding.DecodeString(content); err == nil {
			if f, m := sniff(decoded); isBinaryFormat(f) {
				return fmt.Sprintf("Detected format: %s (%s, base64 encoded)", f, m)
			}
		}
	}

	if format == "" {
		return fmt.Sprintf("Detected type %s does not match a supported input format", mime)
	}
	return fmt.Sprintf("Detected format: %s (%s)", format, mime)
}

// sniff maps detected MIME types onto the supported format set. Returns an
// empty format for types outside the set.
func sniff(data []byte) (format, mime string) {
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("application/pdf"):
		return FormatPdf, mtype.String()
	case mtype.Is("application/vnd.openxmlformats-officedocument.wordprocessingml.document"):
		return FormatDocx, mtype.String()
	case mtype.Is("text/html"):
		return FormatHTML, mtype.String()
	case mtype.Is("text/rtf"), mtype.Is("application/rtf"):
		return FormatRtf, mtype.String()
	case mtype.Is("text/plain"):
		return FormatTxt, mtype.String()
	}
	return "", mtype.String()
}
