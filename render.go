// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package docconv

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// headingMaxLen is the paragraph length below which a block can qualify as a
// heading in the binary writers. Fixed design parameter.
const headingMaxLen = 50

// render converts an intermediate value into the output format's final
// payload. Binary outputs are returned base64-encoded.
func (e *Engine) render(out string, ir intermediate) (string, error) {
	switch out {
	case FormatTxt:
		return e.renderText(ir)
	case FormatMd:
		return e.renderMarkdown(ir)
	case FormatHTML:
		return e.renderHTML(ir)
	case FormatPdf:
		data, err := e.renderPDF(ir)
		if err != nil {
			return "", err
		}
		return base64.StdEncoding.EncodeToString(data), nil
	case FormatDocx:
		data, err := e.renderDocx(ir)
		if err != nil {
			return "", err
		}
		return base64.StdEncoding.EncodeToString(data), nil
	}
	// rtf and any other label without an explicit render rule.
	return "", &UnsupportedOperationError{
		Message: fmt.Sprintf("Output format '%s' conversion not implemented", out),
	}
}

// reduceToText collapses an intermediate to plain text ahead of binary
// rendering. HTML is stripped when the extractor is wired; otherwise the
// payload passes through as-is.
func (e *Engine) reduceToText(ir intermediate) string {
	if ir.kind == kindHTML && e.backends.Extractor != nil {
		if text, err := e.backends.Extractor.Extract(ir.payload); err == nil {
			return text
		}
	}
	return ir.payload
}

// segmentBlocks splits text on blank-line boundaries and classifies each
// paragraph as heading or body. A paragraph is a heading when its stripped
// length is under headingMaxLen runes and it is either fully upper-case or
// starts with '#'.
func segmentBlocks(text string) []Block {
	var blocks []Block
	for _, para := range strings.Split(text, "\n\n") {
		trimmed := strings.TrimSpace(para)
		if trimmed == "" {
			continue
		}
		if utf8.RuneCountInString(trimmed) < headingMaxLen &&
			(isUpper(trimmed) || strings.HasPrefix(trimmed, "#")) {
			blocks = append(blocks, Block{
				Text:    strings.TrimSpace(strings.TrimLeft(trimmed, "#")),
				Heading: true,
			})
			continue
		}
		blocks = append(blocks, Block{Text: trimmed})
	}
	return blocks
}

// isUpper reports whether s contains at least one cased rune and no
// lower-case runes.
func isUpper(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
