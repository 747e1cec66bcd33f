package docconv

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// htmlShellMarkdown wraps rendered markdown in a full document with the fixed
// embedded stylesheet.
const htmlShellMarkdown = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Converted Document</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
        code { background-color: #f4f4f4; padding: 2px 4px; border-radius: 3px; }
        pre { background-color: #f4f4f4; padding: 10px; border-radius: 5px; overflow-x: auto; }
        blockquote { border-left: 4px solid #ddd; margin: 0; padding-left: 20px; color: #666; }
    </style>
</head>
<body>
%s
</body>
</html>`

// htmlShellText is the simpler shell used for escaped plain-text paragraphs.
const htmlShellText = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Converted Document</title>
    <style>body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }</style>
</head>
<body>
%s
</body>
</html>`

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// renderHTML converts an intermediate value to a full HTML document.
func (e *Engine) renderHTML(ir intermediate) (string, error) {
	switch ir.kind {
	case kindMarkdown:
		if e.backends.Markup == nil {
			return "", e.unavailable(BackendMarkdown)
		}
		body, err := e.backends.Markup.Render(ir.payload)
		if err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		return fmt.Sprintf(htmlShellMarkdown, body), nil

	case kindText:
		return textToHTML(ir.payload), nil
	}
	return ir.payload, nil
}

// textToHTML escapes the text, splits it on blank-line boundaries into
// paragraphs, and joins intra-paragraph newlines as <br> breaks.
func textToHTML(text string) string {
	escaped := htmlEscaper.Replace(text)

	var b strings.Builder
	for _, para := range strings.Split(escaped, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(para, "\n", "<br>"))
		b.WriteString("</p>")
	}
	return fmt.Sprintf(htmlShellText, b.String())
}

// goldmarkRenderer is the built-in markup rendering backend.
type goldmarkRenderer struct {
	md goldmark.Markdown
}

func newGoldmarkRenderer() *goldmarkRenderer {
	return &goldmarkRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(ghtml.WithUnsafe()),
		),
	}
}

func (g *goldmarkRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
