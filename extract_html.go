package docconv

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// htmlTextExtractor is the built-in text extraction backend. It walks the
// parsed node tree collecting text nodes, skipping script and style subtrees,
// and joins the stripped fragments with newlines.
type htmlTextExtractor struct{}

func (htmlTextExtractor) Extract(src string) (string, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, "\n"), nil
}
