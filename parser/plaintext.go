package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// elements whose entire subtree is non-textual and must not reach the
// speech synthesizer
var skippedElements = map[string]bool{
	"img":      true,
	"script":   true,
	"style":    true,
	"head":     true,
	"noscript": true,
	"iframe":   true,
	"svg":      true,
}

// elements that terminate a run of inline text
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "ul": true, "ol": true, "br": true, "hr": true,
	"blockquote": true, "pre": true, "tr": true, "table": true,
	"figcaption": true, "figure": true,
}

// PlainText strips markup from rendered blog content, keeping only what can
// be read aloud: images and other embeds are skipped entirely, anchor text
// is kept while the href is discarded, and whitespace collapses to single
// spaces.
func PlainText(htmlStr string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			sb.WriteString(" ")
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(sb.String()), " "), nil
}
