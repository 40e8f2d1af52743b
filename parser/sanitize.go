package parser

import "github.com/microcosm-cc/bluemonday"

// contentPolicy allows what the rich-text editor produces: standard UGC
// markup plus images, headings, spans, and inline style (colors etc.).
var contentPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowImages()
	p.AllowElements("h1", "h2", "span")
	p.AllowAttrs("style").Globally()
	return p
}()

// SanitizeContent cleans authored HTML before it is persisted. Everything
// outside the allow-list (scripts, event handlers, unknown schemes) is
// dropped.
func SanitizeContent(htmlStr string) string {
	return contentPolicy.Sanitize(htmlStr)
}
