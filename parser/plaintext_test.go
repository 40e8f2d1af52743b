package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quickblog/parser"
)

func TestPlainTextSkipsImagesAndKeepsLinkText(t *testing.T) {
	got, err := parser.PlainText(`<img src=x><p>Hello <a href=y>world</a></p>`)
	assert.NoError(t, err)
	assert.Equal(t, "Hello world", got)
}

func TestPlainTextCollapsesWhitespaceAcrossBlocks(t *testing.T) {
	in := `<h1>Title</h1><p>First   paragraph.</p>
	<p>Second
	paragraph.</p>`
	got, err := parser.PlainText(in)
	assert.NoError(t, err)
	assert.Equal(t, "Title First paragraph. Second paragraph.", got)
}

func TestPlainTextDropsScriptAndStyleSubtrees(t *testing.T) {
	in := `<style>p{color:red}</style><p>visible</p><script>alert("x")</script>`
	got, err := parser.PlainText(in)
	assert.NoError(t, err)
	assert.Equal(t, "visible", got)
}

func TestPlainTextEmptyAfterStripping(t *testing.T) {
	got, err := parser.PlainText(`<img src=a><img src=b>`)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestSanitizeContentRemovesScripts(t *testing.T) {
	got := parser.SanitizeContent(`<p onclick="steal()">hi</p><script>alert(1)</script>`)
	assert.NotContains(t, got, "script")
	assert.NotContains(t, got, "onclick")
	assert.Contains(t, got, "<p>hi</p>")
}

func TestSanitizeContentKeepsEditorMarkup(t *testing.T) {
	in := `<h1>T</h1><span style="color: red;">x</span><img src="https://e.com/a.png" alt="a">`
	got := parser.SanitizeContent(in)
	assert.Contains(t, got, "<h1>T</h1>")
	assert.Contains(t, got, "span")
	assert.Contains(t, got, "img")
}
